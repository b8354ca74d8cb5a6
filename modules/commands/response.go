package commands

import (
	"time"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// CommandResponse is returned synchronously when a command is received.
// Timeout is how long, in seconds, the eMSP should wait for the CommandResult.
type CommandResponse struct {
	Result  CommandResponseType `json:"result"`
	Timeout int                 `json:"timeout"`
	Message []ocpi.DisplayText  `json:"message,omitempty"`
}

func (r CommandResponse) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.OneOf("result", r.Result),
			validator.Min("timeout", r.Timeout, 1),
		),
		validator.NestedEach("message", r.Message),
	)
}

// Deadline is the moment after which no CommandResult is expected anymore.
func (r CommandResponse) Deadline(received time.Time) time.Time {
	return received.Add(time.Duration(r.Timeout) * time.Second)
}

// CommandResult is posted to the response_url once the charge point has acted.
type CommandResult struct {
	Result  CommandResultType  `json:"result"`
	Message []ocpi.DisplayText `json:"message,omitempty"`
}

func (r CommandResult) Validate() error {
	return validator.Join(
		validator.Apply(validator.OneOf("result", r.Result)),
		validator.NestedEach("message", r.Message),
	)
}
