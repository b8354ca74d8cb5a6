package locations

import (
	"github.com/dmitrymomot/ocpi/modules/tokens"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

// PublishTokenType restricts visibility of an unpublished location to the
// listed tokens. A uid needs a type and a visual_number needs an issuer.
type PublishTokenType struct {
	UID          string           `json:"uid,omitempty"`
	Type         tokens.TokenType `json:"type,omitempty"`
	VisualNumber string           `json:"visual_number,omitempty"`
	Issuer       string           `json:"issuer,omitempty"`
	GroupID      string           `json:"group_id,omitempty"`
}

func (p PublishTokenType) Validate() error {
	return validator.Apply(
		validator.CiString("uid", p.UID),
		validator.MaxLen("uid", p.UID, 36),
		validator.When(p.UID != "" || p.Type != "", validator.OneOf("type", p.Type)),
		validator.MaxLen("visual_number", p.VisualNumber, 64),
		validator.When(p.VisualNumber != "", validator.Required("issuer", p.Issuer)),
		validator.MaxLen("issuer", p.Issuer, 64),
		validator.CiString("group_id", p.GroupID),
		validator.MaxLen("group_id", p.GroupID, 36),
	)
}
