package ocpi

// StatusCode is the four-digit OCPI status code carried in every response,
// independent of the HTTP status.
type StatusCode int

const (
	StatusSuccess StatusCode = 1000

	StatusClientError                      StatusCode = 2000
	StatusClientInvalidOrMissingParameters StatusCode = 2001
	StatusClientNotEnoughInformation       StatusCode = 2002
	StatusClientUnknownLocation            StatusCode = 2003
	StatusClientUnknownToken               StatusCode = 2004

	StatusServerError                StatusCode = 3000
	StatusServerUnableToUseClientAPI StatusCode = 3001
	StatusServerUnsupportedVersion   StatusCode = 3002
	StatusServerNoMatchingEndpoints  StatusCode = 3003

	StatusHubError             StatusCode = 4000
	StatusHubUnknownReceiver   StatusCode = 4001
	StatusHubRequestTimeout    StatusCode = 4002
	StatusHubConnectionProblem StatusCode = 4003
)

var statusText = map[StatusCode]string{
	StatusSuccess:                          "Success",
	StatusClientError:                      "Generic client error",
	StatusClientInvalidOrMissingParameters: "Invalid or missing parameters",
	StatusClientNotEnoughInformation:       "Not enough information",
	StatusClientUnknownLocation:            "Unknown Location",
	StatusClientUnknownToken:               "Unknown Token",
	StatusServerError:                      "Generic server error",
	StatusServerUnableToUseClientAPI:       "Unable to use the client's API",
	StatusServerUnsupportedVersion:         "Unsupported version",
	StatusServerNoMatchingEndpoints:        "No matching endpoints or expected endpoints missing between parties",
	StatusHubError:                         "Generic hub error",
	StatusHubUnknownReceiver:               "Unknown receiver",
	StatusHubRequestTimeout:                "Timeout on forwarded request",
	StatusHubConnectionProblem:             "Connection problem",
}

// Text returns the description OCPI gives for the code, or "" if unknown.
func (c StatusCode) Text() string {
	return statusText[c]
}

// IsKnown reports whether c is one of the codes defined by OCPI 2.2.1.
func (c StatusCode) IsKnown() bool {
	_, ok := statusText[c]
	return ok
}

// The class helpers look only at the thousands digit, so codes a party
// defines inside a class range are classified too.

func (c StatusCode) IsSuccess() bool     { return c/1000 == 1 }
func (c StatusCode) IsClientError() bool { return c/1000 == 2 }
func (c StatusCode) IsServerError() bool { return c/1000 == 3 }
func (c StatusCode) IsHubError() bool    { return c/1000 == 4 }
