package ocpi

import "github.com/google/uuid"

// Transport headers defined by OCPI 2.2.1 part "Transport and format".
const (
	HeaderAuthorization   = "Authorization"
	HeaderRequestID       = "X-Request-ID"
	HeaderCorrelationID   = "X-Correlation-ID"
	HeaderFromCountryCode = "OCPI-from-country-code"
	HeaderFromPartyID     = "OCPI-from-party-id"
	HeaderToCountryCode   = "OCPI-to-country-code"
	HeaderToPartyID       = "OCPI-to-party-id"
	HeaderTotalCount      = "X-Total-Count"
	HeaderLimit           = "X-Limit"
	HeaderLink            = "Link"
)

// NewRequestID returns a random UUID for the X-Request-ID header.
// Every message gets a new one, retries included.
func NewRequestID() string {
	return uuid.New().String()
}

// NewCorrelationID returns a random UUID for the X-Correlation-ID header.
// It is created once and reused for every message in a request chain.
func NewCorrelationID() string {
	return uuid.New().String()
}
