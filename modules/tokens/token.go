package tokens

import "github.com/dmitrymomot/ocpi/pkg/validator"

// Token is a means of authorization issued by an eMSP: an RFID card, an app user, etc.
type Token struct {
	CountryCode        string          `json:"country_code"`
	PartyID            string          `json:"party_id"`
	UID                string          `json:"uid"`
	Type               TokenType       `json:"type"`
	ContractID         string          `json:"contract_id"`
	VisualNumber       string          `json:"visual_number,omitempty"`
	Issuer             string          `json:"issuer"`
	GroupID            string          `json:"group_id,omitempty"`
	Valid              bool            `json:"valid"`
	Whitelist          WhitelistType   `json:"whitelist"`
	Language           string          `json:"language,omitempty"`
	DefaultProfileType ProfileType     `json:"default_profile_type,omitempty"`
	EnergyContract     *EnergyContract `json:"energy_contract,omitempty"`
	LastUpdated        string          `json:"last_updated"`
}

func (t Token) Validate() error {
	return validator.Join(
		validator.Apply(
			validator.CiString("country_code", t.CountryCode),
			validator.Len("country_code", t.CountryCode, 2),
			validator.CiString("party_id", t.PartyID),
			validator.Len("party_id", t.PartyID, 3),
			validator.Required("uid", t.UID),
			validator.CiString("uid", t.UID),
			validator.MaxLen("uid", t.UID, 36),
			validator.OneOf("type", t.Type),
			validator.Required("contract_id", t.ContractID),
			validator.CiString("contract_id", t.ContractID),
			validator.MaxLen("contract_id", t.ContractID, 36),
			validator.MaxLen("visual_number", t.VisualNumber, 64),
			validator.Required("issuer", t.Issuer),
			validator.MaxLen("issuer", t.Issuer, 64),
			validator.CiString("group_id", t.GroupID),
			validator.MaxLen("group_id", t.GroupID, 36),
			validator.OneOf("whitelist", t.Whitelist),
			validator.When(t.Language != "", validator.Len("language", t.Language, 2)),
			validator.When(t.Language != "", validator.LanguageCode("language", t.Language)),
			validator.OptionalOneOf("default_profile_type", t.DefaultProfileType),
			validator.OcpiDateTime("last_updated", t.LastUpdated),
		),
		validator.NestedPtr("energy_contract", t.EnergyContract),
	)
}

// EnergyContract identifies the driver's energy supplier for charge points
// that can switch supplier per session.
type EnergyContract struct {
	SupplierName string `json:"supplier_name"`
	ContractID   string `json:"contract_id,omitempty"`
}

func (c EnergyContract) Validate() error {
	return validator.Apply(
		validator.Required("supplier_name", c.SupplierName),
		validator.MaxLen("supplier_name", c.SupplierName, 64),
		validator.MaxLen("contract_id", c.ContractID, 64),
	)
}
