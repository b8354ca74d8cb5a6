package locations_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/modules/locations"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

func loadLocation(t *testing.T) locations.Location {
	t.Helper()

	raw, err := os.ReadFile("testdata/location.json")
	require.NoError(t, err)

	var loc locations.Location
	require.NoError(t, json.Unmarshal(raw, &loc))
	return loc
}

func fields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs, "expected validation errors, got %v", err)
	return verrs.Fields()
}

func ptr[T any](v T) *T { return &v }

func TestLocation_Validate(t *testing.T) {
	t.Parallel()

	t.Run("reference location is valid", func(t *testing.T) {
		loc := loadLocation(t)
		require.Len(t, loc.EVSEs, 2)
		assert.Equal(t, locations.ConnectorIEC62196T2, loc.EVSEs[0].Connectors[0].Standard)
		assert.NoError(t, loc.Validate())
	})

	t.Run("party identifiers", func(t *testing.T) {
		loc := loadLocation(t)
		loc.CountryCode = "BEL"
		loc.PartyID = "BÉC"
		loc.ID = ""

		assert.Equal(t, []string{"country_code", "party_id", "id"}, fields(t, loc.Validate()))
	})

	t.Run("nested violations carry full paths", func(t *testing.T) {
		loc := loadLocation(t)
		loc.Coordinates.Latitude = "91.0"
		loc.EVSEs[1].Connectors[0].MaxVoltage = 0
		loc.EVSEs[1].Connectors[0].TariffIDs = []string{"12", "tariff\t13"}
		loc.OpeningTimes.RegularHours[1].PeriodEnd = "24:00"
		loc.EnergyMix.EnergySources[0].Percentage = 120

		assert.Equal(t, []string{
			"coordinates.latitude",
			"evses[1].connectors[0].max_voltage",
			"evses[1].connectors[0].tariff_ids[1]",
			"opening_times.regular_hours[1].period_end",
			"energy_mix.energy_sources[0].percentage",
		}, fields(t, loc.Validate()))
	})

	t.Run("format messages follow the nested path", func(t *testing.T) {
		loc := loadLocation(t)
		loc.EVSEs[0].LastUpdated = "2015-06-31T08:12:01Z"

		verrs := validator.ExtractValidationErrors(loc.Validate())
		require.Len(t, verrs, 1)
		assert.Equal(t, "evses[0].last_updated", verrs[0].Field)
		assert.Equal(t,
			"evses[0].last_updated must be a valid OCPI DateTime (max 25 chars: YYYY-MM-DDTHH:mm:ss[.fff][Z] or YYYY-MM-DDTHH:mm:ss[Z|±HH:mm])",
			verrs[0].Message)
		assert.Equal(t, "validation.ocpi_datetime", verrs[0].TranslationKey)
	})

	t.Run("enums", func(t *testing.T) {
		loc := loadLocation(t)
		loc.ParkingType = "STREET"
		loc.Facilities = []locations.Facility{locations.FacilityCafe, "SPA"}
		loc.EVSEs[0].Status = "FREE"

		assert.Equal(t, []string{"parking_type", "facilities[1]", "evses[0].status"}, fields(t, loc.Validate()))
	})

	t.Run("optional objects are validated when present", func(t *testing.T) {
		loc := loadLocation(t)
		loc.Owner = &locations.BusinessDetails{Name: "", Website: ptr("not a url")}

		assert.Equal(t, []string{"owner.name", "owner.website"}, fields(t, loc.Validate()))
	})
}

func TestEVSE_Validate(t *testing.T) {
	t.Parallel()

	evse := locations.EVSE{
		UID:         "3256",
		Status:      locations.StatusAvailable,
		LastUpdated: "2015-06-28T08:12:01Z",
	}
	assert.Equal(t, []string{"connectors"}, fields(t, evse.Validate()))

	evse.Connectors = []locations.Connector{{
		ID:          "1",
		Standard:    locations.ConnectorChademo,
		Format:      locations.ConnectorFormatCable,
		PowerType:   locations.PowerTypeDC,
		MaxVoltage:  500,
		MaxAmperage: 125,
		LastUpdated: "2015-06-28T08:12:01Z",
	}}
	assert.NoError(t, evse.Validate())

	evse.StatusSchedule = []locations.StatusSchedule{{PeriodBegin: "2015-06-28T08:12:01Z", Status: locations.StatusPlanned}}
	evse.ParkingRestrictions = []locations.ParkingRestriction{locations.RestrictionEVOnly}
	evse.Capabilities = []locations.Capability{locations.CapabilityRFIDReader}
	assert.NoError(t, evse.Validate())

	evse.StatusSchedule[0].PeriodEnd = ptr("tomorrow")
	evse.FloorLevel = "-1234"
	assert.Equal(t, []string{"floor_level", "status_schedule[0].period_end"}, fields(t, evse.Validate()))
}

func TestConnector_Validate(t *testing.T) {
	t.Parallel()

	valid := func() locations.Connector {
		return locations.Connector{
			ID:          "1",
			Standard:    locations.ConnectorIEC62196T2Combo,
			Format:      locations.ConnectorFormatCable,
			PowerType:   locations.PowerTypeDC,
			MaxVoltage:  920,
			MaxAmperage: 500,
			LastUpdated: "2015-03-16T10:10:02Z",
		}
	}

	require.NoError(t, valid().Validate())

	t.Run("electric power bounds", func(t *testing.T) {
		c := valid()
		p := 350_000
		c.MaxElectricPower = &p
		assert.NoError(t, c.Validate())

		p = 10_000_001
		assert.Equal(t, []string{"max_electric_power"}, fields(t, c.Validate()))
	})

	t.Run("electrical limits", func(t *testing.T) {
		c := valid()
		c.MaxVoltage = 2_000_001
		c.MaxAmperage = 0
		assert.Equal(t, []string{"max_voltage", "max_amperage"}, fields(t, c.Validate()))
	})

	t.Run("terms and conditions url", func(t *testing.T) {
		c := valid()
		c.TermsAndConditions = ptr("https://example.com/terms")
		assert.NoError(t, c.Validate())

		c.TermsAndConditions = ptr("terms.html")
		assert.Equal(t, []string{"terms_and_conditions"}, fields(t, c.Validate()))
	})

	t.Run("unknown standard", func(t *testing.T) {
		c := valid()
		c.Standard = "TYPE2"
		assert.Equal(t, []string{"standard"}, fields(t, c.Validate()))
	})
}

func TestHours_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, locations.Hours{TwentyFourSeven: true}.Validate())

	verrs := validator.ExtractValidationErrors(locations.Hours{}.Validate())
	require.Len(t, verrs, 1)
	assert.Equal(t, "regular_hours", verrs[0].Field)
	assert.Equal(t, "validation.regular_hours_required", verrs[0].TranslationKey)

	h := locations.Hours{
		TwentyFourSeven: true,
		ExceptionalClosings: []locations.ExceptionalPeriod{
			{PeriodBegin: "2015-12-25T00:00:00Z", PeriodEnd: "2015-12-26T00:00:00Z"},
			{PeriodBegin: "2015-12-31", PeriodEnd: "2016-01-01T00:00:00Z"},
		},
	}
	assert.Equal(t, []string{"exceptional_closings[1].period_begin"}, fields(t, h.Validate()))

	h.RegularHours = []locations.RegularHours{{Weekday: 0, PeriodBegin: "8:00", PeriodEnd: "20:00"}}
	h.ExceptionalClosings = nil
	assert.Equal(t, []string{"regular_hours[0].weekday", "regular_hours[0].period_begin"}, fields(t, h.Validate()))
}

func TestImage_Validate(t *testing.T) {
	t.Parallel()

	w := 512
	img := locations.Image{
		URL:      "https://example.com/img/logo.jpg",
		Category: locations.ImageOperator,
		Type:     "jpeg",
		Width:    &w,
	}
	assert.NoError(t, img.Validate())

	w = 0
	img.Type = "image/jpeg"
	img.Thumbnail = ptr("thumb.jpg")
	assert.Equal(t, []string{"thumbnail", "type", "width"}, fields(t, img.Validate()))
}

func TestPublishTokenType_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, locations.PublishTokenType{}.Validate())
	assert.NoError(t, locations.PublishTokenType{UID: "012345678", Type: "RFID"}.Validate())

	assert.Equal(t, []string{"type"}, fields(t, locations.PublishTokenType{UID: "012345678"}.Validate()))
	assert.Equal(t, []string{"issuer"}, fields(t, locations.PublishTokenType{VisualNumber: "NL-TNM-0001"}.Validate()))
}

func TestAdditionalGeoLocation_Validate(t *testing.T) {
	t.Parallel()

	g := locations.AdditionalGeoLocation{Latitude: "51.047599", Longitude: "3.729945"}
	assert.NoError(t, g.Validate())

	g.Longitude = "181"
	assert.Equal(t, []string{"longitude"}, fields(t, g.Validate()))
}

func TestEnums(t *testing.T) {
	t.Parallel()

	assert.True(t, locations.PowerTypeAC1Phase.IsValid())
	assert.False(t, locations.PowerType("AC").IsValid())
	assert.Len(t, locations.ConnectorTypeValues(), 40)
	assert.Len(t, locations.FacilityValues(), 20)
	assert.Len(t, locations.CapabilityValues(), 13)
	assert.Equal(t, locations.Status("OUTOFORDER"), locations.StatusOutOfOrder)
}

func TestOptionalFields_PresentEmptyValues(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, raw string, v any) {
		t.Helper()
		require.NoError(t, json.Unmarshal([]byte(raw), v))
	}

	t.Run("status schedule period_end", func(t *testing.T) {
		var s locations.StatusSchedule
		decode(t, `{"period_begin":"2015-06-28T08:12:01Z","period_end":"","status":"PLANNED"}`, &s)
		require.NotNil(t, s.PeriodEnd)
		assert.Equal(t, []string{"period_end"}, fields(t, s.Validate()))
	})

	t.Run("business website", func(t *testing.T) {
		var b locations.BusinessDetails
		decode(t, `{"name":"Example Operator","website":""}`, &b)
		assert.Equal(t, []string{"website"}, fields(t, b.Validate()))
	})

	t.Run("image thumbnail", func(t *testing.T) {
		var img locations.Image
		decode(t, `{"url":"https://example.com/img/logo.jpg","thumbnail":"","category":"OPERATOR","type":"jpeg"}`, &img)
		assert.Equal(t, []string{"thumbnail"}, fields(t, img.Validate()))
	})

	t.Run("connector terms_and_conditions", func(t *testing.T) {
		var c locations.Connector
		decode(t, `{
			"id": "1",
			"standard": "CHADEMO",
			"format": "CABLE",
			"power_type": "DC",
			"max_voltage": 500,
			"max_amperage": 125,
			"terms_and_conditions": "",
			"last_updated": "2015-06-28T08:12:01Z"
		}`, &c)
		assert.Equal(t, []string{"terms_and_conditions"}, fields(t, c.Validate()))
	})

	t.Run("absent fields stay optional", func(t *testing.T) {
		var b locations.BusinessDetails
		decode(t, `{"name":"Example Operator"}`, &b)
		assert.Nil(t, b.Website)
		assert.NoError(t, b.Validate())
	})
}
