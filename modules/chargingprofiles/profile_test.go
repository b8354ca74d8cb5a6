package chargingprofiles_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi/modules/chargingprofiles"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs, "expected validation errors, got %v", err)
	return verrs.Fields()
}

func ptr[T any](v T) *T { return &v }

func validProfile() chargingprofiles.ChargingProfile {
	return chargingprofiles.ChargingProfile{
		StartDateTime:    ptr("2024-01-01T18:00:00Z"),
		Duration:         ptr(3600),
		ChargingRateUnit: chargingprofiles.RateUnitWatts,
		MinChargingRate:  ptr(1380.0),
		ChargingProfilePeriod: []chargingprofiles.ChargingProfilePeriod{
			{StartPeriod: 0, Limit: 11000},
			{StartPeriod: 900, Limit: 7400.5},
			{StartPeriod: 1800, Limit: 3700},
		},
	}
}

func TestChargingProfile_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid profile", func(t *testing.T) {
		assert.NoError(t, validProfile().Validate())
	})

	t.Run("only the unit is required", func(t *testing.T) {
		p := chargingprofiles.ChargingProfile{ChargingRateUnit: chargingprofiles.RateUnitAmperes}
		assert.NoError(t, p.Validate())

		p.ChargingRateUnit = "kW"
		assert.Equal(t, []string{"charging_rate_unit"}, fields(t, p.Validate()))
	})

	t.Run("one decimal place", func(t *testing.T) {
		p := validProfile()
		p.MinChargingRate = ptr(6.25)
		p.ChargingProfilePeriod[1].Limit = 16.05

		verrs := validator.ExtractValidationErrors(p.Validate())
		require.Len(t, verrs, 2)
		assert.Equal(t, "min_charging_rate", verrs[0].Field)
		assert.Equal(t, "charging_profile_period[1].limit", verrs[1].Field)
		assert.Equal(t, "validation.decimal_places", verrs[1].TranslationKey)
		assert.Equal(t, "value cannot have more than 1 decimal places", verrs[1].Message)
	})

	t.Run("negative values", func(t *testing.T) {
		p := validProfile()
		p.Duration = ptr(-1)
		p.ChargingProfilePeriod[0].StartPeriod = -60
		p.ChargingProfilePeriod[2].Limit = -3700

		assert.Equal(t, []string{
			"duration",
			"charging_profile_period[0].start_period",
			"charging_profile_period[2].limit",
		}, fields(t, p.Validate()))
	})

	t.Run("start date time", func(t *testing.T) {
		p := validProfile()
		p.StartDateTime = ptr("2024-01-01T18:00:00.000000Z")
		assert.Equal(t, []string{"start_date_time"}, fields(t, p.Validate()))
	})

	t.Run("present empty start date time", func(t *testing.T) {
		var p chargingprofiles.ChargingProfile
		require.NoError(t, json.Unmarshal([]byte(`{"start_date_time":"","charging_rate_unit":"W"}`), &p))
		assert.Equal(t, []string{"start_date_time"}, fields(t, p.Validate()))
	})
}

func TestChargingProfile_LimitAt(t *testing.T) {
	t.Parallel()

	p := validProfile()

	tests := []struct {
		name   string
		offset time.Duration
		limit  float64
		found  bool
	}{
		{"first period", 0, 11000, true},
		{"inside first period", 14 * time.Minute, 11000, true},
		{"second period boundary", 15 * time.Minute, 7400.5, true},
		{"last period", 50 * time.Minute, 3700, true},
		{"after duration", time.Hour, 0, false},
		{"before start", -time.Second, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, found := p.LimitAt(tt.offset)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.limit, limit)
		})
	}

	t.Run("open ended profile", func(t *testing.T) {
		p := validProfile()
		p.Duration = nil
		limit, found := p.LimitAt(24 * time.Hour)
		assert.True(t, found)
		assert.Equal(t, 3700.0, limit)
	})
}

func TestSetChargingProfile_Validate(t *testing.T) {
	t.Parallel()

	req := chargingprofiles.SetChargingProfile{
		ChargingProfile: validProfile(),
		ResponseURL:     "https://emsp.example.com/ocpi/2.2.1/chargingprofiles/1234",
	}
	assert.NoError(t, req.Validate())

	req.ChargingProfile.ChargingRateUnit = ""
	req.ResponseURL = ""
	assert.Equal(t, []string{"charging_profile.charging_rate_unit", "response_url"}, fields(t, req.Validate()))
}

func TestResults_Validate(t *testing.T) {
	t.Parallel()

	t.Run("response", func(t *testing.T) {
		assert.NoError(t, chargingprofiles.ChargingProfileResponse{Result: chargingprofiles.ResponseTooOften, Timeout: 5}.Validate())
		assert.Equal(t, []string{"result", "timeout"},
			fields(t, chargingprofiles.ChargingProfileResponse{Result: "BUSY"}.Validate()))
	})

	t.Run("active profile result", func(t *testing.T) {
		res := chargingprofiles.ActiveChargingProfileResult{Result: chargingprofiles.ResultAccepted}
		assert.NoError(t, res.Validate())

		res.Profile = &chargingprofiles.ActiveChargingProfile{
			StartDateTime:   "2024-01-01T18:00:00Z",
			ChargingProfile: validProfile(),
		}
		assert.NoError(t, res.Validate())

		res.Profile.StartDateTime = ""
		res.Profile.ChargingProfile.ChargingProfilePeriod[0].Limit = 0.05
		assert.Equal(t, []string{
			"profile.start_date_time",
			"profile.charging_profile.charging_profile_period[0].limit",
		}, fields(t, res.Validate()))
	})

	t.Run("plain results", func(t *testing.T) {
		assert.NoError(t, chargingprofiles.ChargingProfileResult{Result: chargingprofiles.ResultUnknown}.Validate())
		assert.NoError(t, chargingprofiles.ClearProfileResult{Result: chargingprofiles.ResultRejected}.Validate())
		assert.Error(t, chargingprofiles.ClearProfileResult{}.Validate())
	})
}
