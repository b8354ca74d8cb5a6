package hubclientinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ocpi"
	"github.com/dmitrymomot/ocpi/modules/hubclientinfo"
	"github.com/dmitrymomot/ocpi/pkg/validator"
)

func TestClientInfo_Validate(t *testing.T) {
	t.Parallel()

	valid := hubclientinfo.ClientInfo{
		PartyID:     "EXA",
		CountryCode: "NL",
		Role:        ocpi.RoleEMSP,
		Status:      hubclientinfo.Connected,
		LastUpdated: "2024-01-01T00:00:00Z",
	}

	tests := []struct {
		name   string
		modify func(c *hubclientinfo.ClientInfo)
		fields []string
	}{
		{"valid", func(*hubclientinfo.ClientInfo) {}, nil},
		{"local timestamp", func(c *hubclientinfo.ClientInfo) { c.LastUpdated = "2024-01-01T00:00:00" }, nil},
		{"short party id", func(c *hubclientinfo.ClientInfo) { c.PartyID = "EX" }, []string{"party_id"}},
		{"unknown role", func(c *hubclientinfo.ClientInfo) { c.Role = "DRIVER" }, []string{"role"}},
		{"unknown status", func(c *hubclientinfo.ClientInfo) { c.Status = "ONLINE" }, []string{"status"}},
		{
			name: "everything wrong",
			modify: func(c *hubclientinfo.ClientInfo) {
				*c = hubclientinfo.ClientInfo{CountryCode: "Né"}
			},
			fields: []string{"party_id", "country_code", "role", "status", "last_updated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)

			err := c.Validate()
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs)
			assert.Equal(t, tt.fields, verrs.Fields())
		})
	}

	assert.Len(t, hubclientinfo.ConnectionStatusValues(), 4)
}
