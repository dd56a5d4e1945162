package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicRegistrationRequestValidateFields(t *testing.T) {
	tests := []struct {
		name       string
		req        PublicRegistrationRequest
		wantFields []string
	}{
		{
			"valid minimal",
			PublicRegistrationRequest{Name: "Ahmad bin Abu", Phone: "0123456789"},
			nil,
		},
		{
			"valid with optional fields",
			PublicRegistrationRequest{
				Name:  "Siti Aminah",
				Phone: "0198765432",
				Email: "siti@example.com",
				IC:    "880101145678",
			},
			nil,
		},
		{
			"missing everything required",
			PublicRegistrationRequest{},
			[]string{"name", "phone"},
		},
		{
			"whitespace only name",
			PublicRegistrationRequest{Name: "   ", Phone: "0123456789"},
			[]string{"name"},
		},
		{
			"invalid email",
			PublicRegistrationRequest{Name: "Ahmad", Phone: "0123456789", Email: "not-an-email"},
			[]string{"email"},
		},
		{
			"name too long",
			PublicRegistrationRequest{Name: strings.Repeat("a", 256), Phone: "0123456789"},
			[]string{"name"},
		},
		{
			"phone too long",
			PublicRegistrationRequest{Name: "Ahmad", Phone: strings.Repeat("1", 21)},
			[]string{"phone"},
		},
		{
			"ic too long",
			PublicRegistrationRequest{Name: "Ahmad", Phone: "0123456789", IC: strings.Repeat("1", 21)},
			[]string{"ic_number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.ValidateFields()
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestPublicRegistrationRequestTrimsContactFields(t *testing.T) {
	req := PublicRegistrationRequest{
		Name:  "  Ahmad bin Abu  ",
		Phone: " 0123456789 ",
		Email: " ahmad@example.com ",
	}

	errs := req.ValidateFields()

	assert.Empty(t, errs)
	assert.Equal(t, "Ahmad bin Abu", req.Name)
	assert.Equal(t, "0123456789", req.Phone)
	assert.Equal(t, "ahmad@example.com", req.Email)
}
