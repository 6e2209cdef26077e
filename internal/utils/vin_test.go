package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVIN(t *testing.T) {
	tests := []struct {
		name  string
		vin   string
		valid bool
	}{
		{"valid VIN", "1M8GDM9AXKP042788", true},
		{"valid VIN lowercase", "1m8gdm9axkp042788", true},
		{"valid VIN with whitespace", " 1M8GDM9AXKP042788 ", true},
		{"wrong check digit", "1M8GDM9A1KP042788", false},
		{"too short", "1M8GDM9AXKP0427", false},
		{"too long", "1M8GDM9AXKP042788X", false},
		{"contains I", "1M8GDM9AXKP04278I", false},
		{"contains O", "1M8GDM9AXKP04278O", false},
		{"contains Q", "1M8GDM9AXKP04278Q", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateVIN(tt.vin))
		})
	}
}
