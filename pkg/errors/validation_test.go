package errors

import (
	"math"
	"testing"
)

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 960, false},
		{"fractional", 0.5, false},
		{"zero", 0, true},
		{"negative", -10, true},
		{"NaN", math.NaN(), true},
		{"infinite", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("width", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDimension(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimension) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidDimension)
			}
		})
	}
}

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		upper   float64
		wantErr bool
	}{
		{"fraction in range", 0.1, 1, false},
		{"fraction upper bound", 1, 1, false},
		{"fraction too large", 1.5, 1, true},
		{"percent in range", 10, 100, false},
		{"percent too large", 150, 100, true},
		{"negative", -0.1, 1, true},
		{"NaN", math.NaN(), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFraction(tt.value, tt.upper)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFraction(%v, %v) error = %v, wantErr %v", tt.value, tt.upper, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMargins(t *testing.T) {
	tests := []struct {
		name                     string
		top, right, bottom, left float64
		wantErr                  bool
	}{
		{"typical", 54, 96, 54, 96, false},
		{"zero", 0, 0, 0, 0, false},
		{"negative top", -1, 0, 0, 0, true},
		{"negative left", 0, 0, 0, -5, true},
		{"vertical overflow", 300, 0, 240, 0, true},
		{"vertical exact", 270, 0, 270, 0, true},
		{"horizontal overflow", 0, 500, 0, 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMargins(tt.top, tt.right, tt.bottom, tt.left, 540, 960)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateMargins() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidMargin) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidMargin)
			}
		})
	}
}
