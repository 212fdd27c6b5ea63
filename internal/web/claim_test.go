package web

import (
	"testing"

	apperrors "github.com/tontap/ton_tap_bot/pkg/errors"
)

func TestValidateClaim(t *testing.T) {
	tests := []struct {
		name     string
		req      claimRequest
		wantCode string // empty means valid
	}{
		{"Valid with taps", claimRequest{Token: "t", Taps: 3000}, ""},
		{"Valid with amount", claimRequest{Token: "t", Amount: 3.0}, ""},
		{"Missing token", claimRequest{Taps: 3000}, apperrors.ErrCodeUnauthorized},
		{"Negative amount", claimRequest{Token: "t", Amount: -1}, apperrors.ErrCodeInvalidRequest},
		{"Negative taps", claimRequest{Token: "t", Taps: -5}, apperrors.ErrCodeInvalidRequest},
		{"Empty claim", claimRequest{Token: "t"}, apperrors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateClaim(&tt.req)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("validateClaim() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validateClaim() = nil, want code %s", tt.wantCode)
			}
			if err.Code != tt.wantCode {
				t.Errorf("validateClaim() code = %s, want %s", err.Code, tt.wantCode)
			}
		})
	}
}
