package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		status   domain.Status
		required domain.Role
		want     domain.Decision
	}{
		{"active user on user route", domain.RoleUser, domain.StatusActive, domain.RoleUser, domain.Allow},
		{"active user on admin route", domain.RoleUser, domain.StatusActive, domain.RoleAdmin, domain.DenyRole},
		{"inactive user on user route", domain.RoleUser, domain.StatusInactive, domain.RoleUser, domain.DenyInactive},
		{"inactive user on admin route", domain.RoleUser, domain.StatusInactive, domain.RoleAdmin, domain.DenyInactive},
		{"active admin on admin route", domain.RoleAdmin, domain.StatusActive, domain.RoleAdmin, domain.Allow},
		{"admin satisfies user route", domain.RoleAdmin, domain.StatusActive, domain.RoleUser, domain.Allow},
		{"inactive admin is not blocked", domain.RoleAdmin, domain.StatusInactive, domain.RoleAdmin, domain.Allow},
		{"unknown role", domain.Role("root"), domain.StatusActive, domain.RoleUser, domain.DenyRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Authorize(tt.role, tt.status, tt.required)
			require.Equal(t, tt.want, got, got.String())
		})
	}
}
