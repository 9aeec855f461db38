//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/pkg/config"
	"foodbridge/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, roles ...actor.Role) string {
	t.Helper()
	return h.GenerateTokenInRegion(t, userID, location.Location{}, roles...)
}

func (h *JWTHelper) GenerateTokenInRegion(t *testing.T, userID uuid.UUID, region location.Location, roles ...actor.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, roleNames(roles), region.City(), region.Pincode())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, roles ...actor.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, roleNames(roles), "", "")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}

func roleNames(roles []actor.Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return names
}
