package bootstrap

import (
	"time"

	"foodbridge/internal/pkg/config"
	"foodbridge/internal/pkg/jwt"
	"foodbridge/internal/usecase"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		usecase.NewTokenValidator,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration)
}
