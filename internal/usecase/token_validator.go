package usecase

import (
	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (actor.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken resolves the caller. Unknown role names are dropped; a token
// without any recognised role is rejected.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (actor.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return actor.Actor{}, err
	}

	roles := make([]actor.Role, 0, len(claims.Roles))
	for _, name := range claims.Roles {
		role, rerr := actor.NewRole(name)
		if rerr != nil {
			continue
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return actor.Actor{}, actor.ErrInvalidRole
	}

	// region claims are advisory; a malformed pincode leaves the region unset
	region, lerr := location.NewLocation(claims.City, claims.Pincode)
	if lerr != nil {
		region = location.Location{}
	}

	return actor.New(claims.UserID, roles, region), nil
}
