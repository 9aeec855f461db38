package actor

import (
	"slices"

	"foodbridge/internal/domain/location"
	"foodbridge/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoleRequired = errs.Sentinel(errs.ErrUnauthorized, "actor lacks the required role")

// Actor is the resolved caller identity handed to every operation.
type Actor struct {
	ID     uuid.UUID
	Roles  []Role
	Region location.Location
}

func New(id uuid.UUID, roles []Role, region location.Location) Actor {
	return Actor{ID: id, Roles: slices.Clone(roles), Region: region}
}

func (a Actor) Has(role Role) bool {
	return slices.Contains(a.Roles, role)
}

func (a Actor) Require(role Role) error {
	if a.ID == uuid.Nil || !a.Has(role) {
		return errs.Wrapf(ErrRoleRequired, "role %s", role)
	}
	return nil
}

func (a Actor) RoleNames() []string {
	names := make([]string, len(a.Roles))
	for i, r := range a.Roles {
		names[i] = r.String()
	}
	return names
}
