package actor

import (
	"strings"

	"foodbridge/internal/pkg/errs"
)

var ErrInvalidRole = errs.Sentinel(errs.ErrValidation, "invalid role")

type Role string

const (
	RoleSupplier    Role = "supplier"
	RoleDistributor Role = "distributor"
	RoleProducer    Role = "producer"
)

// aliases used by the client application's signup form
var roleAliases = map[string]Role{
	"supplier":    RoleSupplier,
	"retailer":    RoleSupplier,
	"distributor": RoleDistributor,
	"ngo":         RoleDistributor,
	"producer":    RoleProducer,
	"farmer":      RoleProducer,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSupplier, RoleDistributor, RoleProducer:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidRole
	}
	return role, nil
}
