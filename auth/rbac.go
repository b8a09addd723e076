// Package auth holds the pieces every handler shares: the session
// token issuer, the identity-provider bridge and the single
// authorization predicate.
package auth

import "aurora-backend/models"

type Resource string

const (
	ResourceServices     Resource = "services"
	ResourceCategories   Resource = "categories"
	ResourceCustomers    Resource = "customers"
	ResourceAppointments Resource = "appointments"
	ResourceStaff        Resource = "staff"
	ResourceUsers        Resource = "users"
	ResourceDashboard    Resource = "dashboard"
	ResourceSettings     Resource = "settings"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Principal is the authenticated actor behind a request.
type Principal struct {
	ID    string
	Email string
	Role  models.Role
}

// grants lists the non-admin roles allowed per resource and action.
// ADMIN is allowed everything and never appears here. STAFF is
// deliberately read-only on services and the staff directory.
var grants = map[Resource]map[Action][]models.Role{
	ResourceServices: {
		ActionRead: {models.RoleUser, models.RoleStaff},
	},
	ResourceCategories: {
		ActionRead: {models.RoleUser},
	},
	ResourceCustomers: {
		ActionRead:   {models.RoleUser},
		ActionCreate: {models.RoleUser},
		ActionUpdate: {models.RoleUser},
		ActionDelete: {models.RoleUser},
	},
	ResourceAppointments: {
		ActionRead:   {models.RoleUser},
		ActionCreate: {models.RoleUser},
	},
	ResourceStaff: {
		ActionRead: {models.RoleUser, models.RoleStaff},
	},
	ResourceDashboard: {
		ActionRead: {models.RoleUser},
	},
	ResourceSettings: {
		ActionRead: {models.RoleUser},
	},
}

// Authorize decides whether role may perform action on resource.
// It is a pure decision: unauthenticated callers (empty role) are
// always denied and ADMIN is always allowed.
func Authorize(role models.Role, resource Resource, action Action) bool {
	if role == models.RoleAdmin {
		return true
	}
	for _, allowed := range grants[resource][action] {
		if allowed == role {
			return true
		}
	}
	return false
}
