package domain

import "errors"

var ErrForbidden = errors.New("action forbidden")

// Action is a coarse operation class checked by the policy.
type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource names a policy-controlled entity type.
type Resource string

const (
	ResourceUser    Resource = "user"
	ResourceProduct Resource = "product"
	ResourceOrder   Resource = "order"
)

// Principal is the authenticated actor attached to a request. A zero
// Principal (empty role) represents an anonymous caller and is denied
// everything.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// userPolicy lists the actions the "user" role may perform per resource.
// ownerOnly marks actions that additionally require the principal to own
// the target record. Admins bypass the table entirely; unknown roles match
// nothing and are denied.
var userPolicy = map[Resource]map[Action]struct{ ownerOnly bool }{
	ResourceProduct: {
		ActionList: {},
		ActionRead: {},
	},
	ResourceOrder: {
		ActionList:   {},
		ActionCreate: {},
		ActionRead:   {ownerOnly: true},
	},
	ResourceUser: {
		ActionRead: {ownerOnly: true},
	},
}

// Authorize decides whether the principal may perform action on the given
// resource type. ownerID is the owning user of the target record where
// ownership matters; pass "" for collection-level actions. Returns nil on
// allow and ErrForbidden on deny.
func Authorize(p Principal, action Action, resource Resource, ownerID string) error {
	if p.IsAdmin() {
		return nil
	}
	if p.Role != RoleUser {
		return ErrForbidden
	}

	rule, ok := userPolicy[resource][action]
	if !ok {
		return ErrForbidden
	}
	if rule.ownerOnly && ownerID != p.UserID {
		return ErrForbidden
	}
	return nil
}
