package domain

import (
	"errors"
	"testing"
)

func TestAuthorize_AdminBypassesEverything(t *testing.T) {
	admin := Principal{UserID: "u_admin", Email: "admin@example.com", Role: RoleAdmin}

	actions := []Action{ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete}
	resources := []Resource{ResourceUser, ResourceProduct, ResourceOrder}

	for _, r := range resources {
		for _, a := range actions {
			// Owner mismatch must not matter for admins.
			if err := Authorize(admin, a, r, "someone_else"); err != nil {
				t.Errorf("admin %s %s: expected allow, got %v", a, r, err)
			}
		}
	}
}

func TestAuthorize_UserRoleMatrix(t *testing.T) {
	user := Principal{UserID: "u_1", Email: "user@example.com", Role: RoleUser}

	cases := []struct {
		name     string
		action   Action
		resource Resource
		ownerID  string
		allow    bool
	}{
		{"list products", ActionList, ResourceProduct, "", true},
		{"read product", ActionRead, ResourceProduct, "", true},
		{"create product", ActionCreate, ResourceProduct, "", false},
		{"update product", ActionUpdate, ResourceProduct, "", false},
		{"delete product", ActionDelete, ResourceProduct, "", false},

		{"list orders", ActionList, ResourceOrder, "", true},
		{"create order", ActionCreate, ResourceOrder, "", true},
		{"read own order", ActionRead, ResourceOrder, "u_1", true},
		{"read other's order", ActionRead, ResourceOrder, "u_2", false},
		{"update order", ActionUpdate, ResourceOrder, "", false},
		{"delete order", ActionDelete, ResourceOrder, "", false},

		{"read own profile", ActionRead, ResourceUser, "u_1", true},
		{"read other user", ActionRead, ResourceUser, "u_2", false},
		{"list users", ActionList, ResourceUser, "", false},
		{"update user", ActionUpdate, ResourceUser, "u_1", false},
		{"delete user", ActionDelete, ResourceUser, "u_1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(user, tc.action, tc.resource, tc.ownerID)
			if tc.allow && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tc.allow && !errors.Is(err, ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAuthorize_AnonymousDeniedEverything(t *testing.T) {
	anon := Principal{}

	if err := Authorize(anon, ActionList, ResourceProduct, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("anonymous list products: expected ErrForbidden, got %v", err)
	}
	if err := Authorize(anon, ActionRead, ResourceOrder, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("anonymous read order: expected ErrForbidden, got %v", err)
	}
}

func TestAuthorize_UnknownRoleDenied(t *testing.T) {
	p := Principal{UserID: "u_1", Role: "superuser"}

	if err := Authorize(p, ActionList, ResourceProduct, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("unknown role: expected ErrForbidden, got %v", err)
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Error("known roles must be valid")
	}
	if ValidRole("") || ValidRole("superuser") {
		t.Error("unknown roles must be invalid")
	}
}
