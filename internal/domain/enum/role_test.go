package enum

import (
	"encoding/json"
	"testing"
)

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"cashier", RoleCashier},
		{"manager", RoleCashier},
		{"", RoleCashier},
		{"ADMIN", RoleCashier},
	}
	for _, c := range cases {
		if got := NormalizeRole(c.in); got != c.want {
			t.Fatalf("NormalizeRole(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleCashier.Valid() {
		t.Fatal("known roles reported invalid")
	}
	if Role("root").Valid() {
		t.Fatal("unknown role reported valid")
	}
}

func TestRoleUnmarshalCoerces(t *testing.T) {
	var r Role
	if err := json.Unmarshal([]byte(`"supervisor"`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r != RoleCashier {
		t.Fatalf("role = %q, want cashier", r)
	}
}
