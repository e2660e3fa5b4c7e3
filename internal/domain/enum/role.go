package enum

import "encoding/json"

// Role represents a user's access level on the till
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// Valid reports whether the role is one of the recognized values
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCashier
}

func (r Role) String() string {
	return string(r)
}

// NormalizeRole coerces unrecognized input to the cashier role
func NormalizeRole(s string) Role {
	r := Role(s)
	if !r.Valid() {
		return RoleCashier
	}
	return r
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

// UnmarshalJSON accepts any string and coerces unknown values to cashier,
// so a hand-edited credential file never yields an invalid role.
func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = NormalizeRole(str)
	return nil
}
