package role

// Role is a closed set. The string values are the exact, case-sensitive
// names stored in the roles table and must not be renamed.
type Role string

const (
	Employee   Role = "Employé"
	Admin      Role = "Admin"
	SuperAdmin Role = "Super Admin"
)

// implies lists the lower roles each role satisfies in addition to itself.
var implies = map[Role][]Role{
	SuperAdmin: {Admin, Employee},
}

// All returns every known role, lowest first.
func All() []Role {
	return []Role{Employee, Admin, SuperAdmin}
}

// Parse maps a stored role name onto the closed set.
func Parse(name string) (Role, bool) {
	switch Role(name) {
	case Employee, Admin, SuperAdmin:
		return Role(name), true
	}
	return "", false
}

// Satisfies reports whether a holder of r passes a gate requiring required.
// A role always satisfies itself; Super Admin additionally satisfies the
// Admin and Employé gates.
func (r Role) Satisfies(required Role) bool {
	if r == required {
		return true
	}
	for _, lower := range implies[r] {
		if lower == required {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
