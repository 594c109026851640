package policy

import (
	"github.com/marafik-io/greenspace/internal/modules/model"
	"github.com/marafik-io/greenspace/internal/pkg/role"
)

// DenyReason classifies why a gate check failed.
type DenyReason int

const (
	DenyNone DenyReason = iota
	// DenyUnauthenticated: no valid session was presented.
	DenyUnauthenticated
	// DenyIdentityMissing: the session maps to an account with no identity row.
	DenyIdentityMissing
	// DenyDisabled: the identity's active flag is false. The caller must also
	// revoke every session bound to the account.
	DenyDisabled
	// DenyInsufficientRole: the identity's role does not satisfy the gate.
	DenyInsufficientRole
)

func (r DenyReason) String() string {
	switch r {
	case DenyNone:
		return "allow"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyIdentityMissing:
		return "identity missing"
	case DenyDisabled:
		return "account disabled"
	case DenyInsufficientRole:
		return "insufficient role"
	}
	return "unknown"
}

// Decision is the outcome of a gate check.
type Decision struct {
	Allow  bool
	Reason DenyReason
}

// Decide is the access-control gate. It is a pure function of the session
// state, the resolved identity and the required role, evaluated on every
// protected request; decisions are never cached.
//
// Rules, in order: unauthenticated callers are denied; an authenticated
// caller without an identity row is denied; an inactive identity is denied
// regardless of role; an exact role match is allowed; Super Admin satisfies
// the Admin and Employé gates via the role implies table; anything else is
// an insufficient-role denial.
func Decide(authenticated bool, ident *model.Identity, required role.Role) Decision {
	if !authenticated {
		return Decision{Reason: DenyUnauthenticated}
	}
	if ident == nil {
		return Decision{Reason: DenyIdentityMissing}
	}
	if !ident.Active {
		return Decision{Reason: DenyDisabled}
	}
	held, ok := role.Parse(ident.RoleName())
	if ok && held.Satisfies(required) {
		return Decision{Allow: true}
	}
	return Decision{Reason: DenyInsufficientRole}
}
