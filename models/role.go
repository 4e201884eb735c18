package models

// Role is the closed set of principal roles. Comparisons go through the
// rank table below so role checks stay consistent across the codebase.
type Role string

const (
	RoleGuest        Role = "guest"
	RoleReceptionist Role = "receptionist"
	RoleManager      Role = "manager"
	RoleOwner        Role = "owner"
)

var roleRank = map[Role]int{
	RoleGuest:        0,
	RoleReceptionist: 1,
	RoleManager:      2,
	RoleOwner:        3,
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r sits at or above min in the role hierarchy.
// Unknown roles never pass.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	mr, ok := roleRank[min]
	if !ok {
		return false
	}
	return rr >= mr
}

// Actor identifies the principal performing an operation. A zero ID with
// RoleGuest represents an anonymous self-service caller.
type Actor struct {
	ID   uint `json:"id"`
	Role Role `json:"role"`
}

func (a Actor) IsStaff() bool {
	return a.Role.AtLeast(RoleReceptionist)
}
