package model

// Role identifies which kind of account a user holds. It is fixed at
// signup; no operation in this layer changes it afterwards.
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleCommittee Role = "committee"
)

// ParseRole validates a raw role string. The second return is false for
// anything outside the three known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleCommittee:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Staff reports whether the role may approve or reject registrations and
// record attendance. Enforced at the HTTP layer, not in the workflow itself.
func (r Role) Staff() bool {
	return r == RoleTeacher || r == RoleCommittee
}
