package entity

// Role is carried in access tokens. Every account is a household consumer;
// data access is scoped by user ID, not by role.
type Role string

const RoleUser Role = "user"

func (r Role) IsValid() bool {
	return r == RoleUser
}

type Roles []Role

// ParseRoles keeps the known roles from a token or database row.
func ParseRoles(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); r.IsValid() {
			out = append(out, r)
		}
	}

	return out
}

// OrDefault returns rs, or just RoleUser when rs is empty.
func (rs Roles) OrDefault() Roles {
	if len(rs) == 0 {
		return Roles{RoleUser}
	}

	return rs
}

func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}
