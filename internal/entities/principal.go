package entities

import "strings"

type Principal struct {
	Subject string
	Email   string
	Role    string
}

var adminRoles = map[string]struct{}{
	"admin":       {},
	"super admin": {},
	"superadmin":  {},
	"manager":     {},
	"support":     {},
}

func (p Principal) IsAdmin() bool {
	_, ok := adminRoles[strings.ToLower(strings.TrimSpace(p.Role))]
	return ok
}
