// Package identity extracts storefront roles and display helpers from
// backend-issued credentials.
package identity

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
)

// Role is the storefront audience a user belongs to.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Roles returns every role in display order.
func Roles() []Role {
	return []Role{RoleBuyer, RoleVendor, RoleAdmin}
}

// String returns the lowercase role name.
func (r Role) String() string {
	return string(r)
}

// Backend returns the upper-case role name the backend expects.
func (r Role) Backend() string {
	return strings.ToUpper(string(r))
}

// ParseRole normalizes backend role spellings. Unknown values map to buyer.
func ParseRole(value string) Role {
	role, _ := lookupRole(value)
	return role
}

// ValidRole reports whether value names a known role.
func ValidRole(value string) bool {
	_, ok := lookupRole(value)
	return ok
}

func lookupRole(value string) (Role, bool) {
	value = strings.TrimSpace(value)
	if len(value) >= 5 && strings.EqualFold(value[:5], "ROLE_") {
		value = value[5:]
	}
	switch strings.ToLower(value) {
	case "buyer":
		return RoleBuyer, true
	case "vendor", "seller":
		return RoleVendor, true
	case "admin":
		return RoleAdmin, true
	default:
		return RoleBuyer, false
	}
}

// RoleFromClaims reads the roles, authorities or role claim. Arrays yield
// their first element; elements may be strings or {"authority": "..."}.
func RoleFromClaims(claims map[string]any) (Role, bool) {
	for _, name := range []string{"roles", "authorities", "role"} {
		raw, ok := claims[name]
		if !ok {
			continue
		}
		if value, ok := claimRoleValue(raw); ok {
			return ParseRole(value), true
		}
	}
	return RoleBuyer, false
}

func claimRoleValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, strings.TrimSpace(v) != ""
	case []any:
		if len(v) == 0 {
			return "", false
		}
		return claimRoleValue(v[0])
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return v[0], strings.TrimSpace(v[0]) != ""
	case map[string]any:
		authority, _ := v["authority"].(string)
		return authority, strings.TrimSpace(authority) != ""
	default:
		return "", false
	}
}

var roleTextPattern = regexp.MustCompile(`(?i)ROLE_[A-Z]+`)

// RoleFromText finds a ROLE_X marker, in any case, in a plain-text login
// response.
func RoleFromText(body string) (Role, bool) {
	match := roleTextPattern.FindString(body)
	if match == "" {
		return RoleBuyer, false
	}
	return ParseRole(match), true
}

// DashboardPath returns the landing page for role.
func DashboardPath(role Role) string {
	if _, ok := lookupRole(string(role)); !ok {
		role = RoleBuyer
	}
	return routepath.Dashboard(string(role))
}

// Initials returns the first letters of the first and last names, upper-cased.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return firstLetter(parts[0])
	default:
		return firstLetter(parts[0]) + firstLetter(parts[len(parts)-1])
	}
}

func firstLetter(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r))
}
