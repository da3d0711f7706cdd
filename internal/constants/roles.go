package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role mirrors the role strings returned by the upstream auth service.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleManager        Role = "manager"
	RoleStudent        Role = "student"
	RoleStudentOfficer Role = "student_officer"
)

func (r Role) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }

// officerTitles is the fixed set of club membership roles that confer
// officer status on a student. Comparison is case-insensitive.
var officerTitles = map[string]bool{
	"president":      true,
	"vice-president": true,
	"secretary":      true,
}

// IsOfficerTitle reports whether a club membership role string counts as an
// officer title.
func IsOfficerTitle(membershipRole string) bool {
	return officerTitles[strings.ToLower(strings.TrimSpace(membershipRole))]
}
