package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sex is the declared sex of a tailor.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// ParseSex accepts "Male", "Female", "M" or "F" in any case.
func ParseSex(raw string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m":
		return SexMale, true
	case "female", "f":
		return SexFemale, true
	default:
		return "", false
	}
}

// Tailor is a service-provider account. Username is the login identifier.
type Tailor struct {
	ID                 uuid.UUID
	FullName           string
	Username           string
	Email              string
	NationalIDNumber   string
	PhoneNumber        string
	Sex                Sex
	AreaOfResidence    string
	AreaOfWork         string
	DateOfRegistration time.Time
	PasswordHash       string
	IsActive           bool
	IsStaff            bool
}

// NormalizeUsername canonicalises a tailor username as it is stored and looked up:
// surrounding whitespace removed, a single trailing '@' dropped, lowercased.
func NormalizeUsername(username string) string {
	username = strings.TrimSpace(username)
	username = strings.TrimSuffix(username, "@")

	return strings.ToLower(strings.TrimSpace(username))
}
