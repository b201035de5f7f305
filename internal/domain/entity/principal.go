// Package entity holds the core domain types of the tailoring marketplace.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// PrincipalKind tells which credential family an account belongs to.
// The kind of a principal is fixed at creation and never changes.
type PrincipalKind string

const (
	PrincipalCustomer PrincipalKind = "customer"
	PrincipalTailor   PrincipalKind = "tailor"
)

// Valid reports whether k is one of the known principal kinds.
func (k PrincipalKind) Valid() bool {
	return k == PrincipalCustomer || k == PrincipalTailor
}

func (k PrincipalKind) String() string {
	return string(k)
}

// ParsePrincipalKind converts a raw claim or config value into a PrincipalKind.
func ParsePrincipalKind(raw string) (PrincipalKind, bool) {
	kind := PrincipalKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", false
	}

	return kind, true
}

// Principal is an authenticated account of either kind.
// Exactly one of Customer or Tailor is set, matching Kind.
type Principal struct {
	Kind     PrincipalKind
	Customer *Customer
	Tailor   *Tailor
}

// NewCustomerPrincipal wraps a customer account.
func NewCustomerPrincipal(c *Customer) Principal {
	return Principal{Kind: PrincipalCustomer, Customer: c}
}

// NewTailorPrincipal wraps a tailor account.
func NewTailorPrincipal(t *Tailor) Principal {
	return Principal{Kind: PrincipalTailor, Tailor: t}
}

// ID returns the stable identifier of the underlying account.
func (p Principal) ID() uuid.UUID {
	switch p.Kind {
	case PrincipalCustomer:
		if p.Customer != nil {
			return p.Customer.ID
		}
	case PrincipalTailor:
		if p.Tailor != nil {
			return p.Tailor.ID
		}
	}

	return uuid.Nil
}

// Identifier returns the login identifier: email for customers, username for tailors.
func (p Principal) Identifier() string {
	switch p.Kind {
	case PrincipalCustomer:
		if p.Customer != nil {
			return p.Customer.Email
		}
	case PrincipalTailor:
		if p.Tailor != nil {
			return p.Tailor.Username
		}
	}

	return ""
}

// PasswordHash returns the stored hash record of the account.
func (p Principal) PasswordHash() string {
	switch p.Kind {
	case PrincipalCustomer:
		if p.Customer != nil {
			return p.Customer.PasswordHash
		}
	case PrincipalTailor:
		if p.Tailor != nil {
			return p.Tailor.PasswordHash
		}
	}

	return ""
}

// IsActive reports the account's active flag.
func (p Principal) IsActive() bool {
	switch p.Kind {
	case PrincipalCustomer:
		return p.Customer != nil && p.Customer.IsActive
	case PrincipalTailor:
		return p.Tailor != nil && p.Tailor.IsActive
	}

	return false
}
