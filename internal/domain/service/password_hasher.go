// Package service declares the stateless collaborators the use cases need
// from infrastructure.
package service

// PasswordHasher produces and checks self-describing password records.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify reports a mismatch as (false, nil). An error means the stored
	// record cannot be parsed.
	Verify(password, record string) (bool, error)
}
