// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher derives and verifies salted password hashes. It
// abstracts the key-derivation primitive (PBKDF2, scrypt, ...) so the
// domain stays free of crypto details.
type CredentialHasher interface {
	// Derive produces a fresh random salt and the hash of password under
	// that salt. The same password never yields the same salt twice.
	// Callers discard the plaintext immediately after.
	Derive(password string) (hash, salt []byte, err error)

	// Verify recomputes the hash of password under salt and compares it
	// to hash in constant time. Returns false on any mismatch and never
	// fails for well-formed inputs.
	Verify(password string, hash, salt []byte) bool
}
