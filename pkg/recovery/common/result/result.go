package result

import "math/big"

// Secret is the outcome of a completed recovery session.
type Secret interface {
	ID() string
	Value() *big.Int
	// Fingerprint identifies the inputs the secret was computed from.
	Fingerprint() []byte
	// Digest is SHA3-256 of the decimal secret.
	Digest() []byte
	Verify(digest []byte) bool
}

type SecretStore interface {
	Import(secret Secret) error
	Get(ID string) (Secret, error)
	GetByFingerprint(fingerprint []byte) (Secret, error)
}

type SecretManager interface {
	NewSecret(ID string, value *big.Int, fingerprint []byte) (Secret, error)
	Import(secret Secret) error
	Get(ID string) (Secret, error)
	Lookup(fingerprint []byte) (Secret, error)
}
