package result

import (
	"crypto/subtle"
	"math/big"

	"github.com/mr-shifu/sss-lib/core/hash"
	comm_result "github.com/mr-shifu/sss-lib/pkg/recovery/common/result"
)

type Secret struct {
	id          string
	value       *big.Int
	fingerprint []byte
	digest      []byte
}

var _ comm_result.Secret = (*Secret)(nil)

func NewSecret(id string, value *big.Int, fingerprint []byte) *Secret {
	v := new(big.Int).Set(value)
	return &Secret{
		id:          id,
		value:       v,
		fingerprint: append([]byte(nil), fingerprint...),
		digest:      hash.Digest(v),
	}
}

func (s *Secret) ID() string {
	return s.id
}

// Value returns a copy of the secret.
func (s *Secret) Value() *big.Int {
	return new(big.Int).Set(s.value)
}

func (s *Secret) Fingerprint() []byte {
	return append([]byte(nil), s.fingerprint...)
}

func (s *Secret) Digest() []byte {
	return append([]byte(nil), s.digest...)
}

func (s *Secret) Verify(digest []byte) bool {
	return subtle.ConstantTimeCompare(s.digest, digest) == 1
}
