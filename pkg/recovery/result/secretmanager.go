package result

import (
	"math/big"

	comm_result "github.com/mr-shifu/sss-lib/pkg/recovery/common/result"
)

type SecretManager struct {
	store comm_result.SecretStore
}

func NewSecretManager(store comm_result.SecretStore) *SecretManager {
	return &SecretManager{
		store: store,
	}
}

var _ comm_result.SecretManager = (*SecretManager)(nil)

// NewSecret stores value as the result of session ID.
func (mgr *SecretManager) NewSecret(ID string, value *big.Int, fingerprint []byte) (comm_result.Secret, error) {
	s := NewSecret(ID, value, fingerprint)
	if err := mgr.store.Import(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (mgr *SecretManager) Import(secret comm_result.Secret) error {
	return mgr.store.Import(secret)
}

func (mgr *SecretManager) Get(ID string) (comm_result.Secret, error) {
	return mgr.store.Get(ID)
}

// Lookup returns a secret previously computed from the same fingerprint.
func (mgr *SecretManager) Lookup(fingerprint []byte) (comm_result.Secret, error) {
	return mgr.store.GetByFingerprint(fingerprint)
}
