package result

import (
	"encoding/hex"
	"errors"
	"sync"

	comm_result "github.com/mr-shifu/sss-lib/pkg/recovery/common/result"
)

var ErrSecretNotFound = errors.New("result: secret not found")

type InMemorySecretStore struct {
	lock    sync.RWMutex
	secrets map[string]comm_result.Secret
	// fingerprint (hex) -> ID of the first secret computed from it
	byFingerprint map[string]string
}

func NewInMemorySecretStore() *InMemorySecretStore {
	return &InMemorySecretStore{
		secrets:       make(map[string]comm_result.Secret),
		byFingerprint: make(map[string]string),
	}
}

var _ comm_result.SecretStore = (*InMemorySecretStore)(nil)

func (s *InMemorySecretStore) Import(secret comm_result.Secret) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.secrets[secret.ID()] = secret
	fp := hex.EncodeToString(secret.Fingerprint())
	if _, ok := s.byFingerprint[fp]; !ok {
		s.byFingerprint[fp] = secret.ID()
	}
	return nil
}

func (s *InMemorySecretStore) Get(ID string) (comm_result.Secret, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	secret, ok := s.secrets[ID]
	if !ok {
		return nil, ErrSecretNotFound
	}
	return secret, nil
}

func (s *InMemorySecretStore) GetByFingerprint(fingerprint []byte) (comm_result.Secret, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	ID, ok := s.byFingerprint[hex.EncodeToString(fingerprint)]
	if !ok {
		return nil, ErrSecretNotFound
	}
	return s.secrets[ID], nil
}
