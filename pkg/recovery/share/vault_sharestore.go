package share

import (
	"errors"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/share"
	"github.com/mr-shifu/sss-lib/pkg/common/vault"
	comm_share "github.com/mr-shifu/sss-lib/pkg/recovery/common/share"
)

var (
	ErrNoShares       = errors.New("share: no shares for session")
	ErrMissingPayload = errors.New("share: payload missing from vault")
)

// VaultShareStore keeps CBOR encoded shares in a vault under "<ID>/<key>"
// and remembers the submission order of every session.
type VaultShareStore struct {
	lock  sync.RWMutex
	v     vault.Vault
	index map[string][]string
}

var _ comm_share.ShareStore = (*VaultShareStore)(nil)

func NewVaultShareStore(v vault.Vault) *VaultShareStore {
	return &VaultShareStore{
		v:     v,
		index: make(map[string][]string),
	}
}

func vaultID(ID, key string) string {
	return ID + "/" + key
}

func (s *VaultShareStore) Import(ID string, sh share.EncodedShare) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, key := range s.index[ID] {
		if key == sh.Key {
			return errs.WithKey(errs.DuplicateX, sh.Key, "share already submitted")
		}
	}

	data, err := cbor.Marshal(sh)
	if err != nil {
		return err
	}
	if err := s.v.Import(vaultID(ID, sh.Key), data); err != nil {
		return err
	}

	s.index[ID] = append(s.index[ID], sh.Key)
	return nil
}

func (s *VaultShareStore) GetAll(ID string) ([]share.EncodedShare, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys, ok := s.index[ID]
	if !ok {
		return nil, ErrNoShares
	}

	shares := make([]share.EncodedShare, 0, len(keys))
	for _, key := range keys {
		data, err := s.v.Get(vaultID(ID, key))
		if err != nil {
			return nil, ErrMissingPayload
		}
		var sh share.EncodedShare
		if err := cbor.Unmarshal(data, &sh); err != nil {
			return nil, err
		}
		shares = append(shares, sh)
	}
	return shares, nil
}

func (s *VaultShareStore) Delete(ID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.index, ID)
	return s.v.DeletePrefix(ID + "/")
}
