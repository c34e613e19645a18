package share

import (
	"sync"

	"github.com/mr-shifu/sss-lib/core/share"
	comm_share "github.com/mr-shifu/sss-lib/pkg/recovery/common/share"
)

type ShareManager struct {
	lock   sync.Mutex
	store  comm_share.ShareStore
	counts map[string]int
}

func NewShareManager(store comm_share.ShareStore) *ShareManager {
	return &ShareManager{
		store:  store,
		counts: make(map[string]int),
	}
}

var _ comm_share.ShareManager = (*ShareManager)(nil)

// Import decodes s before storing it, so malformed shares are rejected at
// submission. It returns the number of shares held for ID.
func (m *ShareManager) Import(ID string, s share.EncodedShare) (int, error) {
	if _, err := share.DecodeShare(s); err != nil {
		return 0, err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if err := m.store.Import(ID, s); err != nil {
		return 0, err
	}
	m.counts[ID]++
	return m.counts[ID], nil
}

func (m *ShareManager) GetAll(ID string) ([]share.EncodedShare, error) {
	return m.store.GetAll(ID)
}

func (m *ShareManager) Delete(ID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.counts, ID)
	return m.store.Delete(ID)
}
