package state

import (
	"errors"
	"sync"

	com_state "github.com/mr-shifu/sss-lib/pkg/recovery/common/state"
)

var ErrStateNotFound = errors.New("state: state not found")

type InMemoryStateStore struct {
	lock  sync.RWMutex
	stats map[string]com_state.State
}

func NewInMemoryStateStore() *InMemoryStateStore {
	return &InMemoryStateStore{
		stats: make(map[string]com_state.State),
	}
}

func (s *InMemoryStateStore) Import(ID string, stat com_state.State) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.stats[ID] = stat

	return nil
}

func (s *InMemoryStateStore) Get(ID string) (com_state.State, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stat, ok := s.stats[ID]
	if !ok {
		return nil, ErrStateNotFound
	}

	return stat, nil
}
