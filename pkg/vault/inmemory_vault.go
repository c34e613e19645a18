package vault

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrPayloadNotFound = errors.New("vault: payload not found")
)

type InMemoryVault struct {
	lock     sync.RWMutex
	payloads map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		payloads: make(map[string][]byte),
	}
}

func (store *InMemoryVault) Import(ID string, data []byte) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	store.payloads[ID] = append([]byte(nil), data...)
	return nil
}

func (store *InMemoryVault) Get(ID string) ([]byte, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	data, ok := store.payloads[ID]
	if !ok {
		return nil, ErrPayloadNotFound
	}
	return append([]byte(nil), data...), nil
}

func (store *InMemoryVault) Delete(ID string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	delete(store.payloads, ID)
	return nil
}

// DeletePrefix removes every payload whose ID starts with prefix.
func (store *InMemoryVault) DeletePrefix(prefix string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	for ID := range store.payloads {
		if strings.HasPrefix(ID, prefix) {
			delete(store.payloads, ID)
		}
	}
	return nil
}
