package state

import (
	"sync"

	com_state "github.com/mr-shifu/sss-lib/pkg/recovery/common/state"
)

type StateManager struct {
	// serializes read-modify-write cycles on a state
	lock  sync.Mutex
	store com_state.StateStore
}

func NewStateManager(store com_state.StateStore) com_state.StateManager {
	return &StateManager{
		store: store,
	}
}

func (mgr *StateManager) NewState(ID string) error {
	s := NewState(ID)
	return mgr.Import(s)
}

func (mgr *StateManager) Import(state com_state.State) error {
	return mgr.store.Import(state.ID(), state)
}

func (mgr *StateManager) SetShares(ID string, n int) error {
	return mgr.update(ID, func(s com_state.State) { s.SetShares(n) })
}

func (mgr *StateManager) SetAborted(ID string) error {
	return mgr.update(ID, com_state.State.SetAborted)
}

func (mgr *StateManager) SetCompleted(ID string) error {
	return mgr.update(ID, com_state.State.SetCompleted)
}

func (mgr *StateManager) Get(ID string) (com_state.State, error) {
	return mgr.store.Get(ID)
}

func (mgr *StateManager) update(ID string, f func(com_state.State)) error {
	mgr.lock.Lock()
	defer mgr.lock.Unlock()

	state, err := mgr.store.Get(ID)
	if err != nil {
		return err
	}

	f(state)

	return mgr.Import(state)
}
