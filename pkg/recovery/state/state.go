package state

import com_state "github.com/mr-shifu/sss-lib/pkg/recovery/common/state"

type State struct {
	id        string
	shares    int
	aborted   bool
	completed bool
}

var _ com_state.State = (*State)(nil)

func NewState(id string) *State {
	return &State{
		id: id,
	}
}

func (s *State) ID() string {
	return s.id
}

// Shares is the number of shares collected so far.
func (s *State) Shares() int {
	return s.shares
}

func (s *State) SetShares(n int) {
	s.shares = n
}

func (s *State) Aborted() bool {
	return s.aborted
}

func (s *State) SetAborted() {
	s.aborted = true
}

func (s *State) Completed() bool {
	return s.completed
}

func (s *State) SetCompleted() {
	s.completed = true
}
