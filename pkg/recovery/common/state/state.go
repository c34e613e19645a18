package state

type State interface {
	ID() string
	Shares() int
	SetShares(n int)
	Aborted() bool
	SetAborted()
	Completed() bool
	SetCompleted()
}

type StateStore interface {
	Import(ID string, state State) error
	Get(ID string) (State, error)
}

type StateManager interface {
	NewState(ID string) error
	Import(state State) error
	SetShares(ID string, n int) error
	SetAborted(ID string) error
	SetCompleted(ID string) error
	Get(ID string) (State, error)
}
