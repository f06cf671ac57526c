package state

import (
	"sync"
	"time"
)

// Роли и шаги диалогов.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"

	StepShiftOutlet   = "shift_outlet"
	StepShiftPosition = "shift_position"

	StepStartInput   = "start_input"
	StepStartConfirm = "start_confirm"
	StepEndInput     = "end_input"
	StepEndConfirm   = "end_confirm"
)

type State struct {
	Role string
	Step string

	// заполнение смены
	Date     time.Time
	Outlet   string
	Position string

	// период для импорта Poster
	StartDate string
	EndDate   string
}

// Store — состояния диалогов по chat id.
type Store struct {
	mu sync.Mutex
	m  map[int64]State
}

func NewStore() *Store {
	return &Store{m: make(map[int64]State)}
}

func (s *Store) Get(id int64) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.m[id]
	return st, ok
}

func (s *Store) Set(id int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = st
}

func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}
