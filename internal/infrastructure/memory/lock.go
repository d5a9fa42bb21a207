package memory

import (
	"context"
	"sync"
)

// Lock es un candado no bloqueante dentro del proceso. Acquire devuelve
// false si ya está tomado.
type Lock struct {
	mu   sync.Mutex
	held bool
}

// NewLock crea un candado libre.
func NewLock() *Lock { return &Lock{} }

func (l *Lock) Acquire(_ context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return false, nil
	}
	l.held = true
	return true, nil
}

func (l *Lock) Release(_ context.Context) error {
	l.mu.Lock()
	l.held = false
	l.mu.Unlock()
	return nil
}
