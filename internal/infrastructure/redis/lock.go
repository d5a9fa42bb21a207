package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const defaultLockTTL = 10 * time.Minute

type lockStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	DelIfValue(ctx context.Context, key, value string) (bool, error)
}

// Lock candado distribuido con SETNX + TTL. Solo el dueño puede liberarlo.
type Lock struct {
	client lockStore
	key    string
	ttl    time.Duration
	owner  string
}

// NewLock construye un candado sobre la clave stocks:lock:<name>.
func NewLock(client lockStore, name string, ttl time.Duration) (*Lock, error) {
	if client == nil {
		return nil, errors.New("redis.NewLock: cliente requerido")
	}
	if name == "" {
		return nil, errors.New("redis.NewLock: nombre requerido")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &Lock{client: client, key: Key("lock", name), ttl: ttl}, nil
}

// Acquire intenta tomar el candado por el TTL configurado.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	owner := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, owner, l.ttl)
	if err != nil {
		return false, fmt.Errorf("redis.Lock.Acquire: %w", err)
	}
	if ok {
		l.owner = owner
	}
	return ok, nil
}

// Release borra la clave solo si el dueño sigue siendo este proceso.
// La comparación y el borrado son atómicos: si el TTL venció y otra réplica
// tomó el candado, no se toca.
func (l *Lock) Release(ctx context.Context) error {
	if l.owner == "" {
		return nil
	}
	owner := l.owner
	l.owner = ""
	if _, err := l.client.DelIfValue(ctx, l.key, owner); err != nil {
		return fmt.Errorf("redis.Lock.Release: %w", err)
	}
	return nil
}
