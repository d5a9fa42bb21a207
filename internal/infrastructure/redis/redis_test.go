package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/pkg/config"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "stocks:watermark:orders", Key("watermark", "orders"))
	assert.Equal(t, "stocks", Key())
}

func TestOptionsFromConfig(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	require.Error(t, err)

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:secret@localhost:6380/2"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)

	opts, err = optionsFromConfig(config.RedisConfig{Addr: "cache:6379", DB: 3})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 3, opts.DB)
}

func TestWatermarkRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}
	repo := NewWatermarkRepository(client)

	w, err := repo.Get(ctx, "orders")
	require.NoError(t, err)
	assert.Nil(t, w)

	at := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, "orders", entity.Watermark{LastSeenAt: at, LastSeenID: "o-9"}))

	w, err = repo.Get(ctx, "orders")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, w.LastSeenAt.Equal(at))
	assert.Equal(t, "o-9", w.LastSeenID)
}

func TestWatermarkRepository_ValorCorrupto(t *testing.T) {
	mock := newMockCmdable()
	mock.data["stocks:watermark:orders"] = "{no-json"
	repo := NewWatermarkRepository(&Client{store: mock})

	_, err := repo.Get(context.Background(), "orders")
	require.Error(t, err)
}

func TestLock_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	a, err := NewLock(client, "refresh", time.Minute)
	require.NoError(t, err)
	b, err := NewLock(client, "refresh", time.Minute)
	require.NoError(t, err)

	ok, err := a.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// b no es dueño: Release no borra la clave.
	require.NoError(t, b.Release(ctx))
	ok, err = b.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Release(ctx))
	ok, err = b.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLock_ReleaseNoBorraCandadoDeOtraReplica(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}

	a, err := NewLock(client, "refresh", time.Minute)
	require.NoError(t, err)
	b, err := NewLock(client, "refresh", time.Minute)
	require.NoError(t, err)

	ok, err := a.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// Vence el TTL de a y b toma el candado.
	delete(mock.data, Key("lock", "refresh"))
	ok, err = b.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	ownerB := mock.data[Key("lock", "refresh")]

	require.NoError(t, a.Release(ctx))
	assert.Equal(t, ownerB, mock.data[Key("lock", "refresh")], "el candado de b sigue en pie")
	assert.Equal(t, 1, mock.scripts, "comparar y borrar va en un solo script")

	require.NoError(t, b.Release(ctx))
	_, exists := mock.data[Key("lock", "refresh")]
	assert.False(t, exists)
}

func TestDelIfValue(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	client := &Client{store: mock}
	mock.data["k"] = "v1"

	deleted, err := client.DelIfValue(ctx, "k", "otro")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = client.DelIfValue(ctx, "k", "v1")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestNewLock_Validaciones(t *testing.T) {
	_, err := NewLock(nil, "refresh", 0)
	require.Error(t, err)
	_, err = NewLock(&Client{store: newMockCmdable()}, "", 0)
	require.Error(t, err)
}

// ── Mock de cmdable ─────────────────────────────────────────────────────────

type mockCmdable struct {
	data    map[string]string
	scripts int // llamadas a EVAL/EVALSHA
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) SetNX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	if _, exists := m.data[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

// Eval y EvalSha ejecutan el único script que usa el paquete: borrar si el valor coincide.
func (m *mockCmdable) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return m.delIfValue(keys, args)
}

func (m *mockCmdable) EvalSha(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return m.delIfValue(keys, args)
}

func (m *mockCmdable) EvalRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return m.delIfValue(keys, args)
}

func (m *mockCmdable) EvalShaRO(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	return m.delIfValue(keys, args)
}

func (m *mockCmdable) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (m *mockCmdable) ScriptLoad(context.Context, string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func (m *mockCmdable) delIfValue(keys []string, args []interface{}) *redis.Cmd {
	m.scripts++
	if len(keys) != 1 || len(args) != 1 {
		return redis.NewCmdResult(nil, fmt.Errorf("argumentos inesperados"))
	}
	if v, ok := m.data[keys[0]]; ok && v == fmt.Sprint(args[0]) {
		delete(m.data, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}
