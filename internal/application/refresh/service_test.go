package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// ── Helpers de test ─────────────────────────────────────────────────────────

type fakeLock struct {
	acquired bool
	err      error
}

func (f *fakeLock) Acquire(context.Context) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.acquired {
		return false, nil
	}
	f.acquired = true
	return true, nil
}

func (f *fakeLock) Release(context.Context) error { f.acquired = false; return nil }

type testJob struct {
	mu   sync.Mutex
	name string
	err  error
	runs int
}

func (j *testJob) Name() string { return j.name }

func (j *testJob) Run(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.runs++
	return j.err
}

func (j *testJob) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.runs
}

type fakeMetrics struct {
	success, failure map[string]int
	observed         int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{success: map[string]int{}, failure: map[string]int{}}
}

func (m *fakeMetrics) ObserveDuration(string, time.Duration) { m.observed++ }
func (m *fakeMetrics) IncSuccess(job string)                 { m.success[job]++ }
func (m *fakeMetrics) IncFailure(job string)                 { m.failure[job]++ }

// ── Tests ───────────────────────────────────────────────────────────────────

func TestNewService_Validaciones(t *testing.T) {
	_, err := NewService(ServiceParams{Lock: &fakeLock{}})
	assert.Error(t, err)
	_, err = NewService(ServiceParams{Logger: logger.Nop()})
	assert.Error(t, err)

	s, err := NewService(ServiceParams{Logger: logger.Nop(), Lock: &fakeLock{}})
	require.NoError(t, err)
	assert.Equal(t, defaultInterval, s.interval)
}

func TestRunOnce_EjecutaTodosAunqueUnoFalle(t *testing.T) {
	ok := &testJob{name: "ok"}
	fail := &testJob{name: "fail", err: errors.New("boom")}
	m := newFakeMetrics()
	s, err := NewService(ServiceParams{Logger: logger.Nop(), Registry: NewRegistry(fail, nil, ok), Lock: &fakeLock{}, Metrics: m})
	require.NoError(t, err)

	require.NoError(t, s.RunOnce(context.Background()))

	assert.Equal(t, 1, ok.count())
	assert.Equal(t, 1, fail.count())
	assert.Equal(t, 1, m.success["ok"])
	assert.Equal(t, 1, m.failure["fail"])
	assert.Equal(t, 2, m.observed)
}

func TestRunOnce_OmiteSiOtroTieneElLock(t *testing.T) {
	job := &testJob{name: "ok"}
	lock := &fakeLock{acquired: true}
	s, err := NewService(ServiceParams{Logger: logger.Nop(), Registry: NewRegistry(job), Lock: lock})
	require.NoError(t, err)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 0, job.count())

	s.lock = &fakeLock{err: errors.New("redis caído")}
	assert.Error(t, s.RunOnce(context.Background()))
}

func TestRun_SeDetieneConElContexto(t *testing.T) {
	job := &testJob{name: "ok"}
	s, err := NewService(ServiceParams{Logger: logger.Nop(), Registry: NewRegistry(job), Lock: &fakeLock{}, Interval: 10 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return job.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run no terminó tras cancelar el contexto")
	}
}
