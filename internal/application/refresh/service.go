// Package refresh ejecuta en segundo plano el recálculo periódico de alertas
// (stock bajo, órdenes nuevas, reinicio de notificaciones).
package refresh

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

const defaultInterval = 5 * time.Minute

// Lock coordina ciclos exclusivos entre réplicas.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// Metrics registra duración y resultado de cada job.
type Metrics interface {
	ObserveDuration(job string, d time.Duration)
	IncSuccess(job string)
	IncFailure(job string)
}

// ServiceParams configuración del Service.
type ServiceParams struct {
	Logger   *logger.Logger
	Registry *Registry
	Lock     Lock
	Metrics  Metrics // opcional
	Interval time.Duration
}

// Service ejecuta los jobs registrados con una cadencia fija.
type Service struct {
	log      *logger.Logger
	registry *Registry
	lock     Lock
	metrics  Metrics
	interval time.Duration
}

// NewService construye el scheduler.
func NewService(p ServiceParams) (*Service, error) {
	if p.Logger == nil {
		return nil, errors.New("refresh: logger requerido")
	}
	if p.Lock == nil {
		return nil, errors.New("refresh: lock requerido")
	}
	registry := p.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	interval := p.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		log:      p.Logger.Component("refresh"),
		registry: registry,
		lock:     p.Lock,
		metrics:  p.Metrics,
		interval: interval,
	}, nil
}

// Run ejecuta un ciclo inmediato y luego uno por intervalo hasta que ctx se cancele.
func (s *Service) Run(ctx context.Context) error {
	if err := s.RunOnce(ctx); err != nil {
		s.log.Error().Err(err).Msg("ciclo programado falló")
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler detenido")
			return ctx.Err()
		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				s.log.Error().Err(err).Msg("ciclo programado falló")
			}
		}
	}
}

// RunOnce ejecuta todos los jobs en orden si obtiene el lock.
// El fallo de un job se registra y no detiene a los siguientes.
func (s *Service) RunOnce(ctx context.Context) error {
	locked, err := s.lock.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("refresh: adquirir lock: %w", err)
	}
	if !locked {
		s.log.Info().Msg("otra instancia está ejecutando el ciclo; se omite")
		return nil
	}
	defer func() {
		if relErr := s.lock.Release(ctx); relErr != nil {
			s.log.Error().Err(relErr).Msg("no se pudo liberar el lock")
		}
	}()

	for _, job := range s.registry.Jobs() {
		s.runJob(ctx, job)
	}
	return nil
}

func (s *Service) runJob(ctx context.Context, job Job) {
	start := time.Now()
	err := job.Run(ctx)
	duration := time.Since(start)

	if s.metrics != nil {
		s.metrics.ObserveDuration(job.Name(), duration)
	}
	ev := s.log.Info()
	if err != nil {
		ev = s.log.Error().Err(err)
	}
	ev.Str("job", job.Name()).Int64("duration_ms", duration.Milliseconds()).Msg("job ejecutado")

	if s.metrics == nil {
		return
	}
	if err != nil {
		s.metrics.IncFailure(job.Name())
		return
	}
	s.metrics.IncSuccess(job.Name())
}
