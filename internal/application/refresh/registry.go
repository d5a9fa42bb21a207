package refresh

import "context"

// Job tarea periódica ejecutada por el Service.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Registry lista ordenada de jobs registrados.
type Registry struct {
	jobs []Job
}

// NewRegistry crea un registry con los jobs indicados (los nil se ignoran).
func NewRegistry(jobs ...Job) *Registry {
	r := &Registry{}
	for _, job := range jobs {
		r.Register(job)
	}
	return r
}

// Register agrega un job al final.
func (r *Registry) Register(job Job) {
	if job == nil {
		return
	}
	r.jobs = append(r.jobs, job)
}

// Jobs devuelve una copia de los jobs en orden de registro.
func (r *Registry) Jobs() []Job {
	jobs := make([]Job, len(r.jobs))
	copy(jobs, r.jobs)
	return jobs
}
