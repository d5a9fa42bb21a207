package entity

import "time"

// Watermark marca el último registro visto por un consumidor de notificaciones.
// El valor cero significa "nunca se ha visto nada".
type Watermark struct {
	LastSeenAt time.Time
	LastSeenID string
}

// IsZero indica que no hay marca registrada.
func (w Watermark) IsZero() bool { return w.LastSeenAt.IsZero() && w.LastSeenID == "" }
