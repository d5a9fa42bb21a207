package dto

import "time"

// NotificationCountDTO respuesta de GET /api/notifications/orders.
type NotificationCountDTO struct {
	Scope      string     `json:"scope"`
	NewCount   int        `json:"new_count"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}
