package models

import "time"

// AuditLog is an advisory trail row recorded for every mutating operation.
// Writes happen off the request path; there is no read API.
type AuditLog struct {
	ID         int64          `json:"id"`
	ActorID    *string        `json:"actor_id"`
	EntityType string         `json:"entity_type"`
	EntityID   *string        `json:"entity_id"`
	Action     string         `json:"action"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}
