package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
	"github.com/sharktalent/backend/internal/worker"
)

// Auditor records an advisory trail row for every mutating operation.
// Writes run on the worker pool; failures are logged and never surfaced
// to the caller.
type Auditor struct {
	logs repo.AuditLogs
	wp   *worker.Pool
}

func NewAuditor(logs repo.AuditLogs, wp *worker.Pool) *Auditor {
	return &Auditor{logs: logs, wp: wp}
}

func (a *Auditor) record(actorID, entityType, entityID, action string, details map[string]any) {
	if a == nil || a.logs == nil {
		return
	}
	l := models.AuditLog{
		EntityType: entityType,
		Action:     action,
		Details:    details,
	}
	if actorID != "" {
		l.ActorID = &actorID
	}
	if entityID != "" {
		l.EntityID = &entityID
	}

	write := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.logs.Create(ctx, l); err != nil {
			slog.Warn("audit write failed", "action", action, "err", err)
		}
	}
	if a.wp != nil {
		a.wp.Submit(write)
	} else {
		write()
	}
}
