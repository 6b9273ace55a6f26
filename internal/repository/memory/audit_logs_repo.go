package memory

import (
	"context"
	"time"

	"github.com/sharktalent/backend/internal/models"
)

type auditLogsRepo struct{ s *store }

func (r *auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l.ID = int64(len(r.s.audits) + 1)
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	r.s.audits = append(r.s.audits, l)
	return nil
}
