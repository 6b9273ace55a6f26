// Package memory holds map-backed implementations of the repository
// interfaces. They back the service and HTTP tests and are handy for
// running the API without a database; the postgres package is the
// production path.
package memory

import (
	"sync"

	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Projects  repo.Projects
	Proposals repo.Proposals
	AuditLogs repo.AuditLogs
}

// store is shared by all repositories so cross-entity operations (delete
// cascade, accept cascade) mutate under one lock, mirroring the postgres
// transactions.
type store struct {
	mu        sync.Mutex
	seq       int64
	users     map[string]models.User
	projects  map[string]models.Project
	proposals map[string]models.Proposal
	order     map[string]int64 // row id -> insertion sequence, for stable ordering
	audits    []models.AuditLog
}

func NewRepositories() Repositories {
	s := &store{
		users:     map[string]models.User{},
		projects:  map[string]models.Project{},
		proposals: map[string]models.Proposal{},
		order:     map[string]int64{},
	}
	return Repositories{
		Users:     &usersRepo{s},
		Projects:  &projectsRepo{s},
		Proposals: &proposalsRepo{s},
		AuditLogs: &auditLogsRepo{s},
	}
}

func (s *store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
