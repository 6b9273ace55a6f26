package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/sharktalent/backend/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Projects  repo.Projects
	Proposals repo.Proposals
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Projects:  &projectsRepo{pool},
		Proposals: &proposalsRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}

// mapErr translates driver-level not-found into the repository sentinel.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	return err
}
