package repository

import (
	"context"
	"errors"

	"github.com/sharktalent/backend/internal/models"
)

// ErrNotFound is returned when no row matches the given identifier.
// Implementations translate their driver's not-found error into this one.
var ErrNotFound = errors.New("not found")

// ErrAlreadyDecided is returned by Accept/Reject when the target proposal
// has already left the pending state.
var ErrAlreadyDecided = errors.New("proposal already decided")

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, u models.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type Projects interface {
	Create(ctx context.Context, p models.Project) (models.Project, error)
	GetByID(ctx context.Context, id string) (models.Project, error)
	// List returns one page of projects with the given status, newest first,
	// with the owning client's display name joined in, plus the total match count.
	List(ctx context.Context, status models.ProjectStatus, limit, offset int) ([]models.ProjectWithClient, int64, error)
	// ListByClient returns one page of the client's own projects, newest first,
	// each annotated with its live proposal count, plus the total match count.
	ListByClient(ctx context.Context, clientID string, limit, offset int) ([]models.ProjectWithCount, int64, error)
	Update(ctx context.Context, p models.Project) error
	// DeleteCascade removes all proposals referencing the project and the
	// project itself as one atomic unit.
	DeleteCascade(ctx context.Context, id string) error
}

type Proposals interface {
	Create(ctx context.Context, p models.Proposal) (models.Proposal, error)
	GetByID(ctx context.Context, id string) (models.Proposal, error)
	GetDetail(ctx context.Context, id string) (models.ProposalDetail, error)
	ListByProject(ctx context.Context, projectID string) ([]models.ProposalWithFreelancer, error)
	ListByFreelancer(ctx context.Context, freelancerID string, limit, offset int) ([]models.ProposalWithProject, int64, error)
	CountByFreelancerAndProject(ctx context.Context, freelancerID, projectID string) (int64, error)
	// Accept marks the proposal accepted, forces every other proposal on the
	// same project to rejected, and moves the project to in_progress — all in
	// one transaction. Returns ErrAlreadyDecided if the proposal is not pending.
	Accept(ctx context.Context, proposalID, projectID string) error
	// Reject marks a pending proposal rejected. No cascade.
	Reject(ctx context.Context, proposalID string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
