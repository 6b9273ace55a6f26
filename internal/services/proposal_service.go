package services

import (
	"context"
	"errors"

	"github.com/sharktalent/backend/internal/api/validate"
	"github.com/sharktalent/backend/internal/authz"
	"github.com/sharktalent/backend/internal/metrics"
	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

type ProposalService struct {
	proposals repo.Proposals
	projects  repo.Projects
	audit     *Auditor
}

func NewProposalService(proposals repo.Proposals, projects repo.Projects, audit *Auditor) *ProposalService {
	return &ProposalService{proposals: proposals, projects: projects, audit: audit}
}

type ProposalInput struct {
	ProjectID    string  `json:"project_id"`
	CoverLetter  string  `json:"cover_letter"`
	BidAmount    float64 `json:"bid_amount"`
	TimelineDays int     `json:"timeline_days"`
}

func (s *ProposalService) Create(ctx context.Context, caller authz.Caller, in ProposalInput) (models.Proposal, error) {
	if err := authz.RequireRole(caller, models.RoleFreelancer); err != nil {
		return models.Proposal{}, err
	}

	var errs validate.Errs
	errs.Require("project_id", in.ProjectID)
	errs.Require("cover_letter", in.CoverLetter)
	errs.Positive("bid_amount", in.BidAmount)
	errs.PositiveInt("timeline_days", in.TimelineDays)
	if err := errs.Err(); err != nil {
		return models.Proposal{}, invalid(err.Error())
	}

	project, err := s.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Proposal{}, notFound("Project not found")
		}
		return models.Proposal{}, err
	}
	if project.Status != models.ProjectOpen {
		return models.Proposal{}, conflict("Project is not accepting proposals")
	}

	count, err := s.proposals.CountByFreelancerAndProject(ctx, caller.ID, in.ProjectID)
	if err != nil {
		return models.Proposal{}, err
	}
	if count >= models.MaxProposalsPerProject {
		return models.Proposal{}, conflict("Proposal limit reached (3 proposals per project)")
	}

	p, err := s.proposals.Create(ctx, models.Proposal{
		CoverLetter:  in.CoverLetter,
		BidAmount:    in.BidAmount,
		TimelineDays: in.TimelineDays,
		Status:       models.ProposalPending,
		FreelancerID: caller.ID,
		ProjectID:    in.ProjectID,
	})
	if err != nil {
		return models.Proposal{}, err
	}

	metrics.ProposalsSubmitted.Inc()
	s.audit.record(caller.ID, "proposal", p.ID, "proposal.submitted", map[string]any{"project_id": p.ProjectID})
	return p, nil
}

// ListForProject returns every proposal on the project, newest first.
// Visible to the project's owning client or an admin.
func (s *ProposalService) ListForProject(ctx context.Context, caller authz.Caller, projectID string) ([]models.ProposalWithFreelancer, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("Project not found")
		}
		return nil, err
	}
	if err := authz.RequireOwnerOrAdmin(caller, project.ClientID); err != nil {
		return nil, err
	}
	return s.proposals.ListByProject(ctx, projectID)
}

// ListMine returns the caller's own proposals with a project snapshot
// joined onto each row.
func (s *ProposalService) ListMine(ctx context.Context, caller authz.Caller, page, perPage int) ([]models.ProposalWithProject, models.Page, error) {
	if err := authz.RequireRole(caller, models.RoleFreelancer); err != nil {
		return nil, models.Page{}, err
	}
	page, perPage = clampPage(page, perPage)

	items, total, err := s.proposals.ListByFreelancer(ctx, caller.ID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, models.Page{}, err
	}
	return items, models.NewPage(total, page, perPage), nil
}

// Get returns one proposal with both sides joined in. Visible to the
// submitting freelancer, the project's owning client, or an admin.
func (s *ProposalService) Get(ctx context.Context, caller authz.Caller, id string) (models.ProposalDetail, error) {
	p, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.ProposalDetail{}, notFound("Proposal not found")
		}
		return models.ProposalDetail{}, err
	}
	project, err := s.projects.GetByID(ctx, p.ProjectID)
	if err != nil {
		return models.ProposalDetail{}, err
	}

	if caller.ID != p.FreelancerID && caller.ID != project.ClientID && !caller.IsAdmin() {
		return models.ProposalDetail{}, authz.ErrDenied
	}
	return s.proposals.GetDetail(ctx, id)
}

// SetStatus accepts or rejects a proposal. Only the project's owning
// client may decide; admins get no bypass here. Accepting cascades: every
// sibling proposal is rejected and the project moves to in_progress, all
// in one transaction. Decided proposals are terminal.
func (s *ProposalService) SetStatus(ctx context.Context, caller authz.Caller, id, status string) error {
	p, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("Proposal not found")
		}
		return err
	}
	project, err := s.projects.GetByID(ctx, p.ProjectID)
	if err != nil {
		return err
	}
	if err := authz.RequireOwner(caller, project.ClientID); err != nil {
		return err
	}

	switch models.ProposalStatus(status) {
	case models.ProposalAccepted:
		err = s.proposals.Accept(ctx, id, p.ProjectID)
	case models.ProposalRejected:
		err = s.proposals.Reject(ctx, id)
	default:
		return invalid(`Status must be "accepted" or "rejected"`)
	}
	if err != nil {
		if errors.Is(err, repo.ErrAlreadyDecided) {
			return conflict("Proposal has already been decided")
		}
		return err
	}

	metrics.ProposalDecisions.WithLabelValues(status).Inc()
	s.audit.record(caller.ID, "proposal", id, "proposal."+status, map[string]any{"project_id": p.ProjectID})
	return nil
}
