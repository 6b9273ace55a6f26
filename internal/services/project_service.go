package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sharktalent/backend/internal/api/validate"
	"github.com/sharktalent/backend/internal/authz"
	"github.com/sharktalent/backend/internal/metrics"
	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	return page, perPage
}

type ProjectService struct {
	projects repo.Projects
	audit    *Auditor
}

func NewProjectService(projects repo.Projects, audit *Auditor) *ProjectService {
	return &ProjectService{projects: projects, audit: audit}
}

// List returns one page of projects filtered by status, newest first.
// An unknown status or an out-of-range page yields an empty page, not an error.
func (s *ProjectService) List(ctx context.Context, status string, page, perPage int) ([]models.ProjectWithClient, models.Page, error) {
	if status == "" {
		status = string(models.ProjectOpen)
	}
	page, perPage = clampPage(page, perPage)

	items, total, err := s.projects.List(ctx, models.ProjectStatus(status), perPage, (page-1)*perPage)
	if err != nil {
		return nil, models.Page{}, err
	}
	return items, models.NewPage(total, page, perPage), nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (models.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.Project{}, notFound("Project not found")
		}
		return models.Project{}, err
	}
	return p, nil
}

type ProjectInput struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Budget         float64 `json:"budget"`
	SkillsRequired string  `json:"skills_required"`
}

func (s *ProjectService) Create(ctx context.Context, caller authz.Caller, in ProjectInput) (models.Project, error) {
	if err := authz.RequireRole(caller, models.RoleClient); err != nil {
		return models.Project{}, err
	}

	var errs validate.Errs
	errs.Require("title", in.Title)
	errs.Require("description", in.Description)
	errs.Require("skills_required", in.SkillsRequired)
	errs.Positive("budget", in.Budget)
	if err := errs.Err(); err != nil {
		return models.Project{}, invalid(err.Error())
	}

	p, err := s.projects.Create(ctx, models.Project{
		Title:          in.Title,
		Description:    in.Description,
		Budget:         in.Budget,
		SkillsRequired: in.SkillsRequired,
		Status:         models.ProjectOpen,
		ClientID:       caller.ID,
	})
	if err != nil {
		return models.Project{}, err
	}

	metrics.ProjectsCreated.Inc()
	s.audit.record(caller.ID, "project", p.ID, "project.created", map[string]any{"title": p.Title})
	return p, nil
}

type ProjectUpdate struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Budget         *float64 `json:"budget"`
	SkillsRequired *string  `json:"skills_required"`
	Status         *string  `json:"status"`
}

func (s *ProjectService) Update(ctx context.Context, caller authz.Caller, id string, in ProjectUpdate) (models.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	if err := authz.RequireOwnerOrAdmin(caller, p.ClientID); err != nil {
		return models.Project{}, err
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return models.Project{}, invalid("title must not be empty")
		}
		p.Title = *in.Title
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return models.Project{}, invalid("description must not be empty")
		}
		p.Description = *in.Description
	}
	if in.Budget != nil {
		if *in.Budget <= 0 {
			return models.Project{}, invalid("budget must be a positive number")
		}
		p.Budget = *in.Budget
	}
	if in.SkillsRequired != nil {
		if strings.TrimSpace(*in.SkillsRequired) == "" {
			return models.Project{}, invalid("skills_required must not be empty")
		}
		p.SkillsRequired = *in.SkillsRequired
	}
	if in.Status != nil {
		if !models.ValidProjectStatus(*in.Status) {
			return models.Project{}, invalid("status must be open, in_progress, or completed")
		}
		// in_progress is only reachable by accepting a proposal.
		if models.ProjectStatus(*in.Status) == models.ProjectInProgress && p.Status != models.ProjectInProgress {
			return models.Project{}, invalid("status in_progress is set by accepting a proposal")
		}
		p.Status = models.ProjectStatus(*in.Status)
	}

	if err := s.projects.Update(ctx, p); err != nil {
		return models.Project{}, err
	}
	s.audit.record(caller.ID, "project", p.ID, "project.updated", nil)
	return s.Get(ctx, id)
}

// Delete removes the project and every proposal referencing it as one
// atomic unit.
func (s *ProjectService) Delete(ctx context.Context, caller authz.Caller, id string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.RequireOwnerOrAdmin(caller, p.ClientID); err != nil {
		return err
	}

	if err := s.projects.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.audit.record(caller.ID, "project", id, "project.deleted", map[string]any{"title": p.Title})
	return nil
}

// ListMine returns the caller's own projects with live proposal counts.
func (s *ProjectService) ListMine(ctx context.Context, caller authz.Caller, page, perPage int) ([]models.ProjectWithCount, models.Page, error) {
	if err := authz.RequireRole(caller, models.RoleClient); err != nil {
		return nil, models.Page{}, err
	}
	page, perPage = clampPage(page, perPage)

	items, total, err := s.projects.ListByClient(ctx, caller.ID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, models.Page{}, err
	}
	return items, models.NewPage(total, page, perPage), nil
}
