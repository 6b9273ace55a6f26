package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

type projectsRepo struct{ s *store }

func (r *projectsRepo) Create(_ context.Context, p models.Project) (models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.s.projects[p.ID] = p
	r.s.order[p.ID] = r.s.nextSeq()
	return p, nil
}

func (r *projectsRepo) GetByID(_ context.Context, id string) (models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.projects[id]
	if !ok {
		return models.Project{}, repo.ErrNotFound
	}
	return p, nil
}

// sortedProjects returns matching projects newest first. Caller holds the lock.
func (r *projectsRepo) sortedProjects(match func(models.Project) bool) []models.Project {
	var out []models.Project
	for _, p := range r.s.projects {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.s.order[out[i].ID] > r.s.order[out[j].ID]
	})
	return out
}

func (r *projectsRepo) List(_ context.Context, status models.ProjectStatus, limit, offset int) ([]models.ProjectWithClient, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := r.sortedProjects(func(p models.Project) bool { return p.Status == status })
	total := int64(len(matched))

	var out []models.ProjectWithClient
	for _, p := range paginate(matched, limit, offset) {
		row := models.ProjectWithClient{Project: p}
		if u, ok := r.s.users[p.ClientID]; ok {
			row.ClientName = u.FullName()
		}
		out = append(out, row)
	}
	return out, total, nil
}

func (r *projectsRepo) ListByClient(_ context.Context, clientID string, limit, offset int) ([]models.ProjectWithCount, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := r.sortedProjects(func(p models.Project) bool { return p.ClientID == clientID })
	total := int64(len(matched))

	var out []models.ProjectWithCount
	for _, p := range paginate(matched, limit, offset) {
		row := models.ProjectWithCount{Project: p}
		for _, pr := range r.s.proposals {
			if pr.ProjectID == p.ID {
				row.ProposalCount++
			}
		}
		out = append(out, row)
	}
	return out, total, nil
}

func (r *projectsRepo) Update(_ context.Context, p models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.projects[p.ID]
	if !ok {
		return repo.ErrNotFound
	}
	cur.Title = p.Title
	cur.Description = p.Description
	cur.Budget = p.Budget
	cur.SkillsRequired = p.SkillsRequired
	cur.Status = p.Status
	cur.UpdatedAt = time.Now()
	r.s.projects[p.ID] = cur
	return nil
}

func (r *projectsRepo) DeleteCascade(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for pid, pr := range r.s.proposals {
		if pr.ProjectID == id {
			delete(r.s.proposals, pid)
			delete(r.s.order, pid)
		}
	}
	delete(r.s.projects, id)
	delete(r.s.order, id)
	return nil
}
