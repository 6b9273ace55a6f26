package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

type proposalsRepo struct{ s *store }

func (r *proposalsRepo) Create(_ context.Context, p models.Proposal) (models.Proposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.SubmittedAt.IsZero() {
		p.SubmittedAt = time.Now()
	}
	r.s.proposals[p.ID] = p
	r.s.order[p.ID] = r.s.nextSeq()
	return p, nil
}

func (r *proposalsRepo) GetByID(_ context.Context, id string) (models.Proposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.proposals[id]
	if !ok {
		return models.Proposal{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *proposalsRepo) GetDetail(_ context.Context, id string) (models.ProposalDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.proposals[id]
	if !ok {
		return models.ProposalDetail{}, repo.ErrNotFound
	}
	d := models.ProposalDetail{Proposal: p}
	if f, ok := r.s.users[p.FreelancerID]; ok {
		d.Freelancer = models.FreelancerInfo{ID: f.ID, Name: f.FullName(), Email: f.Email}
	}
	if proj, ok := r.s.projects[p.ProjectID]; ok {
		d.Project = models.ProjectSnapshot{
			ID:          proj.ID,
			Title:       proj.Title,
			Description: proj.Description,
			Budget:      proj.Budget,
			Status:      proj.Status,
		}
		if c, ok := r.s.users[proj.ClientID]; ok {
			d.Project.ClientName = c.FullName()
		}
	}
	return d, nil
}

// sortedProposals returns matching proposals newest first. Caller holds the lock.
func (r *proposalsRepo) sortedProposals(match func(models.Proposal) bool) []models.Proposal {
	var out []models.Proposal
	for _, p := range r.s.proposals {
		if match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return r.s.order[out[i].ID] > r.s.order[out[j].ID]
	})
	return out
}

func (r *proposalsRepo) ListByProject(_ context.Context, projectID string) ([]models.ProposalWithFreelancer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []models.ProposalWithFreelancer
	for _, p := range r.sortedProposals(func(p models.Proposal) bool { return p.ProjectID == projectID }) {
		row := models.ProposalWithFreelancer{Proposal: p}
		if f, ok := r.s.users[p.FreelancerID]; ok {
			row.Freelancer = models.FreelancerInfo{ID: f.ID, Name: f.FullName(), Email: f.Email}
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *proposalsRepo) ListByFreelancer(_ context.Context, freelancerID string, limit, offset int) ([]models.ProposalWithProject, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := r.sortedProposals(func(p models.Proposal) bool { return p.FreelancerID == freelancerID })
	total := int64(len(matched))

	var out []models.ProposalWithProject
	for _, p := range paginate(matched, limit, offset) {
		row := models.ProposalWithProject{Proposal: p}
		if proj, ok := r.s.projects[p.ProjectID]; ok {
			row.Project = models.ProjectSnapshot{
				ID:     proj.ID,
				Title:  proj.Title,
				Budget: proj.Budget,
				Status: proj.Status,
			}
			if c, ok := r.s.users[proj.ClientID]; ok {
				row.Project.ClientName = c.FullName()
			}
		}
		out = append(out, row)
	}
	return out, total, nil
}

func (r *proposalsRepo) CountByFreelancerAndProject(_ context.Context, freelancerID, projectID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, p := range r.s.proposals {
		if p.FreelancerID == freelancerID && p.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

func (r *proposalsRepo) Accept(_ context.Context, proposalID, projectID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	target, ok := r.s.proposals[proposalID]
	if !ok {
		return repo.ErrNotFound
	}
	if target.Status != models.ProposalPending {
		return repo.ErrAlreadyDecided
	}

	target.Status = models.ProposalAccepted
	r.s.proposals[proposalID] = target

	for id, p := range r.s.proposals {
		if id != proposalID && p.ProjectID == projectID {
			p.Status = models.ProposalRejected
			r.s.proposals[id] = p
		}
	}

	if proj, ok := r.s.projects[projectID]; ok {
		proj.Status = models.ProjectInProgress
		proj.UpdatedAt = time.Now()
		r.s.projects[projectID] = proj
	}
	return nil
}

func (r *proposalsRepo) Reject(_ context.Context, proposalID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.proposals[proposalID]
	if !ok {
		return repo.ErrNotFound
	}
	if p.Status != models.ProposalPending {
		return repo.ErrAlreadyDecided
	}
	p.Status = models.ProposalRejected
	r.s.proposals[proposalID] = p
	return nil
}
