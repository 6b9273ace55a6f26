package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharktalent/backend/internal/models"
	repo "github.com/sharktalent/backend/internal/repository"
)

type proposalsRepo struct{ pool *pgxpool.Pool }

func (r *proposalsRepo) Create(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO proposals(id, cover_letter, bid_amount, timeline_days, status, freelancer_id, project_id)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.CoverLetter, p.BidAmount, p.TimelineDays, p.Status, p.FreelancerID, p.ProjectID,
	)
	if err != nil {
		return models.Proposal{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *proposalsRepo) GetByID(ctx context.Context, id string) (models.Proposal, error) {
	var p models.Proposal
	err := r.pool.QueryRow(ctx,
		`SELECT id, cover_letter, bid_amount, timeline_days, status, freelancer_id, project_id, submitted_at
		   FROM proposals WHERE id=$1`, id,
	).Scan(&p.ID, &p.CoverLetter, &p.BidAmount, &p.TimelineDays, &p.Status, &p.FreelancerID, &p.ProjectID, &p.SubmittedAt)
	return p, mapErr(err)
}

func (r *proposalsRepo) GetDetail(ctx context.Context, id string) (models.ProposalDetail, error) {
	var d models.ProposalDetail
	err := r.pool.QueryRow(ctx,
		`SELECT pr.id, pr.cover_letter, pr.bid_amount, pr.timeline_days, pr.status,
		        pr.freelancer_id, pr.project_id, pr.submitted_at,
		        f.first_name || ' ' || f.last_name, f.email,
		        p.title, p.description, p.budget, p.status,
		        c.first_name || ' ' || c.last_name
		   FROM proposals pr
		   JOIN users f ON f.id = pr.freelancer_id
		   JOIN projects p ON p.id = pr.project_id
		   JOIN users c ON c.id = p.client_id
		  WHERE pr.id = $1`, id,
	).Scan(&d.ID, &d.CoverLetter, &d.BidAmount, &d.TimelineDays, &d.Status,
		&d.FreelancerID, &d.ProjectID, &d.SubmittedAt,
		&d.Freelancer.Name, &d.Freelancer.Email,
		&d.Project.Title, &d.Project.Description, &d.Project.Budget, &d.Project.Status,
		&d.Project.ClientName)
	if err != nil {
		return models.ProposalDetail{}, mapErr(err)
	}
	d.Freelancer.ID = d.FreelancerID
	d.Project.ID = d.ProjectID
	return d, nil
}

func (r *proposalsRepo) ListByProject(ctx context.Context, projectID string) ([]models.ProposalWithFreelancer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT pr.id, pr.cover_letter, pr.bid_amount, pr.timeline_days, pr.status,
		        pr.freelancer_id, pr.project_id, pr.submitted_at,
		        f.first_name || ' ' || f.last_name, f.email
		   FROM proposals pr
		   JOIN users f ON f.id = pr.freelancer_id
		  WHERE pr.project_id = $1
		  ORDER BY pr.submitted_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ProposalWithFreelancer
	for rows.Next() {
		var p models.ProposalWithFreelancer
		if err := rows.Scan(&p.ID, &p.CoverLetter, &p.BidAmount, &p.TimelineDays, &p.Status,
			&p.FreelancerID, &p.ProjectID, &p.SubmittedAt,
			&p.Freelancer.Name, &p.Freelancer.Email); err != nil {
			return nil, err
		}
		p.Freelancer.ID = p.FreelancerID
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *proposalsRepo) ListByFreelancer(ctx context.Context, freelancerID string, limit, offset int) ([]models.ProposalWithProject, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM proposals WHERE freelancer_id=$1`, freelancerID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT pr.id, pr.cover_letter, pr.bid_amount, pr.timeline_days, pr.status,
		        pr.freelancer_id, pr.project_id, pr.submitted_at,
		        p.title, p.budget, p.status,
		        c.first_name || ' ' || c.last_name
		   FROM proposals pr
		   JOIN projects p ON p.id = pr.project_id
		   JOIN users c ON c.id = p.client_id
		  WHERE pr.freelancer_id = $1
		  ORDER BY pr.submitted_at DESC
		  LIMIT $2 OFFSET $3`,
		freelancerID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.ProposalWithProject
	for rows.Next() {
		var p models.ProposalWithProject
		if err := rows.Scan(&p.ID, &p.CoverLetter, &p.BidAmount, &p.TimelineDays, &p.Status,
			&p.FreelancerID, &p.ProjectID, &p.SubmittedAt,
			&p.Project.Title, &p.Project.Budget, &p.Project.Status,
			&p.Project.ClientName); err != nil {
			return nil, 0, err
		}
		p.Project.ID = p.ProjectID
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *proposalsRepo) CountByFreelancerAndProject(ctx context.Context, freelancerID, projectID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM proposals WHERE freelancer_id=$1 AND project_id=$2`,
		freelancerID, projectID,
	).Scan(&n)
	return n, err
}

// Accept runs the whole cascade in one serializable transaction with the
// target row locked, so a concurrent accept on the same project observes a
// decided row and fails instead of double-applying.
func (r *proposalsRepo) Accept(ctx context.Context, proposalID, projectID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status models.ProposalStatus
	err = tx.QueryRow(ctx,
		`SELECT status FROM proposals WHERE id=$1 FOR UPDATE`, proposalID,
	).Scan(&status)
	if err != nil {
		return mapErr(err)
	}
	if status != models.ProposalPending {
		return repo.ErrAlreadyDecided
	}

	if _, err := tx.Exec(ctx,
		`UPDATE proposals SET status='accepted' WHERE id=$1`, proposalID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE proposals SET status='rejected' WHERE project_id=$1 AND id<>$2`,
		projectID, proposalID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE projects SET status='in_progress', updated_at=now() WHERE id=$1`, projectID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *proposalsRepo) Reject(ctx context.Context, proposalID string) error {
	ct, err := r.pool.Exec(ctx,
		`UPDATE proposals SET status='rejected' WHERE id=$1 AND status='pending'`, proposalID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repo.ErrAlreadyDecided
	}
	return nil
}
