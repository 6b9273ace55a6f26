package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharktalent/backend/internal/models"
)

type projectsRepo struct{ pool *pgxpool.Pool }

func (r *projectsRepo) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projects(id, title, description, budget, skills_required, status, client_id)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Title, p.Description, p.Budget, p.SkillsRequired, p.Status, p.ClientID,
	)
	if err != nil {
		return models.Project{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *projectsRepo) GetByID(ctx context.Context, id string) (models.Project, error) {
	var p models.Project
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, budget, skills_required, status, client_id, created_at, updated_at
		   FROM projects WHERE id=$1`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Budget, &p.SkillsRequired, &p.Status, &p.ClientID, &p.CreatedAt, &p.UpdatedAt)
	return p, mapErr(err)
}

func (r *projectsRepo) List(ctx context.Context, status models.ProjectStatus, limit, offset int) ([]models.ProjectWithClient, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM projects WHERE status=$1`, status,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.title, p.description, p.budget, p.skills_required, p.status,
		        p.client_id, p.created_at, p.updated_at,
		        u.first_name || ' ' || u.last_name AS client_name
		   FROM projects p
		   JOIN users u ON u.id = p.client_id
		  WHERE p.status = $1
		  ORDER BY p.created_at DESC
		  LIMIT $2 OFFSET $3`,
		status, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.ProjectWithClient
	for rows.Next() {
		var p models.ProjectWithClient
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Budget, &p.SkillsRequired, &p.Status,
			&p.ClientID, &p.CreatedAt, &p.UpdatedAt, &p.ClientName); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *projectsRepo) ListByClient(ctx context.Context, clientID string, limit, offset int) ([]models.ProjectWithCount, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM projects WHERE client_id=$1`, clientID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.title, p.description, p.budget, p.skills_required, p.status,
		        p.client_id, p.created_at, p.updated_at,
		        (SELECT count(*) FROM proposals pr WHERE pr.project_id = p.id) AS proposal_count
		   FROM projects p
		  WHERE p.client_id = $1
		  ORDER BY p.created_at DESC
		  LIMIT $2 OFFSET $3`,
		clientID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.ProjectWithCount
	for rows.Next() {
		var p models.ProjectWithCount
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Budget, &p.SkillsRequired, &p.Status,
			&p.ClientID, &p.CreatedAt, &p.UpdatedAt, &p.ProposalCount); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *projectsRepo) Update(ctx context.Context, p models.Project) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE projects SET title=$2, description=$3, budget=$4, skills_required=$5, status=$6, updated_at=now()
		  WHERE id=$1`,
		p.ID, p.Title, p.Description, p.Budget, p.SkillsRequired, p.Status,
	)
	return err
}

func (r *projectsRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM proposals WHERE project_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
