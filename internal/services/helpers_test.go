package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharktalent/backend/internal/authz"
	"github.com/sharktalent/backend/internal/models"
	"github.com/sharktalent/backend/internal/repository/memory"
	"github.com/sharktalent/backend/internal/services"
)

// fixture wires the services onto the map-backed repositories with a
// synchronous auditor.
type fixture struct {
	repos     memory.Repositories
	users     *services.UserService
	projects  *services.ProjectService
	proposals *services.ProposalService
}

func newFixture() *fixture {
	repos := memory.NewRepositories()
	audit := services.NewAuditor(repos.AuditLogs, nil)
	return &fixture{
		repos:     repos,
		users:     services.NewUserService(repos.Users, audit),
		projects:  services.NewProjectService(repos.Projects, audit),
		proposals: services.NewProposalService(repos.Proposals, repos.Projects, audit),
	}
}

func (f *fixture) register(t *testing.T, email, role string) authz.Caller {
	t.Helper()
	u, err := f.users.Register(context.Background(), services.RegisterInput{
		Email:     email,
		Password:  "secret123",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	})
	require.NoError(t, err)
	return authz.Caller{ID: u.ID, Role: u.Role}
}

func (f *fixture) newProject(t *testing.T, client authz.Caller, title string) models.Project {
	t.Helper()
	p, err := f.projects.Create(context.Background(), client, services.ProjectInput{
		Title:          title,
		Description:    "A project that needs doing",
		Budget:         500,
		SkillsRequired: "Go, PostgreSQL",
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) newProposal(t *testing.T, freelancer authz.Caller, projectID string) models.Proposal {
	t.Helper()
	p, err := f.proposals.Create(context.Background(), freelancer, services.ProposalInput{
		ProjectID:    projectID,
		CoverLetter:  "I can build this",
		BidAmount:    450,
		TimelineDays: 14,
	})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }
