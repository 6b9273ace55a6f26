package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharktalent/backend/internal/models"
	"github.com/sharktalent/backend/internal/services"
)

func TestProjectCreateRequiresClientRole(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	freelancer := f.register(t, "f@example.com", "freelancer")

	_, err := f.projects.Create(ctx, freelancer, services.ProjectInput{
		Title: "x", Description: "y", Budget: 100, SkillsRequired: "Go",
	})
	assert.ErrorIs(t, err, services.ErrForbidden)

	client := f.register(t, "c@example.com", "client")
	p, err := f.projects.Create(ctx, client, services.ProjectInput{
		Title: "Build API", Description: "REST backend", Budget: 500, SkillsRequired: "Go",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectOpen, p.Status)
	assert.Equal(t, client.ID, p.ClientID)
}

func TestProjectCreateValidation(t *testing.T) {
	f := newFixture()
	client := f.register(t, "c@example.com", "client")

	_, err := f.projects.Create(context.Background(), client, services.ProjectInput{
		Title: "", Description: "y", Budget: 0, SkillsRequired: "Go",
	})
	require.ErrorIs(t, err, services.ErrInvalid)
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "budget must be a positive number")
}

func TestProjectListDefaultsToOpen(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")

	open := f.newProject(t, client, "Open one")
	done := f.newProject(t, client, "Done one")
	_, err := f.projects.Update(ctx, client, done.ID, services.ProjectUpdate{Status: ptr("completed")})
	require.NoError(t, err)

	items, page, err := f.projects.List(ctx, "", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, open.ID, items[0].ID)
	assert.Equal(t, int64(1), page.Total)

	items, _, err = f.projects.List(ctx, "completed", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, done.ID, items[0].ID)

	// unknown status and out-of-range pages come back empty, not as errors
	items, page, err = f.projects.List(ctx, "archived", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), page.Total)

	items, _, err = f.projects.List(ctx, "open", 99, 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProjectListNewestFirstWithClientName(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")

	first := f.newProject(t, client, "First")
	second := f.newProject(t, client, "Second")

	items, _, err := f.projects.List(ctx, "open", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
	assert.Equal(t, "Test User", items[0].ClientName)
}

func TestProjectUpdateAuthorization(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := f.register(t, "owner@example.com", "client")
	other := f.register(t, "other@example.com", "client")
	admin := f.register(t, "admin@example.com", "admin")

	p := f.newProject(t, owner, "Mine")

	_, err := f.projects.Update(ctx, other, p.ID, services.ProjectUpdate{Title: ptr("Stolen")})
	assert.ErrorIs(t, err, services.ErrForbidden)

	updated, err := f.projects.Update(ctx, admin, p.ID, services.ProjectUpdate{Title: ptr("Moderated")})
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Title)

	updated, err = f.projects.Update(ctx, owner, p.ID, services.ProjectUpdate{Budget: ptr(750.0)})
	require.NoError(t, err)
	assert.Equal(t, 750.0, updated.Budget)
	assert.Equal(t, "Moderated", updated.Title)
}

func TestProjectUpdateValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := f.register(t, "owner@example.com", "client")
	p := f.newProject(t, owner, "Mine")

	_, err := f.projects.Update(ctx, owner, p.ID, services.ProjectUpdate{Title: ptr("  ")})
	assert.ErrorIs(t, err, services.ErrInvalid)

	_, err = f.projects.Update(ctx, owner, p.ID, services.ProjectUpdate{Budget: ptr(-5.0)})
	assert.ErrorIs(t, err, services.ErrInvalid)

	_, err = f.projects.Update(ctx, owner, p.ID, services.ProjectUpdate{Status: ptr("archived")})
	assert.ErrorIs(t, err, services.ErrInvalid)

	// in_progress only happens through an accepted proposal
	_, err = f.projects.Update(ctx, owner, p.ID, services.ProjectUpdate{Status: ptr("in_progress")})
	require.ErrorIs(t, err, services.ErrInvalid)
	assert.Equal(t, "status in_progress is set by accepting a proposal", err.Error())
}

func TestProjectDeleteCascadesProposals(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner := f.register(t, "owner@example.com", "client")
	freelancer := f.register(t, "f@example.com", "freelancer")

	p := f.newProject(t, owner, "Doomed")
	f.newProposal(t, freelancer, p.ID)
	f.newProposal(t, freelancer, p.ID)

	require.NoError(t, f.projects.Delete(ctx, owner, p.ID))

	_, err := f.projects.Get(ctx, p.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mine, page, err := f.proposals.ListMine(ctx, freelancer, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.Equal(t, int64(0), page.Total)
}

func TestProjectListMine(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	otherClient := f.register(t, "c2@example.com", "client")
	freelancer := f.register(t, "f@example.com", "freelancer")

	p := f.newProject(t, client, "Mine")
	f.newProject(t, otherClient, "Theirs")
	f.newProposal(t, freelancer, p.ID)
	f.newProposal(t, freelancer, p.ID)

	items, page, err := f.projects.ListMine(ctx, client, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ID)
	assert.Equal(t, int64(2), items[0].ProposalCount)
	assert.Equal(t, int64(1), page.Total)

	_, _, err = f.projects.ListMine(ctx, freelancer, 1, 10)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestProjectGetNotFound(t *testing.T) {
	f := newFixture()
	_, err := f.projects.Get(context.Background(), "missing")
	require.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, "Project not found", err.Error())
}
