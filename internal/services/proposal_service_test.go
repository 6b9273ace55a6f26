package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharktalent/backend/internal/models"
	"github.com/sharktalent/backend/internal/services"
)

func TestProposalCreateRequiresFreelancerRole(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	p := f.newProject(t, client, "Build API")

	_, err := f.proposals.Create(ctx, client, services.ProposalInput{
		ProjectID: p.ID, CoverLetter: "me", BidAmount: 100, TimelineDays: 7,
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestProposalCreateProjectChecks(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	freelancer := f.register(t, "f@example.com", "freelancer")

	_, err := f.proposals.Create(ctx, freelancer, services.ProposalInput{
		ProjectID: "missing", CoverLetter: "me", BidAmount: 100, TimelineDays: 7,
	})
	require.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, "Project not found", err.Error())

	p := f.newProject(t, client, "Closed soon")
	_, err = f.projects.Update(ctx, client, p.ID, services.ProjectUpdate{Status: ptr("completed")})
	require.NoError(t, err)

	_, err = f.proposals.Create(ctx, freelancer, services.ProposalInput{
		ProjectID: p.ID, CoverLetter: "me", BidAmount: 100, TimelineDays: 7,
	})
	require.ErrorIs(t, err, services.ErrConflict)
	assert.Equal(t, "Project is not accepting proposals", err.Error())
}

func TestProposalLimitPerFreelancer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	freelancer := f.register(t, "f@example.com", "freelancer")
	rival := f.register(t, "f2@example.com", "freelancer")

	p := f.newProject(t, client, "Popular")
	for i := 0; i < models.MaxProposalsPerProject; i++ {
		f.newProposal(t, freelancer, p.ID)
	}

	_, err := f.proposals.Create(ctx, freelancer, services.ProposalInput{
		ProjectID: p.ID, CoverLetter: "one more", BidAmount: 100, TimelineDays: 7,
	})
	require.ErrorIs(t, err, services.ErrConflict)
	assert.Equal(t, "Proposal limit reached (3 proposals per project)", err.Error())

	// the cap is per freelancer, not per project
	f.newProposal(t, rival, p.ID)
}

func TestProposalAcceptCascade(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	alice := f.register(t, "alice@example.com", "freelancer")
	bob := f.register(t, "bob@example.com", "freelancer")

	project := f.newProject(t, client, "Build API")
	winner := f.newProposal(t, alice, project.ID)
	loser1 := f.newProposal(t, alice, project.ID)
	loser2 := f.newProposal(t, bob, project.ID)

	require.NoError(t, f.proposals.SetStatus(ctx, client, winner.ID, "accepted"))

	d, err := f.proposals.Get(ctx, client, winner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalAccepted, d.Status)

	d, err = f.proposals.Get(ctx, client, loser1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalRejected, d.Status)

	d, err = f.proposals.Get(ctx, client, loser2.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalRejected, d.Status)

	got, err := f.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectInProgress, got.Status)

	// the project no longer accepts proposals
	_, err = f.proposals.Create(ctx, bob, services.ProposalInput{
		ProjectID: project.ID, CoverLetter: "late", BidAmount: 100, TimelineDays: 7,
	})
	assert.ErrorIs(t, err, services.ErrConflict)

	// decided proposals are terminal
	err = f.proposals.SetStatus(ctx, client, loser1.ID, "accepted")
	require.ErrorIs(t, err, services.ErrConflict)
	assert.Equal(t, "Proposal has already been decided", err.Error())
}

func TestProposalRejectDoesNotCascade(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	alice := f.register(t, "alice@example.com", "freelancer")

	project := f.newProject(t, client, "Build API")
	rejected := f.newProposal(t, alice, project.ID)
	sibling := f.newProposal(t, alice, project.ID)

	require.NoError(t, f.proposals.SetStatus(ctx, client, rejected.ID, "rejected"))

	d, err := f.proposals.Get(ctx, client, sibling.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalPending, d.Status)

	got, err := f.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectOpen, got.Status)
}

func TestProposalSetStatusOwnerOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	otherClient := f.register(t, "c2@example.com", "client")
	admin := f.register(t, "admin@example.com", "admin")
	alice := f.register(t, "alice@example.com", "freelancer")

	project := f.newProject(t, client, "Build API")
	prop := f.newProposal(t, alice, project.ID)

	assert.ErrorIs(t, f.proposals.SetStatus(ctx, otherClient, prop.ID, "accepted"), services.ErrForbidden)
	assert.ErrorIs(t, f.proposals.SetStatus(ctx, alice, prop.ID, "accepted"), services.ErrForbidden)
	// deciding proposals stays with the owning client even for admins
	assert.ErrorIs(t, f.proposals.SetStatus(ctx, admin, prop.ID, "accepted"), services.ErrForbidden)

	err := f.proposals.SetStatus(ctx, client, prop.ID, "maybe")
	require.ErrorIs(t, err, services.ErrInvalid)
	assert.Equal(t, `Status must be "accepted" or "rejected"`, err.Error())

	require.NoError(t, f.proposals.SetStatus(ctx, client, prop.ID, "accepted"))
}

func TestProposalGetAccess(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	alice := f.register(t, "alice@example.com", "freelancer")
	stranger := f.register(t, "bob@example.com", "freelancer")
	admin := f.register(t, "admin@example.com", "admin")

	project := f.newProject(t, client, "Build API")
	prop := f.newProposal(t, alice, project.ID)

	d, err := f.proposals.Get(ctx, alice, prop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", d.Freelancer.Name)
	assert.Equal(t, project.Title, d.Project.Title)

	_, err = f.proposals.Get(ctx, client, prop.ID)
	require.NoError(t, err)
	_, err = f.proposals.Get(ctx, admin, prop.ID)
	require.NoError(t, err)

	_, err = f.proposals.Get(ctx, stranger, prop.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = f.proposals.Get(ctx, admin, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProposalListForProject(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	alice := f.register(t, "alice@example.com", "freelancer")

	project := f.newProject(t, client, "Build API")
	f.newProposal(t, alice, project.ID)
	f.newProposal(t, alice, project.ID)

	items, err := f.proposals.ListForProject(ctx, client, project.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Test User", items[0].Freelancer.Name)

	_, err = f.proposals.ListForProject(ctx, alice, project.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = f.proposals.ListForProject(ctx, client, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProposalListMineIsolation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	client := f.register(t, "c@example.com", "client")
	alice := f.register(t, "alice@example.com", "freelancer")
	bob := f.register(t, "bob@example.com", "freelancer")

	project := f.newProject(t, client, "Build API")
	mine := f.newProposal(t, alice, project.ID)
	f.newProposal(t, bob, project.ID)

	items, page, err := f.proposals.ListMine(ctx, alice, 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].ID)
	assert.Equal(t, project.Title, items[0].Project.Title)
	assert.Equal(t, int64(1), page.Total)

	_, _, err = f.proposals.ListMine(ctx, client, 1, 10)
	assert.ErrorIs(t, err, services.ErrForbidden)
}
