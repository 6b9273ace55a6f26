package models

import "time"

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalAccepted ProposalStatus = "accepted"
	ProposalRejected ProposalStatus = "rejected"
)

// MaxProposalsPerProject caps how many proposals one freelancer may submit
// to a single project.
const MaxProposalsPerProject = 3

type Proposal struct {
	ID           string         `json:"id"`
	CoverLetter  string         `json:"cover_letter"`
	BidAmount    float64        `json:"bid_amount"`
	TimelineDays int            `json:"timeline_days"`
	Status       ProposalStatus `json:"status"`
	FreelancerID string         `json:"freelancer_id"`
	ProjectID    string         `json:"project_id"`
	SubmittedAt  time.Time      `json:"submitted_at"`
}

// FreelancerInfo is the display identity of a submitting freelancer.
type FreelancerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectSnapshot is the flattened view of a proposal's target project,
// resolved with an explicit join (no live back-references).
type ProjectSnapshot struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Budget      float64       `json:"budget"`
	Status      ProjectStatus `json:"status"`
	ClientName  string        `json:"client_name,omitempty"`
}

type ProposalWithFreelancer struct {
	Proposal
	Freelancer FreelancerInfo `json:"freelancer"`
}

type ProposalWithProject struct {
	Proposal
	Project ProjectSnapshot `json:"project"`
}

// ProposalDetail is the single-proposal view with both sides joined in.
type ProposalDetail struct {
	Proposal
	Freelancer FreelancerInfo  `json:"freelancer"`
	Project    ProjectSnapshot `json:"project"`
}
