package models

import "time"

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectOpen, ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Budget         float64       `json:"budget"`
	SkillsRequired string        `json:"skills_required"`
	Status         ProjectStatus `json:"status"`
	ClientID       string        `json:"client_id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ProjectWithClient is a public listing row: the project joined with the
// owning client's display name.
type ProjectWithClient struct {
	Project
	ClientName string `json:"client_name"`
}

// ProjectWithCount is an owner-facing listing row annotated with the live
// number of proposals targeting the project.
type ProjectWithCount struct {
	Project
	ProposalCount int64 `json:"proposal_count"`
}
