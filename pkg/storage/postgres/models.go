package postgres

import (
	"database/sql"
	"filplus/pkg/domain"
	"time"
)

type PgApplication struct {
	ID     string `db:"id"`
	Number int64  `db:"number"`

	Name                      string `db:"name"`
	Organization              string `db:"organization"`
	Address                   string `db:"address"`
	Github                    string `db:"github"`
	AllocationTrancheSchedule string `db:"allocation_tranche_schedule"`

	Status            string         `db:"status"`
	PullRequestNumber int            `db:"pull_request_number"`
	PullRequestURL    string         `db:"pull_request_url"`
	IssueNumber       int            `db:"issue_number"`
	Fingerprint       sql.NullString `db:"fingerprint"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplication) ToDomain() *domain.Application {
	return &domain.Application{
		ID:                        domain.ApplicationID(p.ID),
		Number:                    p.Number,
		Name:                      p.Name,
		Organization:              p.Organization,
		Address:                   p.Address,
		Github:                    p.Github,
		AllocationTrancheSchedule: p.AllocationTrancheSchedule,
		Status:                    domain.ApplicationStatus(p.Status),
		PullRequestNumber:         p.PullRequestNumber,
		PullRequestURL:            p.PullRequestURL,
		IssueNumber:               p.IssueNumber,
		Fingerprint:               p.Fingerprint.String,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt.Time,
	}
}

func (p *PgApplication) FromDomain(app domain.Application) {
	*p = PgApplication{
		ID:                        string(app.ID),
		Number:                    app.Number,
		Name:                      app.Name,
		Organization:              app.Organization,
		Address:                   app.Address,
		Github:                    app.Github,
		AllocationTrancheSchedule: app.AllocationTrancheSchedule,
		Status:                    string(app.Status),
		PullRequestNumber:         app.PullRequestNumber,
		PullRequestURL:            app.PullRequestURL,
		IssueNumber:               app.IssueNumber,
		Fingerprint: sql.NullString{
			String: app.Fingerprint,
			Valid:  app.Fingerprint != "",
		},
	}
}

type PgApplicationDetails struct {
	ID     string `db:"id"`
	Number int64  `db:"number"`

	Name                      string `db:"name"`
	Organization              string `db:"organization"`
	Address                   string `db:"address"`
	Github                    string `db:"github"`
	AllocationTrancheSchedule string `db:"allocation_tranche_schedule"`

	Datacap           int64  `db:"datacap"`
	Status            string `db:"status"`
	PullRequestNumber int    `db:"pull_request_number"`
	PullRequestURL    string `db:"pull_request_url"`

	Version int `db:"version"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgApplicationDetails) ToDomain() *domain.ApplicationDetails {
	return &domain.ApplicationDetails{
		ID:                        domain.ApplicationID(p.ID),
		Number:                    p.Number,
		Name:                      p.Name,
		Organization:              p.Organization,
		Address:                   p.Address,
		Github:                    p.Github,
		AllocationTrancheSchedule: p.AllocationTrancheSchedule,
		Datacap:                   p.Datacap,
		Status:                    domain.ApplicationStatus(p.Status),
		PullRequestNumber:         p.PullRequestNumber,
		PullRequestURL:            p.PullRequestURL,
		Version:                   p.Version,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt.Time,
	}
}

func (p *PgApplicationDetails) FromDomain(details domain.ApplicationDetails) {
	*p = PgApplicationDetails{
		ID:                        string(details.ID),
		Number:                    details.Number,
		Name:                      details.Name,
		Organization:              details.Organization,
		Address:                   details.Address,
		Github:                    details.Github,
		AllocationTrancheSchedule: details.AllocationTrancheSchedule,
		Datacap:                   details.Datacap,
		Status:                    string(details.Status),
		PullRequestNumber:         details.PullRequestNumber,
		PullRequestURL:            details.PullRequestURL,
		Version:                   details.Version,
	}
}

type PgIssueDetails struct {
	GithubIssueID     int64          `db:"github_issue_id"`
	GithubIssueNumber int            `db:"github_issue_number"`
	ApplicationID     sql.NullString `db:"application_id"`

	Title   string `db:"title"`
	Creator string `db:"creator"`
	State   string `db:"state"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Status  string `db:"status"`

	IssueCreatedAt sql.NullTime `db:"issue_created_at"`
	IssueClosedAt  sql.NullTime `db:"issue_closed_at"`
	UpdatedAt      time.Time    `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgIssueDetails) ToDomain() *domain.IssueDetails {
	return &domain.IssueDetails{
		GithubIssueID:     p.GithubIssueID,
		GithubIssueNumber: p.GithubIssueNumber,
		ApplicationID:     domain.ApplicationID(p.ApplicationID.String),
		Title:             p.Title,
		Creator:           p.Creator,
		State:             p.State,
		Name:              p.Name,
		Address:           p.Address,
		Status:            domain.ApplicationStatus(p.Status),
		IssueCreatedAt:    p.IssueCreatedAt.Time,
		IssueClosedAt:     p.IssueClosedAt.Time,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (p *PgIssueDetails) FromDomain(issue domain.IssueDetails) {
	*p = PgIssueDetails{
		GithubIssueID:     issue.GithubIssueID,
		GithubIssueNumber: issue.GithubIssueNumber,
		ApplicationID: sql.NullString{
			String: string(issue.ApplicationID),
			Valid:  issue.ApplicationID != "",
		},
		Title:   issue.Title,
		Creator: issue.Creator,
		State:   issue.State,
		Name:    issue.Name,
		Address: issue.Address,
		Status:  string(issue.Status),
		IssueCreatedAt: sql.NullTime{
			Time:  issue.IssueCreatedAt,
			Valid: !issue.IssueCreatedAt.IsZero(),
		},
		IssueClosedAt: sql.NullTime{
			Time:  issue.IssueClosedAt,
			Valid: !issue.IssueClosedAt.IsZero(),
		},
	}
}

func pgApplicationsToDomain(rows []PgApplication) []domain.Application {
	out := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}

func pgApplicationDetailsToDomain(rows []PgApplicationDetails) []domain.ApplicationDetails {
	out := make([]domain.ApplicationDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}

func pgIssueDetailsToDomain(rows []PgIssueDetails) []domain.IssueDetails {
	out := make([]domain.IssueDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}
