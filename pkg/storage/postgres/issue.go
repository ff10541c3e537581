package postgres

import (
	"context"
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	issueDetailsTable = "issue_details"
)

// issueUpsertRecord is the SET clause of an issue upsert. Links and statuses
// written by projections survive a sync that does not know about them.
func issueUpsertRecord() goqu.Record {
	return goqu.Record{
		"github_issue_id":     goqu.L("EXCLUDED.github_issue_id"),
		"github_issue_number": goqu.L("EXCLUDED.github_issue_number"),
		"application_id": goqu.L("COALESCE(EXCLUDED.application_id, ?.application_id)",
			goqu.I(issueDetailsTable)),
		"title":   goqu.L("EXCLUDED.title"),
		"creator": goqu.L("EXCLUDED.creator"),
		"state":   goqu.L("EXCLUDED.state"),
		"name":    goqu.L("EXCLUDED.name"),
		"address": goqu.L("EXCLUDED.address"),
		"status": goqu.L("COALESCE(NULLIF(EXCLUDED.status, ''), ?.status)",
			goqu.I(issueDetailsTable)),
		"issue_created_at": goqu.L("EXCLUDED.issue_created_at"),
		"issue_closed_at":  goqu.L("EXCLUDED.issue_closed_at"),
		"updated_at":       goqu.L("CURRENT_TIMESTAMP"),
	}
}

func (p *PgSQL) SaveIssueDetails(ctx context.Context, issue domain.IssueDetails) (*domain.IssueDetails, error) {
	var pgIssue PgIssueDetails
	pgIssue.FromDomain(issue)

	var row PgIssueDetails
	found, err := p.Builder.Insert(issueDetailsTable).
		Rows(pgIssue).
		OnConflict(goqu.DoUpdate(string(storage.IssueKeyGithubIssueID), issueUpsertRecord())).
		Returning(&PgIssueDetails{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not save issue details into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not save issue details into pg: no row returned")
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateIssueDetails(ctx context.Context,
	issueNumber int,
	updates storage.IssueDetailsUpdates) (*domain.IssueDetails, error) {
	return p.updateIssueDetails(ctx, goqu.I("github_issue_number").Eq(issueNumber), updates)
}

func (p *PgSQL) UpdateIssueDetailsByApplicationID(ctx context.Context,
	id domain.ApplicationID,
	updates storage.IssueDetailsUpdates) (*domain.IssueDetails, error) {
	return p.updateIssueDetails(ctx, goqu.I("application_id").Eq(string(id)), updates)
}

func (p *PgSQL) updateIssueDetails(ctx context.Context,
	where exp.Expression,
	updates storage.IssueDetailsUpdates) (*domain.IssueDetails, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIfNotNil(rec, "application_id", updates.ApplicationID)
	setIfNotNil(rec, "title", updates.Title)
	setIfNotNil(rec, "state", updates.State)
	setIfNotNil(rec, "name", updates.Name)
	setIfNotNil(rec, "address", updates.Address)
	setIfNotNil(rec, "status", updates.Status)

	var row PgIssueDetails
	found, err := p.Builder.Update(issueDetailsTable).
		Set(rec).
		Where(where).
		Returning(&PgIssueDetails{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update issue details in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) IssueDetailsByApplicationID(ctx context.Context,
	id domain.ApplicationID) (*domain.IssueDetails, error) {
	var row PgIssueDetails
	found, err := p.Builder.From(issueDetailsTable).
		Where(goqu.I("application_id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch issue details by application id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// IssueDetailsPage returns a page of issues, newest issue number first.
func (p *PgSQL) IssueDetailsPage(ctx context.Context,
	page, limit int,
	search string) (storage.Page[domain.IssueDetails], error) {
	ds := p.Builder.From(issueDetailsTable)
	if w := searchExpression(search); w != nil {
		ds = ds.Where(w)
	}

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.Page[domain.IssueDetails]{}, fmt.Errorf("could not count issue details: %w", err)
	}

	var rows []PgIssueDetails
	if err := ds.
		Order(goqu.I("github_issue_number").Desc()).
		Offset(uint(storage.Offset(page, limit))). //nolint: gosec
		Limit(uint(limit)).                        //nolint: gosec
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.IssueDetails]{},
			fmt.Errorf("could not fetch issue details page from pg: %w", err)
	}

	return storage.Page[domain.IssueDetails]{
		Results:    pgIssueDetailsToDomain(rows),
		Pagination: storage.NewPagination(page, limit, int(total)),
	}, nil
}

// BulkUpsertIssueDetails upserts all issues in a single statement. Postgres
// sets xmax to 0 for freshly inserted rows, which tells inserts and updates
// apart in the RETURNING clause.
func (p *PgSQL) BulkUpsertIssueDetails(ctx context.Context,
	issues []domain.IssueDetails,
	field storage.IssueKeyField) (storage.BulkResult, error) {
	if !field.Valid() {
		return storage.BulkResult{}, serrors.With(serrors.ErrBadRequest, "unsupported upsert key %q", field)
	}
	if len(issues) == 0 {
		return storage.BulkResult{}, nil
	}

	// a statement may not touch the same row twice, the last occurrence wins
	rows := make([]PgIssueDetails, 0, len(issues))
	index := make(map[int64]int, len(issues))
	for _, issue := range issues {
		key := issue.GithubIssueID
		if field == storage.IssueKeyGithubIssueNumber {
			key = int64(issue.GithubIssueNumber)
		}

		var row PgIssueDetails
		row.FromDomain(issue)
		if i, ok := index[key]; ok {
			rows[i] = row

			continue
		}
		index[key] = len(rows)
		rows = append(rows, row)
	}

	var inserted []bool
	if err := p.Builder.Insert(issueDetailsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate(string(field), issueUpsertRecord())).
		Returning(goqu.L("(xmax = 0)")).
		Executor().ScanValsContext(ctx, &inserted); err != nil {
		return storage.BulkResult{}, fmt.Errorf("could not bulk upsert issue details into pg: %w", err)
	}

	var result storage.BulkResult
	for _, ins := range inserted {
		if ins {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}
