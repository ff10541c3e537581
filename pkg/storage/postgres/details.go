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
	applicationDetailsTable = "application_details"
)

// SaveApplicationDetails writes details with optimistic concurrency. Version 0
// inserts the first revision (stored as version 1); any other expected
// version must match the stored row, which is then replaced and bumped.
func (p *PgSQL) SaveApplicationDetails(ctx context.Context,
	details domain.ApplicationDetails,
	expectedVersion int) (*domain.ApplicationDetails, error) {
	if expectedVersion < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid expected version %d", expectedVersion)
	}

	var pgDetails PgApplicationDetails
	pgDetails.FromDomain(details)
	pgDetails.Version = expectedVersion + 1

	var (
		row   PgApplicationDetails
		found bool
		err   error
	)
	if expectedVersion == 0 {
		found, err = p.Builder.Insert(applicationDetailsTable).
			Rows(pgDetails).
			OnConflict(goqu.DoNothing()).
			Returning(&PgApplicationDetails{}).
			Executor().ScanStructContext(ctx, &row)
	} else {
		found, err = p.Builder.Update(applicationDetailsTable).
			Set(goqu.Record{
				"number":                      pgDetails.Number,
				"name":                        pgDetails.Name,
				"organization":                pgDetails.Organization,
				"address":                     pgDetails.Address,
				"github":                      pgDetails.Github,
				"allocation_tranche_schedule": pgDetails.AllocationTrancheSchedule,
				"datacap":                     pgDetails.Datacap,
				"status":                      pgDetails.Status,
				"pull_request_number":         pgDetails.PullRequestNumber,
				"pull_request_url":            pgDetails.PullRequestURL,
				"version":                     pgDetails.Version,
				"updated_at":                  goqu.L("CURRENT_TIMESTAMP"),
			}).
			Where(
				goqu.I("id").Eq(pgDetails.ID),
				goqu.I("version").Eq(expectedVersion),
			).
			Returning(&PgApplicationDetails{}).
			Executor().ScanStructContext(ctx, &row)
	}
	if err != nil {
		return nil, fmt.Errorf("could not save application details into pg: %w", err)
	}
	if !found {
		return nil, serrors.With(serrors.ErrConflict,
			"application details %s are not at version %d", details.ID, expectedVersion)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateApplicationDetails(ctx context.Context,
	id domain.ApplicationID,
	updates storage.ApplicationDetailsUpdates) (*domain.ApplicationDetails, error) {
	rec := goqu.Record{
		"version":    goqu.L("version + 1"),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIfNotNil(rec, "number", updates.Number)
	setIfNotNil(rec, "name", updates.Name)
	setIfNotNil(rec, "organization", updates.Organization)
	setIfNotNil(rec, "address", updates.Address)
	setIfNotNil(rec, "github", updates.Github)
	setIfNotNil(rec, "allocation_tranche_schedule", updates.AllocationTrancheSchedule)
	setIfNotNil(rec, "datacap", updates.Datacap)
	setIfNotNil(rec, "status", updates.Status)
	setIfNotNil(rec, "pull_request_number", updates.PullRequestNumber)
	setIfNotNil(rec, "pull_request_url", updates.PullRequestURL)

	var row PgApplicationDetails
	found, err := p.Builder.Update(applicationDetailsTable).
		Set(rec).
		Where(goqu.I("id").Eq(string(id))).
		Returning(&PgApplicationDetails{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application details in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ApplicationDetailsByID(ctx context.Context,
	id domain.ApplicationID) (*domain.ApplicationDetails, error) {
	var row PgApplicationDetails
	found, err := p.Builder.From(applicationDetailsTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application details by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ApplicationDetailsPage returns a page of projections, oldest first.
func (p *PgSQL) ApplicationDetailsPage(ctx context.Context,
	page, limit int,
	search string) (storage.Page[domain.ApplicationDetails], error) {
	ds := p.Builder.From(applicationDetailsTable)
	if w := searchExpression(search); w != nil {
		ds = ds.Where(w)
	}

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.Page[domain.ApplicationDetails]{},
			fmt.Errorf("could not count application details: %w", err)
	}

	var rows []PgApplicationDetails
	if err := ds.
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Offset(uint(storage.Offset(page, limit))). //nolint: gosec
		Limit(uint(limit)).                        //nolint: gosec
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.Page[domain.ApplicationDetails]{},
			fmt.Errorf("could not fetch application details page from pg: %w", err)
	}

	return storage.Page[domain.ApplicationDetails]{
		Results:    pgApplicationDetailsToDomain(rows),
		Pagination: storage.NewPagination(page, limit, int(total)),
	}, nil
}

// searchExpression matches name or address case-insensitively. It returns nil
// for an empty search.
func searchExpression(search string) exp.Expression {
	if search == "" {
		return nil
	}

	pattern := "%" + escapeLike(search) + "%"

	return goqu.Or(
		goqu.I("name").ILike(pattern),
		goqu.I("address").ILike(pattern),
	)
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}

	return string(out)
}
