package postgres

import (
	"context"
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	applicationsTable = "applications"
)

var _ storage.Storage = (*PgSQL)(nil)

// ListApplications returns all applications, oldest first.
func (p *PgSQL) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var rows []PgApplication
	if err := p.Builder.From(applicationsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list applications from pg: %w", err)
	}

	return pgApplicationsToDomain(rows), nil
}

func (p *PgSQL) ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	var row PgApplication
	found, err := p.Builder.From(applicationsTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch application by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreApplication inserts app. Conflicting IDs are reported as ErrConflict
// instead of a constraint violation.
func (p *PgSQL) StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error) {
	var pgApp PgApplication
	pgApp.FromDomain(app)

	var row PgApplication
	found, err := p.Builder.Insert(applicationsTable).
		Rows(pgApp).
		OnConflict(goqu.DoNothing()).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store application into pg: %w", err)
	}
	if !found {
		return nil, serrors.With(serrors.ErrConflict, "application %s already exists", app.ID)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateApplication(ctx context.Context,
	id domain.ApplicationID,
	updates storage.ApplicationUpdates) (*domain.Application, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	setIfNotNil(rec, "number", updates.Number)
	setIfNotNil(rec, "name", updates.Name)
	setIfNotNil(rec, "organization", updates.Organization)
	setIfNotNil(rec, "address", updates.Address)
	setIfNotNil(rec, "github", updates.Github)
	setIfNotNil(rec, "allocation_tranche_schedule", updates.AllocationTrancheSchedule)
	setIfNotNil(rec, "status", updates.Status)
	setIfNotNil(rec, "pull_request_number", updates.PullRequestNumber)
	setIfNotNil(rec, "pull_request_url", updates.PullRequestURL)
	setIfNotNil(rec, "issue_number", updates.IssueNumber)
	setIfNotNil(rec, "fingerprint", updates.Fingerprint)

	where := []goqu.Expression{goqu.I("id").Eq(string(id))}
	if updates.ExpectedStatus != nil {
		where = append(where, goqu.I("status").Eq(string(*updates.ExpectedStatus)))
	}

	var row PgApplication
	found, err := p.Builder.Update(applicationsTable).
		Set(rec).
		Where(where...).
		Returning(&PgApplication{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update application in pg: %w", err)
	}
	if !found {
		if updates.ExpectedStatus == nil {
			return nil, nil
		}

		return nil, p.statusMismatch(ctx, id, *updates.ExpectedStatus)
	}

	return row.ToDomain(), nil
}

// statusMismatch explains why a status-guarded update matched no row: the
// application is gone (nil) or its status moved on (ErrConflict).
func (p *PgSQL) statusMismatch(ctx context.Context, id domain.ApplicationID, expected domain.ApplicationStatus) error {
	current, err := p.ApplicationByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	return serrors.With(serrors.ErrConflict,
		"application %s is %s, expected %s", id, current.Status, expected)
}

// setIfNotNil adds the dereferenced value of v to rec under column when v is
// not nil. Named string types are stored as plain strings.
func setIfNotNil[T any](rec goqu.Record, column string, v *T) {
	if v == nil {
		return
	}

	switch val := any(*v).(type) {
	case domain.ApplicationStatus:
		rec[column] = string(val)
	case domain.ApplicationID:
		rec[column] = string(val)
	default:
		rec[column] = val
	}
}
