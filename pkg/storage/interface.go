// Package storage defines the repositories of the write model (applications),
// the read projections (application details, issue details) and the job
// queue, together with transaction management. pkg/storage/postgres provides
// the implementation.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every repository. Command handlers receive it inside
// transactions; read paths use the narrower interfaces.
type AllStorage interface {
	ApplicationStorage
	ApplicationDetailsStorage
	IssueDetailsStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction. Jobs added
// through it become visible only on Commit. It is unusable after Commit or
// Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is the long-lived handle shared by the process. Its repository
// methods run in autocommit mode.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction. Nested transactions are not supported.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
