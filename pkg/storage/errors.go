package storage

import "filplus/pkg/serrors"

// Transaction misuse errors. Both are wiring defects, reported with the
// internal kind so the API never exposes them.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already
	// transactional. Nested transactions are not supported.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "storage handle is already in a transaction") //nolint: gochecknoglobals
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional handle.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "storage handle is not in a transaction") //nolint: gochecknoglobals
)
