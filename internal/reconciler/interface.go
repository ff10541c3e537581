package reconciler

import (
	"context"
	"filplus/pkg/domain"
)

// Revision is one observation of an application's allocator file.
type Revision struct {
	ApplicationID domain.ApplicationID
	// Fingerprint identifies Content; equal fingerprints mean equal content.
	Fingerprint string
	Content     []byte
}

// Reader reads the current revision of an application's allocator file.
//
//go:generate mockgen -package mockreconciler -source=interface.go -destination=mock/mockreconciler.go *
type Reader interface {
	// Read returns ok=false without an error when the application has no
	// external reference to read from. Any error is a failure of the read.
	Read(ctx context.Context, app domain.Application) (rev Revision, ok bool, err error)
}
