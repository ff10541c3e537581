package reconciler

import (
	"context"
	"filplus/internal/application"
	"filplus/pkg/domain"
	"filplus/pkg/github"
	"filplus/pkg/serrors"
	"fmt"
)

// PullRequestReader reads allocator files from the head branch of the pull
// request linked to an application. The blob sha is the fingerprint.
type PullRequestReader struct {
	github  github.Client
	options application.Options
}

var _ Reader = (*PullRequestReader)(nil)

// NewPullRequestReader creates a Reader backed by the GitHub client.
func NewPullRequestReader(client github.Client, options application.Options) *PullRequestReader {
	return &PullRequestReader{
		github:  client,
		options: options,
	}
}

// Read implements Reader.
func (r *PullRequestReader) Read(ctx context.Context, app domain.Application) (Revision, bool, error) {
	if !app.HasPullRequest() {
		return Revision{}, false, nil
	}

	pr, err := r.github.GetPullRequest(ctx, r.options.Owner, r.options.Repo, app.PullRequestNumber)
	if err != nil {
		return Revision{}, false, fmt.Errorf("could not resolve pull request head: %w", err)
	}
	if pr.HeadRef == "" {
		return Revision{}, false, serrors.With(serrors.ErrTransient,
			"pull request %d has no head ref", app.PullRequestNumber)
	}

	file, err := r.github.GetFile(ctx, r.options.Owner, r.options.Repo,
		r.options.AllocatorPath(app.ID.String()), pr.HeadRef)
	if err != nil {
		return Revision{}, false, fmt.Errorf("could not read allocator file: %w", err)
	}

	return Revision{
		ApplicationID: app.ID,
		Fingerprint:   file.SHA,
		Content:       file.Content,
	}, true, nil
}
