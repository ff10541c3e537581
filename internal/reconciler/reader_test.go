package reconciler_test

import (
	"context"
	"filplus/internal/application"
	"filplus/internal/reconciler"
	"filplus/pkg/domain"
	"filplus/pkg/github"
	"filplus/pkg/serrors"
	"testing"

	mockgithub "filplus/pkg/github/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var readerOptions = application.Options{
	Owner:         "filecoin-project",
	Repo:          "Allocator-Registry",
	AllocatorsDir: "Allocators",
}

func TestPullRequestReader_NoPullRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mockgithub.NewMockClient(ctrl)
	r := reconciler.NewPullRequestReader(gh, readerOptions)

	_, ok, err := r.Read(context.Background(), domain.Application{ID: "A1"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPullRequestReader_ReadsHeadRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mockgithub.NewMockClient(ctrl)
	r := reconciler.NewPullRequestReader(gh, readerOptions)

	gh.EXPECT().GetPullRequest(gomock.Any(), "filecoin-project", "Allocator-Registry", 42).
		Return(&github.PullRequest{Number: 42, HeadRef: "allocator-A1"}, nil)
	gh.EXPECT().GetFile(gomock.Any(), "filecoin-project", "Allocator-Registry", "Allocators/A1.json", "allocator-A1").
		Return(&github.File{SHA: "sha-2", Content: []byte(`{"name":"X"}`)}, nil)

	rev, ok, err := r.Read(context.Background(), domain.Application{ID: "A1", PullRequestNumber: 42})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, reconciler.Revision{
		ApplicationID: "A1",
		Fingerprint:   "sha-2",
		Content:       []byte(`{"name":"X"}`),
	}, rev)
}

func TestPullRequestReader_Failures(t *testing.T) {
	app := domain.Application{ID: "A1", PullRequestNumber: 42}

	t.Run("pull request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gh := mockgithub.NewMockClient(ctrl)
		r := reconciler.NewPullRequestReader(gh, readerOptions)

		gh.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 42).
			Return(nil, serrors.With(serrors.ErrNotFound, "github resource not found"))

		_, ok, err := r.Read(context.Background(), app)
		require.False(t, ok)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("missing head ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gh := mockgithub.NewMockClient(ctrl)
		r := reconciler.NewPullRequestReader(gh, readerOptions)

		gh.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 42).
			Return(&github.PullRequest{Number: 42}, nil)

		_, _, err := r.Read(context.Background(), app)
		require.ErrorIs(t, err, serrors.ErrTransient)
	})

	t.Run("rate limited file read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gh := mockgithub.NewMockClient(ctrl)
		r := reconciler.NewPullRequestReader(gh, readerOptions)

		gh.EXPECT().GetPullRequest(gomock.Any(), gomock.Any(), gomock.Any(), 42).
			Return(&github.PullRequest{Number: 42, HeadRef: "main"}, nil)
		gh.EXPECT().GetFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "main").
			Return(nil, serrors.With(serrors.ErrRateLimited, "github rate limit exceeded"))

		_, ok, err := r.Read(context.Background(), app)
		require.False(t, ok)
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})
}
