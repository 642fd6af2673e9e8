// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/refmap/internal/core/domain"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// RevisionResolver resolves a symbolic branch name to an immutable commit.
type RevisionResolver interface {
	// ResolveBranch returns the revision the named branch currently points to.
	// A non-success response from the remote service fails with
	// domain.ErrRevisionResolveFailed carrying the status code.
	ResolveBranch(ctx context.Context, owner, repo, branch string) (domain.Revision, error)
}

// FileFetcher retrieves file contents pinned to a resolved revision.
type FileFetcher interface {
	// FetchFile returns the full text of path at the given revision. A
	// non-success response fails with domain.ErrFileFetchFailed carrying
	// the path and status code.
	FetchFile(ctx context.Context, rev domain.Revision, path string) (string, error)
}

// SourceClient is the combined remote-source collaborator.
type SourceClient interface {
	RevisionResolver
	FileFetcher
}
