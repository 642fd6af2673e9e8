// Package snapshot caches one resolved revision and the source files fetched
// at it for the lifetime of a session.
package snapshot

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/refmap/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Store is the per-session snapshot of one bound repository: the commit its
// branch resolved to and the full text of every file fetched at that commit.
// Both are write-once, so everything read from the Store belongs to the
// revision reported by Revision. All methods are safe for concurrent use.
type Store struct {
	client  ports.SourceClient
	binding domain.Binding

	// flight coalesces concurrent resolution and fetch rounds so a burst of
	// extractions performs each remote call once.
	flight singleflight.Group

	mu       sync.RWMutex
	revision *domain.Revision
	files    map[string]string
}

// New creates an empty Store for the bound repository.
func New(client ports.SourceClient, binding domain.Binding) *Store {
	return &Store{
		client:  client,
		binding: binding,
		files:   make(map[string]string),
	}
}

// Resolve returns the commit the bound branch points to, resolving it on
// first use. Concurrent callers share one in-flight lookup. A failed lookup
// is not recorded, so the next call retries.
func (s *Store) Resolve(ctx context.Context) (domain.Revision, error) {
	result, err, _ := s.flight.Do("resolve", func() (any, error) {
		s.mu.RLock()
		cached := s.revision
		s.mu.RUnlock()
		if cached != nil {
			return *cached, nil
		}

		rev, err := s.client.ResolveBranch(ctx, s.binding.Owner, s.binding.Repo, s.binding.Branch)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.revision = &rev
		s.mu.Unlock()

		return rev, nil
	})
	if err != nil {
		return domain.Revision{}, err
	}

	return result.(domain.Revision), nil
}

// EnsureFile fetches path at the resolved revision unless it is already
// cached. Resolution happens first, so the content always belongs to the
// session revision. Concurrent callers for the same path share one fetch;
// only a successful fetch is cached.
func (s *Store) EnsureFile(ctx context.Context, path string) error {
	s.mu.RLock()
	_, loaded := s.files[path]
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	rev, err := s.Resolve(ctx)
	if err != nil {
		return err
	}

	_, err, _ = s.flight.Do("file:"+path, func() (any, error) {
		s.mu.RLock()
		_, loaded := s.files[path]
		s.mu.RUnlock()
		if loaded {
			return nil, nil
		}

		content, err := s.client.FetchFile(ctx, rev, path)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.files[path] = content
		s.mu.Unlock()

		return nil, nil
	})

	return err
}

// EnsureAll makes every named path available, fetching missing ones
// concurrently. The whole round is coalesced as one unit, so a burst of
// extractions over the same path set performs one resolution and one fetch
// per file. Success requires every fetch to succeed; a failed round leaves
// no partial bookkeeping behind beyond the files that did load.
func (s *Store) EnsureAll(ctx context.Context, paths ...string) error {
	_, err, _ := s.flight.Do("ensure:"+strings.Join(paths, "\x00"), func() (any, error) {
		if _, err := s.Resolve(ctx); err != nil {
			return nil, err
		}

		g, groupCtx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.NumCPU())

		for _, path := range paths {
			g.Go(func() error {
				return s.EnsureFile(groupCtx, path)
			})
		}

		return nil, g.Wait()
	})

	return err
}

// File returns the cached text of path. It fails with domain.ErrFileNotLoaded
// when no successful ensure covered the path yet.
func (s *Store) File(path string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	if !ok {
		return "", zerr.With(domain.ErrFileNotLoaded, "path", path)
	}

	return content, nil
}

// Revision reports the resolved revision for attribution. The second return
// is false until resolution succeeded.
func (s *Store) Revision() (domain.Revision, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.revision == nil {
		return domain.Revision{}, false
	}

	return *s.revision, true
}
