// Package app implements the application layer for refmap.
package app

import (
	"context"
	"sync"

	"go.trai.ch/refmap/internal/adapters/watcher"
	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/refmap/internal/core/ports"
	"go.trai.ch/refmap/internal/engine/matcher"
	"go.trai.ch/refmap/internal/engine/snapshot"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	protocolLoader ports.ProtocolLoader
	source         ports.SourceClient
	logger         ports.Logger
	tracer         ports.Tracer
	watcher        ports.Watcher

	// sessions pins one snapshot per binding. A changed binding starts a new
	// session; flipping back reuses the already fetched one.
	mu       sync.Mutex
	sessions map[domain.Binding]*matcher.Matcher
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	protocolLoader ports.ProtocolLoader,
	source ports.SourceClient,
	log ports.Logger,
	tracer ports.Tracer,
	fileWatcher ports.Watcher,
) *App {
	return &App{
		configLoader:   configLoader,
		protocolLoader: protocolLoader,
		source:         source,
		logger:         log,
		tracer:         tracer,
		watcher:        fileWatcher,
		sessions:       make(map[domain.Binding]*matcher.Matcher),
	}
}

// ExtractOptions configuration for the Extract method.
type ExtractOptions struct {
	// ConfigPath loads an explicit configuration file instead of discovering
	// refmap.yaml from the working directory upwards.
	ConfigPath string
}

// ExtractResult pairs the located references with the revision they belong to.
type ExtractResult struct {
	References *domain.ReferenceMap
	Revision   domain.Revision
}

// RevisionOptions configuration for the Revision method.
type RevisionOptions struct {
	ConfigPath string
}

// Extract loads the configuration and protocol description, then locates
// every protocol entity inside the bound implementation files.
func (a *App) Extract(ctx context.Context, opts ExtractOptions) (*ExtractResult, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	proto, err := a.protocolLoader.Load(cfg.ProtocolPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load protocol description")
	}

	ctx, span := a.tracer.Start(ctx, "extract")
	defer span.End()
	span.SetAttribute("repository", cfg.Binding.Owner+"/"+cfg.Binding.Repo)
	span.SetAttribute("branch", cfg.Binding.Branch)

	m := a.session(cfg.Binding)

	refs, err := m.Extract(ctx, proto)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "extraction failed")
	}

	rev, err := m.RevisionDescription(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("matches", refs.Total())

	return &ExtractResult{References: refs, Revision: rev}, nil
}

// Revision resolves and returns the commit the bound branch points to.
func (a *App) Revision(ctx context.Context, opts RevisionOptions) (domain.Revision, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return domain.Revision{}, zerr.Wrap(err, "failed to load configuration")
	}

	ctx, span := a.tracer.Start(ctx, "resolve-revision")
	defer span.End()
	span.SetAttribute("repository", cfg.Binding.Owner+"/"+cfg.Binding.Repo)
	span.SetAttribute("branch", cfg.Binding.Branch)

	rev, err := a.session(cfg.Binding).RevisionDescription(ctx)
	if err != nil {
		span.RecordError(err)
		return domain.Revision{}, err
	}

	span.SetAttribute("commit", rev.Commit)

	return rev, nil
}

// Watch runs one extraction and then re-runs it whenever the protocol
// description or the configuration changes. Failed re-runs are logged and
// watching continues. Watch returns once ctx is canceled or the watcher
// shuts down.
func (a *App) Watch(ctx context.Context, opts ExtractOptions, onResult func(*ExtractResult)) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// Re-runs go through Extract so configuration edits take effect and a
	// changed binding starts a fresh session.
	var runMu sync.Mutex
	run := func() {
		runMu.Lock()
		defer runMu.Unlock()

		result, err := a.Extract(ctx, opts)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			a.logger.Error(err)
			return
		}
		onResult(result)
	}

	if err := a.watcher.Start(ctx, cfg.ProtocolPath, cfg.Path); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	run()

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(_ []string) {
		run()
	})

	for event := range a.watcher.Events() {
		switch event.Operation {
		case ports.OpRemove, ports.OpRename:
			// Editors replace files through rename and recreate them right
			// after; the recreate shows up as a Create event.
			a.logger.Warn("watched file disappeared: " + event.Path)
		case ports.OpCreate, ports.OpWrite:
			debouncer.Add(event.Path)
		}
	}

	return nil
}

// session returns the matcher pinned to binding, creating it on first use.
func (a *App) session(binding domain.Binding) *matcher.Matcher {
	a.mu.Lock()
	defer a.mu.Unlock()

	if m, ok := a.sessions[binding]; ok {
		return m
	}

	m := matcher.New(snapshot.New(a.source, binding), binding)
	a.sessions[binding] = m

	return m
}

// loadConfig loads an explicit config file when given, discovery otherwise.
func (a *App) loadConfig(explicit string) (*domain.Config, error) {
	if explicit != "" {
		return a.configLoader.LoadFile(explicit)
	}

	return a.configLoader.Load(".")
}
