package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refmap/cmd/refmap/commands"
	"go.trai.ch/refmap/internal/app"
	"go.trai.ch/refmap/internal/build"
	"go.trai.ch/refmap/internal/core/domain"
)

type mockApp struct {
	extractFunc  func(ctx context.Context, opts app.ExtractOptions) (*app.ExtractResult, error)
	revisionFunc func(ctx context.Context, opts app.RevisionOptions) (domain.Revision, error)
	watchFunc    func(ctx context.Context, opts app.ExtractOptions, onResult func(*app.ExtractResult)) error
}

func (m *mockApp) Extract(ctx context.Context, opts app.ExtractOptions) (*app.ExtractResult, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, opts)
	}
	return sampleResult(), nil
}

func (m *mockApp) Revision(ctx context.Context, opts app.RevisionOptions) (domain.Revision, error) {
	if m.revisionFunc != nil {
		return m.revisionFunc(ctx, opts)
	}
	return sampleResult().Revision, nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.ExtractOptions, onResult func(*app.ExtractResult)) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts, onResult)
	}
	return nil
}

func sampleResult() *app.ExtractResult {
	refs := domain.NewReferenceMap()
	refs.Commands["Debugger.pause"] = []domain.Match{
		{Path: "src/handler.rs", Text: `"Debugger.pause"`, Offset: 311, Length: 16},
	}

	return &app.ExtractResult{
		References: refs,
		Revision:   domain.Revision{Owner: "chromium", Repo: "devtools", Commit: "4f2a9c1"},
	}
}

func TestCommands_Extract(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		var capturedOpts app.ExtractOptions
		called := false

		mock := &mockApp{
			extractFunc: func(_ context.Context, opts app.ExtractOptions) (*app.ExtractResult, error) {
				capturedOpts = opts
				called = true
				return sampleResult(), nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"extract", "--config", "custom.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "custom.yaml", capturedOpts.ConfigPath)
		assert.Contains(t, buf.String(), "Debugger.pause")
		assert.Contains(t, buf.String(), "data is from commit")
	})

	t.Run("emits json with --json", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"extract", "--json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"total": 1`)
		assert.Contains(t, buf.String(), `"commit": "4f2a9c1"`)
	})

	t.Run("watch renders every iteration", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		mock := &mockApp{
			watchFunc: func(_ context.Context, _ app.ExtractOptions, onResult func(*app.ExtractResult)) error {
				onResult(sampleResult())
				onResult(sampleResult())
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"extract", "--watch"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(buf.String(), "data is from commit"))
	})

	t.Run("returns error on extraction failure", func(t *testing.T) {
		mock := &mockApp{
			extractFunc: func(_ context.Context, _ app.ExtractOptions) (*app.ExtractResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"extract"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Revision(t *testing.T) {
	t.Run("renders attribution", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		var capturedOpts app.RevisionOptions

		mock := &mockApp{
			revisionFunc: func(_ context.Context, opts app.RevisionOptions) (domain.Revision, error) {
				capturedOpts = opts
				return domain.Revision{Owner: "chromium", Repo: "devtools", Commit: "4f2a9c1"}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"revision", "--config", "custom.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "custom.yaml", capturedOpts.ConfigPath)
		assert.Contains(t, buf.String(), "data is from commit `4f2a9c1` of `chromium/devtools`")
	})

	t.Run("returns error on resolve failure", func(t *testing.T) {
		mock := &mockApp{
			revisionFunc: func(_ context.Context, _ app.RevisionOptions) (domain.Revision, error) {
				return domain.Revision{}, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"revision"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
