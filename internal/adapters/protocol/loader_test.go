package protocol_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/refmap/internal/adapters/protocol"
	"go.trai.ch/refmap/internal/core/domain"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	loader := protocol.NewLoader()

	t.Run("Success", func(t *testing.T) {
		path := createFile(t, t.TempDir(), "protocol.json", `{
			"version": {"major": "1", "minor": "3"},
			"domains": [
				{
					"domain": "Network",
					"commands": [{"name": "enable"}, {"name": "disable"}],
					"events": [{"name": "requestWillBeSent"}],
					"types": [{"id": "Request"}]
				},
				{
					"domain": "Debugger",
					"commands": [{"name": "pause"}]
				}
			]
		}`)

		p, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, domain.Version{Major: "1", Minor: "3"}, p.Version)
		require.Len(t, p.Domains, 2)

		network := p.Domains[0]
		assert.Equal(t, "Network", network.Name)
		assert.Equal(t, []domain.Command{{Name: "enable"}, {Name: "disable"}}, network.Commands)
		assert.Equal(t, []domain.Event{{Name: "requestWillBeSent"}}, network.Events)
		assert.Equal(t, []domain.Type{{ID: "Request"}}, network.Types)

		debugger := p.Domains[1]
		assert.Equal(t, "Debugger", debugger.Name)
		assert.Equal(t, []domain.Command{{Name: "pause"}}, debugger.Commands)
		assert.Empty(t, debugger.Events)
		assert.Empty(t, debugger.Types)
	})

	t.Run("EmptyDomains", func(t *testing.T) {
		path := createFile(t, t.TempDir(), "protocol.json", `{
			"version": {"major": "1", "minor": "0"},
			"domains": []
		}`)

		p, err := loader.Load(path)
		require.NoError(t, err)
		assert.Empty(t, p.Domains)
	})

	t.Run("MissingVersion", func(t *testing.T) {
		path := createFile(t, t.TempDir(), "protocol.json", `{
			"domains": [{"domain": "Page"}]
		}`)

		p, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, domain.Version{}, p.Version)
		require.Len(t, p.Domains, 1)
		assert.Equal(t, "Page", p.Domains[0].Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrProtocolReadFailed.Error())
	})

	t.Run("ParseError", func(t *testing.T) {
		path := createFile(t, t.TempDir(), "protocol.json", `{"domains": [`)

		_, err := loader.Load(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrProtocolParseFailed.Error())
	})
}
