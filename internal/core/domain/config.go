package domain

const (
	// ConfigFileName is the name of the tool configuration file.
	ConfigFileName = "refmap.yaml"

	// DefaultBranch is the branch resolved when the configuration names none.
	DefaultBranch = "main"
)

// Binding ties a protocol description to the implementation source it is
// cross-referenced against: the repository, the branch to resolve, and the
// two files scanned per entity category.
type Binding struct {
	Owner string
	Repo  string
	// Branch is the symbolic name resolved to a commit once per session.
	Branch string
	// HandlerFile is scanned for command and event references.
	HandlerFile string
	// TypesFile is scanned for type references.
	TypesFile string
}

// SourceFiles returns the bound file paths in scan order.
func (b Binding) SourceFiles() []string {
	return []string{b.HandlerFile, b.TypesFile}
}

// Config is the loaded tool configuration: where the protocol description
// lives and which implementation it is matched against.
type Config struct {
	// Path is the location the configuration was loaded from. Watch mode
	// re-reads it when the file changes.
	Path         string
	ProtocolPath string
	Binding      Binding
}
