package domain

// Revision pins one implementation snapshot: the repository identity plus the
// immutable commit a branch resolved to. A revision is resolved once per
// session and never mutated afterwards, so every fetched file is guaranteed
// to belong to the commit shown in the attribution.
type Revision struct {
	Owner  string
	Repo   string
	Commit string
}

// Slug returns the "owner/repo" form used in attributions and log output.
func (r Revision) Slug() string {
	return r.Owner + "/" + r.Repo
}
