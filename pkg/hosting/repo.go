package hosting

// Tag is a named pointer to a commit in the hosted repository.
type Tag struct {
	Name   string
	Commit string
}

// Release is the platform's release object associated with a tag. ID is the
// platform identifier used for deletion; matching during verification uses
// the (TagName, Name, Draft) triple instead.
type Release struct {
	ID      int64
	Name    string
	TagName string
	Draft   bool
}

// RepoHost exposes the tag and release primitives the reconcilers drive.
// Implementations do not retry; rerunning a whole reconciliation is the
// recovery mechanism.
type RepoHost interface {
	// ListTags returns all tags in the platform's default order.
	ListTags(owner, repo string) ([]Tag, error)

	// ListReleases returns all releases, drafts included.
	ListReleases(owner, repo string) ([]Release, error)

	// DeleteRelease removes a release by its platform identifier.
	DeleteRelease(owner, repo string, id int64) error

	// DeleteTagRef removes the git ref backing the named tag.
	DeleteTagRef(owner, repo, tag string) error

	// CreateRelease creates a release attached to tagName.
	CreateRelease(owner, repo, tagName, name string, draft bool) error

	// CreateTagRef creates refs/tags/<tag> pointing at sha.
	CreateTagRef(owner, repo, tag, sha string) error

	// BranchHead returns the commit SHA at the tip of branch.
	BranchHead(owner, repo, branch string) (string, error)
}
