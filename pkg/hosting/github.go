package hosting

import (
	"context"
	"fmt"

	"github.com/google/go-github/v60/github"
)

// GitHubHost implements RepoHost on top of the GitHub REST API.
type GitHubHost struct {
	client *github.Client
	ctx    context.Context
}

func NewGitHubHost(client *github.Client) *GitHubHost {
	return &GitHubHost{
		client: client,
		ctx:    context.Background(),
	}
}

// NewTokenHost builds a GitHubHost authenticated with token. An empty token
// yields an anonymous client, which is enough for checking public
// repositories but not for mutations.
func NewTokenHost(token string) *GitHubHost {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return NewGitHubHost(client)
}

func (g *GitHubHost) ListTags(owner, repo string) ([]Tag, error) {
	var allTags []Tag
	opts := &github.ListOptions{PerPage: 100}

	for {
		tags, resp, err := g.client.Repositories.ListTags(g.ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", owner, repo, err)
		}
		for _, t := range tags {
			allTags = append(allTags, Tag{
				Name:   t.GetName(),
				Commit: t.GetCommit().GetSHA(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return allTags, nil
}

func (g *GitHubHost) ListReleases(owner, repo string) ([]Release, error) {
	var allReleases []Release
	opts := &github.ListOptions{PerPage: 100}

	for {
		releases, resp, err := g.client.Repositories.ListReleases(g.ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list releases for %s/%s: %w", owner, repo, err)
		}
		for _, r := range releases {
			allReleases = append(allReleases, Release{
				ID:      r.GetID(),
				Name:    r.GetName(),
				TagName: r.GetTagName(),
				Draft:   r.GetDraft(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return allReleases, nil
}

func (g *GitHubHost) DeleteRelease(owner, repo string, id int64) error {
	if _, err := g.client.Repositories.DeleteRelease(g.ctx, owner, repo, id); err != nil {
		return fmt.Errorf("delete release %d in %s/%s: %w", id, owner, repo, err)
	}
	return nil
}

func (g *GitHubHost) DeleteTagRef(owner, repo, tag string) error {
	ref := "tags/" + tag
	if _, err := g.client.Git.DeleteRef(g.ctx, owner, repo, ref); err != nil {
		return fmt.Errorf("delete ref %s in %s/%s: %w", ref, owner, repo, err)
	}
	return nil
}

func (g *GitHubHost) CreateRelease(owner, repo, tagName, name string, draft bool) error {
	release := &github.RepositoryRelease{
		TagName: github.String(tagName),
		Name:    github.String(name),
		Draft:   github.Bool(draft),
	}
	if _, _, err := g.client.Repositories.CreateRelease(g.ctx, owner, repo, release); err != nil {
		return fmt.Errorf("create release %q in %s/%s: %w", name, owner, repo, err)
	}
	return nil
}

func (g *GitHubHost) CreateTagRef(owner, repo, tag, sha string) error {
	ref := "refs/tags/" + tag
	reference := &github.Reference{
		Ref:    github.String(ref),
		Object: &github.GitObject{SHA: github.String(sha)},
	}
	if _, _, err := g.client.Git.CreateRef(g.ctx, owner, repo, reference); err != nil {
		return fmt.Errorf("create ref %s in %s/%s: %w", ref, owner, repo, err)
	}
	return nil
}

func (g *GitHubHost) BranchHead(owner, repo, branch string) (string, error) {
	b, _, err := g.client.Repositories.GetBranch(g.ctx, owner, repo, branch, 0)
	if err != nil {
		return "", fmt.Errorf("get branch %s in %s/%s: %w", branch, owner, repo, err)
	}
	return b.GetCommit().GetSHA(), nil
}
