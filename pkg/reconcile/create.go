package reconcile

import (
	"fmt"

	"github.com/release-state-reconciler/pkg/hosting"
	"github.com/release-state-reconciler/pkg/options"
)

// Create resets the repository to the declared set: every existing release is
// deleted, then every existing tag, then the declared options are applied in
// input order. Tags created in one run all point at the same anchor commit,
// the tip of the configured branch, resolved at most once.
//
// Any remote error aborts the run immediately with no rollback; a rerun
// starts again from the full wipe, which is what makes the operation
// idempotent.
func (r *Reconciler) Create(opts []options.Option) error {
	releases, err := r.listReleases()
	if err != nil {
		return err
	}
	if err := r.deleteReleases(releases); err != nil {
		return err
	}

	tags, err := r.listTags()
	if err != nil {
		return err
	}
	if err := r.deleteTags(tags); err != nil {
		return err
	}

	anchor, err := r.resolveAnchor(opts)
	if err != nil {
		return err
	}

	return r.apply(opts, anchor)
}

func (r *Reconciler) deleteReleases(releases []hosting.Release) error {
	for _, rel := range releases {
		if r.cfg.DryRun {
			r.log.Info("would delete release", "name", rel.Name, "tag", rel.TagName, "id", rel.ID)
			continue
		}
		r.log.Info("deleting release", "name", rel.Name, "tag", rel.TagName, "id", rel.ID)
		err := r.pacer.Do("delete-release", func() error {
			return r.host.DeleteRelease(r.cfg.Owner, r.cfg.Name, rel.ID)
		})
		if err != nil {
			return fmt.Errorf("wipe releases: %w", err)
		}
	}
	return nil
}

func (r *Reconciler) deleteTags(tags []hosting.Tag) error {
	for _, tag := range tags {
		if r.cfg.DryRun {
			r.log.Info("would delete tag", "name", tag.Name)
			continue
		}
		r.log.Info("deleting tag", "name", tag.Name)
		err := r.pacer.Do("delete-tag", func() error {
			return r.host.DeleteTagRef(r.cfg.Owner, r.cfg.Name, tag.Name)
		})
		if err != nil {
			return fmt.Errorf("wipe tags: %w", err)
		}
	}
	return nil
}

// resolveAnchor returns the branch tip commit when the batch contains at
// least one tag option, and an empty string otherwise. Resolving once per
// run keeps the call count down and guarantees every tag created in this run
// points at the same commit.
func (r *Reconciler) resolveAnchor(opts []options.Option) (string, error) {
	needed := false
	for _, opt := range opts {
		if opt.IsTag() {
			needed = true
			break
		}
	}
	if !needed || r.cfg.DryRun {
		return "", nil
	}

	var anchor string
	err := r.pacer.Do("branch-head", func() error {
		var err error
		anchor, err = r.host.BranchHead(r.cfg.Owner, r.cfg.Name, r.cfg.Branch)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("resolve anchor commit: %w", err)
	}
	r.log.Info("resolved anchor commit", "branch", r.cfg.Branch, "sha", anchor)
	return anchor, nil
}

func (r *Reconciler) apply(opts []options.Option, anchor string) error {
	for _, opt := range opts {
		switch {
		case opt.IsRelease():
			if r.cfg.DryRun {
				r.log.Info("would create release", "name", opt.Name, "tag", opt.Tag, "draft", opt.Draft)
				continue
			}
			r.log.Info("creating release", "name", opt.Name, "tag", opt.Tag, "draft", opt.Draft)
			err := r.pacer.Do("create-release", func() error {
				return r.host.CreateRelease(r.cfg.Owner, r.cfg.Name, opt.Tag, opt.Name, opt.Draft)
			})
			if err != nil {
				return fmt.Errorf("apply %q: %w", opt, err)
			}
		case opt.IsTag():
			if r.cfg.DryRun {
				r.log.Info("would create tag", "name", opt.Tag)
				continue
			}
			r.log.Info("creating tag", "name", opt.Tag, "sha", anchor)
			err := r.pacer.Do("create-tag", func() error {
				return r.host.CreateTagRef(r.cfg.Owner, r.cfg.Name, opt.Tag, anchor)
			})
			if err != nil {
				return fmt.Errorf("apply %q: %w", opt, err)
			}
		default:
			// Unreachable once options.Parse has validated the batch.
			return fmt.Errorf("unclassifiable option %q escaped validation", opt)
		}
	}
	return nil
}

func (r *Reconciler) listReleases() ([]hosting.Release, error) {
	var releases []hosting.Release
	err := r.pacer.Do("list-releases", func() error {
		var err error
		releases, err = r.host.ListReleases(r.cfg.Owner, r.cfg.Name)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	r.log.Debug("listed releases", "count", len(releases))
	return releases, nil
}

func (r *Reconciler) listTags() ([]hosting.Tag, error) {
	var tags []hosting.Tag
	err := r.pacer.Do("list-tags", func() error {
		var err error
		tags, err = r.host.ListTags(r.cfg.Owner, r.cfg.Name)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	r.log.Debug("listed tags", "count", len(tags))
	return tags, nil
}
