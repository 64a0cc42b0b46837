package reconcile

import (
	"github.com/release-state-reconciler/pkg/hosting"
	"github.com/release-state-reconciler/pkg/options"
)

// Expectation is one declared tag or release that the remote repository does
// not satisfy.
type Expectation struct {
	Kind  string `json:"kind"`
	Tag   string `json:"tag,omitempty"`
	Name  string `json:"name,omitempty"`
	Draft bool   `json:"draft,omitempty"`
}

// Result is the outcome of a check run. A non-empty Missing list means the
// remote state has drifted from the declared set; it is reported as data,
// never as a Go error.
type Result struct {
	Checked int           `json:"checked"`
	Missing []Expectation `json:"missing"`
}

func (r Result) InSync() bool {
	return len(r.Missing) == 0
}

// Check verifies that every declared option exists remotely, without
// mutating anything. Both partitions are always evaluated so a single run
// surfaces every missing entity.
//
// Tags match on name alone; the commit is not compared. Releases match only
// when tag name, release name and draft flag are all equal.
func (r *Reconciler) Check(opts []options.Option) (Result, error) {
	res := Result{Checked: len(opts)}

	tags, err := r.listTags()
	if err != nil {
		return Result{}, err
	}
	releases, err := r.listReleases()
	if err != nil {
		return Result{}, err
	}

	for _, opt := range opts {
		if opt.IsRelease() {
			if !releaseExists(releases, opt) {
				r.log.Warn("missing release", "name", opt.Name, "tag", opt.Tag, "draft", opt.Draft)
				res.Missing = append(res.Missing, Expectation{
					Kind:  "release",
					Tag:   opt.Tag,
					Name:  opt.Name,
					Draft: opt.Draft,
				})
			}
			continue
		}
		if !tagExists(tags, opt) {
			r.log.Warn("missing tag", "name", opt.Tag)
			res.Missing = append(res.Missing, Expectation{
				Kind: "tag",
				Tag:  opt.Tag,
			})
		}
	}
	return res, nil
}

func tagExists(tags []hosting.Tag, opt options.Option) bool {
	for _, t := range tags {
		if t.Name == opt.Tag {
			return true
		}
	}
	return false
}

func releaseExists(releases []hosting.Release, opt options.Option) bool {
	for _, r := range releases {
		if r.TagName == opt.Tag && r.Name == opt.Name && r.Draft == opt.Draft {
			return true
		}
	}
	return false
}
