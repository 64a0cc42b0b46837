// Package options parses the desired-state tokens supplied on the command
// line into validated tag and release options.
package options

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrInvalidOption      = errors.New("invalid option")
	ErrNoOptions          = errors.New("no options supplied")
)

// Command selects the reconciliation mode.
type Command string

const (
	Create Command = "create"
	Check  Command = "check"
)

func ParseCommand(s string) (Command, error) {
	switch Command(s) {
	case Create, Check:
		return Command(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedCommand)
	}
}

// Option is one unit of declared desired state. Exactly one of two
// classifications holds after Parse: a tag option (Tag set, Name empty,
// Draft false) or a release option (Name set, Tag and Draft optional).
type Option struct {
	Tag   string
	Name  string
	Draft bool

	raw string
}

// IsTag reports whether the option declares a bare tag.
func (o Option) IsTag() bool {
	return o.Tag != "" && o.Name == "" && !o.Draft
}

// IsRelease reports whether the option declares a release, optionally pinned
// to a tag.
func (o Option) IsRelease() bool {
	return o.Name != ""
}

func (o Option) String() string {
	return o.raw
}

// Parse turns raw tokens into validated Options, preserving input order.
// Each token is a comma-separated list of key:value parts with keys tag,
// rel and dft; the first occurrence of each key across the parts wins, and
// part order is irrelevant. Parse fails on unknown keys, on tokens that
// classify as neither tag nor release, and on an empty token list.
func Parse(tokens []string) ([]Option, error) {
	if len(tokens) == 0 {
		return nil, ErrNoOptions
	}

	opts := make([]Option, 0, len(tokens))
	for _, token := range tokens {
		opt, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}

	// Classification runs over the whole batch only after every token
	// parsed, so grammar errors surface before classification errors.
	for _, opt := range opts {
		if !opt.IsTag() && !opt.IsRelease() {
			return nil, fmt.Errorf("option %q is neither a tag nor a release: %w", opt.raw, ErrInvalidOption)
		}
	}
	return opts, nil
}

func parseToken(token string) (Option, error) {
	opt := Option{raw: token}
	var seenTag, seenName, seenDraft bool

	for _, part := range strings.Split(token, ",") {
		key, value, found := strings.Cut(part, ":")
		if !found {
			return Option{}, fmt.Errorf("option %q: part %q is not key:value: %w", token, part, ErrInvalidOption)
		}
		switch key {
		case "tag":
			if !seenTag {
				opt.Tag = value
				seenTag = true
			}
		case "rel":
			if !seenName {
				opt.Name = value
				seenName = true
			}
		case "dft":
			if !seenDraft {
				opt.Draft = value == "true"
				seenDraft = true
			}
		default:
			return Option{}, fmt.Errorf("option %q: unrecognized key %q: %w", token, key, ErrInvalidOption)
		}
	}
	return opt, nil
}
