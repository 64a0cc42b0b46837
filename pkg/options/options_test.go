package options

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	if cmd, err := ParseCommand("create"); err != nil || cmd != Create {
		t.Errorf("ParseCommand(create) = %v, %v", cmd, err)
	}
	if cmd, err := ParseCommand("check"); err != nil || cmd != Check {
		t.Errorf("ParseCommand(check) = %v, %v", cmd, err)
	}
	if _, err := ParseCommand("sync"); !errors.Is(err, ErrUnsupportedCommand) {
		t.Errorf("ParseCommand(sync) err = %v, want ErrUnsupportedCommand", err)
	}
}

func TestParseOrderIndependent(t *testing.T) {
	a, err := Parse([]string{"rel:v1,dft:true"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := Parse([]string{"dft:true,rel:v1"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a[0].Tag != b[0].Tag || a[0].Name != b[0].Name || a[0].Draft != b[0].Draft {
		t.Errorf("part order changed the option: %+v vs %+v", a[0], b[0])
	}
}

func TestParseFirstOccurrenceWins(t *testing.T) {
	opts, err := Parse([]string{"rel:first,rel:second,dft:true,dft:false"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts[0].Name != "first" {
		t.Errorf("Name = %q, want first", opts[0].Name)
	}
	if !opts[0].Draft {
		t.Error("Draft = false, want first occurrence (true) to win")
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		token     string
		isTag     bool
		isRelease bool
	}{
		{"tag:v1.0.0", true, false},
		{"rel:Beta", false, true},
		{"rel:Beta,tag:v1.0.0", false, true},
		{"rel:Beta,tag:v1.0.0,dft:true", false, true},
		{"rel:Beta,dft:nope", false, true},
	}
	for _, tt := range tests {
		opts, err := Parse([]string{tt.token})
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.token, err)
			continue
		}
		if got := opts[0].IsTag(); got != tt.isTag {
			t.Errorf("%q IsTag = %v, want %v", tt.token, got, tt.isTag)
		}
		if got := opts[0].IsRelease(); got != tt.isRelease {
			t.Errorf("%q IsRelease = %v, want %v", tt.token, got, tt.isRelease)
		}
	}
}

func TestDraftParsing(t *testing.T) {
	opts, err := Parse([]string{"rel:R,dft:true", "rel:S,dft:TRUE", "rel:T,dft:1", "rel:U"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []bool{true, false, false, false}
	for i, opt := range opts {
		if opt.Draft != want[i] {
			t.Errorf("option %d (%s) Draft = %v, want %v", i, opt, opt.Draft, want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   error
	}{
		{"unknown key", []string{"foo:bar"}, ErrInvalidOption},
		{"unknown key after valid part", []string{"tag:v1,foo:bar"}, ErrInvalidOption},
		{"missing colon", []string{"justtext"}, ErrInvalidOption},
		{"draft-only option", []string{"dft:true"}, ErrInvalidOption},
		{"tag plus draft", []string{"tag:v1,dft:true"}, ErrInvalidOption},
		{"empty tag value", []string{"tag:"}, ErrInvalidOption},
		{"no options", nil, ErrNoOptions},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.tokens); !errors.Is(err, tt.want) {
			t.Errorf("%s: Parse(%v) err = %v, want %v", tt.name, tt.tokens, err, tt.want)
		}
	}
}

func TestParsePreservesInputOrder(t *testing.T) {
	opts, err := Parse([]string{"rel:Beta,tag:v1.2.0,dft:true", "tag:v1.2.0-alpha"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("len = %d, want 2", len(opts))
	}
	if !opts[0].IsRelease() || opts[0].Name != "Beta" || opts[0].Tag != "v1.2.0" || !opts[0].Draft {
		t.Errorf("first option = %+v, want draft release Beta at v1.2.0", opts[0])
	}
	if !opts[1].IsTag() || opts[1].Tag != "v1.2.0-alpha" {
		t.Errorf("second option = %+v, want tag v1.2.0-alpha", opts[1])
	}
}
