// Package profile loads window profiles: YAML rules that match top-level
// windows by title or class and describe the effects and styles to apply.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/winfx/internal/effects"
	"github.com/Norgate-AV/winfx/internal/win32"
	"github.com/Norgate-AV/winfx/internal/window"
)

// EnvProfilePath overrides the default profile location
const EnvProfilePath = "WINFX_PROFILE"

// ErrInvalidProfile is matched by every validation error
var ErrInvalidProfile = errors.New("invalid profile")

// ZOrder values
const (
	ZOrderFront  = "front"
	ZOrderBack   = "back"
	ZOrderNormal = "normal"
)

// Profile is a list of rules. The first rule matching a window wins.
type Profile struct {
	Rules []Rule `yaml:"rules"`
}

// Match selects windows by case-insensitive substrings of their title and
// class name. Empty fields match everything.
type Match struct {
	Title string `yaml:"title"`
	Class string `yaml:"class"`
}

// Rule describes what to do with matching windows. Unset fields leave the
// window unchanged.
type Rule struct {
	Name         string         `yaml:"name"`
	Match        Match          `yaml:"match"`
	Effect       *effects.Level `yaml:"effect"`
	Tint         *effects.Color `yaml:"tint"`
	ZOrder       string         `yaml:"zorder"`
	ClickThrough *bool          `yaml:"click_through"`
	AltTab       *bool          `yaml:"alt_tab"`
	Maximize     *bool          `yaml:"maximize"`
	Corners      string         `yaml:"corners"`
	DarkMode     *bool          `yaml:"dark_mode"`
	Position     *win32.Bounds  `yaml:"position"`
}

// ValidationError reports the rule and field that failed validation
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidProfile
}

// DefaultPath returns the profile path, honoring WINFX_PROFILE
func DefaultPath() string {
	if path := os.Getenv(EnvProfilePath); path != "" {
		return path
	}

	appData := os.Getenv("APPDATA")
	if appData == "" {
		appData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}

	return filepath.Join(appData, "winfx", "profile.yaml")
}

// Load reads and validates the profile at path
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes and validates a profile. Unknown fields are rejected.
func Parse(data []byte) (*Profile, error) {
	p := &Profile{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks every rule
func (p *Profile) Validate() error {
	for i := range p.Rules {
		r := &p.Rules[i]

		path := fmt.Sprintf("rules[%d]", i)
		if r.Name != "" {
			path = fmt.Sprintf("rules[%d] (%s)", i, r.Name)
		}

		if err := r.validate(); err != nil {
			return &ValidationError{Path: path, Err: err}
		}
	}

	return nil
}

func (r *Rule) validate() error {
	if strings.TrimSpace(r.Match.Title) == "" && strings.TrimSpace(r.Match.Class) == "" {
		return fmt.Errorf("match needs a title or class")
	}

	switch r.ZOrder {
	case "", ZOrderFront, ZOrderBack, ZOrderNormal:
	default:
		return fmt.Errorf("zorder must be one of: front, back, normal")
	}

	if r.Corners != "" {
		if _, err := window.ParseCorners(r.Corners); err != nil {
			return err
		}
	}

	if r.Tint != nil && r.Effect == nil {
		return fmt.Errorf("tint needs an effect")
	}

	if r.Position != nil && (r.Position.Width <= 0 || r.Position.Height <= 0) {
		return fmt.Errorf("position width and height must be > 0")
	}

	return nil
}

// Matches reports whether the rule applies to a window
func (r *Rule) Matches(title, class string) bool {
	return containsFold(title, r.Match.Title) && containsFold(class, r.Match.Class)
}

// Find returns the first rule matching the window
func (p *Profile) Find(title, class string) (*Rule, bool) {
	for i := range p.Rules {
		if p.Rules[i].Matches(title, class) {
			return &p.Rules[i], true
		}
	}

	return nil, false
}

// Label names the rule in logs
func (r *Rule) Label() string {
	if r.Name != "" {
		return r.Name
	}

	if r.Match.Title != "" {
		return "title~" + r.Match.Title
	}

	return "class~" + r.Match.Class
}

func containsFold(s, substr string) bool {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return true
	}

	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
