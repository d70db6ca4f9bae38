package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Dosada05/zone-cup/brackets"
)

// Rules is the tournament topology, read from a YAML file.
type Rules struct {
	Zones             []string `yaml:"zones"`
	QualifiersPerZone int      `yaml:"qualifiers_per_zone"`
	MaxTeamsPerZone   int      `yaml:"max_teams_per_zone"`
	DemoToolsEnabled  *bool    `yaml:"demo_tools_enabled"`
	RequireFullZones  *bool    `yaml:"require_full_zones"`
}

func DefaultRules() Rules {
	return Rules{
		Zones:             []string{"A", "B"},
		QualifiersPerZone: 8,
		MaxTeamsPerZone:   16,
		DemoToolsEnabled:  boolPtr(true),
		RequireFullZones:  boolPtr(true),
	}
}

// LoadRules reads path on top of the defaults. A missing file is an error only when required.
func LoadRules(path string, required bool) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return DefaultRules(), nil
		}
		return Rules{}, fmt.Errorf("failed to read tournament rules %s: %w", path, err)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to parse tournament rules: %w", err)
	}

	defaults := DefaultRules()
	if len(rules.Zones) == 0 {
		rules.Zones = defaults.Zones
	}
	if rules.QualifiersPerZone == 0 {
		rules.QualifiersPerZone = defaults.QualifiersPerZone
	}
	if rules.MaxTeamsPerZone == 0 {
		rules.MaxTeamsPerZone = 2 * rules.QualifiersPerZone
	}
	if rules.DemoToolsEnabled == nil {
		rules.DemoToolsEnabled = defaults.DemoToolsEnabled
	}
	if rules.RequireFullZones == nil {
		rules.RequireFullZones = defaults.RequireFullZones
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

func (r Rules) Validate() error {
	if len(r.Zones) == 0 {
		return errors.New("tournament rules: at least one zone is required")
	}
	seen := make(map[string]bool, len(r.Zones))
	for _, z := range r.Zones {
		if strings.TrimSpace(z) == "" {
			return errors.New("tournament rules: zone names must not be empty")
		}
		if seen[z] {
			return fmt.Errorf("tournament rules: duplicate zone %q", z)
		}
		seen[z] = true
	}
	if r.QualifiersPerZone < 1 {
		return fmt.Errorf("tournament rules: qualifiers_per_zone must be positive, got %d", r.QualifiersPerZone)
	}
	if total := r.TotalQualifiers(); !brackets.ValidBracketSize(total) {
		return fmt.Errorf("tournament rules: %d qualifiers in total, want a power of two between 2 and %d", total, brackets.MaxBracketSize)
	}
	if r.MaxTeamsPerZone < r.QualifiersPerZone {
		return fmt.Errorf("tournament rules: max_teams_per_zone (%d) is below qualifiers_per_zone (%d)", r.MaxTeamsPerZone, r.QualifiersPerZone)
	}
	return nil
}

func (r Rules) DemoTools() bool {
	return r.DemoToolsEnabled != nil && *r.DemoToolsEnabled
}

// FullZonesRequired reports whether the roster can be locked only with every zone at capacity.
func (r Rules) FullZonesRequired() bool {
	return r.RequireFullZones == nil || *r.RequireFullZones
}

func boolPtr(b bool) *bool {
	return &b
}

// TotalQualifiers is the size of the first knockout round.
func (r Rules) TotalQualifiers() int {
	return len(r.Zones) * r.QualifiersPerZone
}
