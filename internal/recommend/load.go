package recommend

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk layout of a rule table.
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a YAML rule table from path.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes and validates a YAML rule table.
func ParseRules(data []byte) ([]Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := ValidateRules(f.Rules); err != nil {
		return nil, err
	}
	return f.Rules, nil
}

// ValidateRules checks that every rule is complete.
func ValidateRules(rules []Rule) error {
	if len(rules) == 0 {
		return fmt.Errorf("rule table is empty")
	}
	var errs []string
	for i, r := range rules {
		if strings.TrimSpace(r.Key) == "" {
			errs = append(errs, fmt.Sprintf("rule %d: missing key", i))
		}
		if len(r.Matches) == 0 {
			errs = append(errs, fmt.Sprintf("rule %d (%s): no match values", i, r.Key))
		}
		if r.Kind != KindIssue && r.Kind != KindImprovement {
			errs = append(errs, fmt.Sprintf("rule %d (%s): kind must be issue or improvement, got %q", i, r.Key, r.Kind))
		}
		if strings.TrimSpace(r.Title) == "" {
			errs = append(errs, fmt.Sprintf("rule %d (%s): missing title", i, r.Key))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid rules:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
