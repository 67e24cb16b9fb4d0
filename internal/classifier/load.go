package classifier

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// RuleSet is one analysis type's criteria and band table.
type RuleSet struct {
	Criteria []Criterion `yaml:"criteria"`
	Bands    []Band      `yaml:"bands"`
}

// LoadRuleFile reads rule-table overrides from YAML, keyed by analysis type.
// Every set is validated up front; the floor band's min_score is written as
// -.inf in YAML. Analysis types absent from the file keep their built-in
// tables.
func LoadRuleFile(path string) (map[string]RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "classifier: read rules %s", path)
	}

	var doc struct {
		Rules map[string]RuleSet `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "classifier: parse rules")
	}
	if len(doc.Rules) == 0 {
		return nil, eris.Errorf("classifier: rules file %s has no rule sets", path)
	}

	for name, rs := range doc.Rules {
		if len(rs.Criteria) == 0 {
			return nil, eris.Errorf("classifier: rule set %q has no criteria", name)
		}
		for _, c := range rs.Criteria {
			switch c.Predicate.Op {
			case OpLT, OpGT, OpBetween:
			default:
				return nil, eris.Errorf("classifier: rule set %q criterion %q has unknown op %q", name, c.Name, c.Predicate.Op)
			}
			if c.Predicate.Layer == "" {
				return nil, eris.Errorf("classifier: rule set %q criterion %q names no layer", name, c.Name)
			}
		}
		if err := ValidateBands(rs.Bands); err != nil {
			return nil, eris.Wrapf(err, "classifier: rule set %q", name)
		}
	}

	return doc.Rules, nil
}
