package resolver

import (
	"strings"

	"github.com/sells-group/terralens-cli/internal/gazetteer"
	"github.com/sells-group/terralens-cli/internal/model"
)

// strategy is one tier of the cascade: a pure match over the normalized
// input and the gazetteer. Strategies iterate entries in the gazetteer's
// fixed construction order so results are reproducible.
type strategy struct {
	tier  model.ResolutionTier
	match func(input string, gaz *gazetteer.Gazetteer) (model.Region, bool)
}

// matchExact hits when the normalized input equals a gazetteer key verbatim.
func matchExact(input string, gaz *gazetteer.Gazetteer) (model.Region, bool) {
	return gaz.Lookup(input)
}

// matchSubstring hits when the input is contained in a key or vice versa,
// first entry in table order winning.
func matchSubstring(input string, gaz *gazetteer.Gazetteer) (model.Region, bool) {
	for _, e := range gaz.Entries() {
		if strings.Contains(e.Name, input) || strings.Contains(input, e.Name) {
			return e.Region, true
		}
	}
	return model.Region{}, false
}

// matchAlias resolves the input through the alias table to a canonical key.
func matchAlias(input string, gaz *gazetteer.Gazetteer) (model.Region, bool) {
	canonical, ok := gaz.Canonical(input)
	if !ok {
		return model.Region{}, false
	}
	return gaz.Lookup(canonical)
}

// fuzzyMinTokenLen is the minimum token length considered by the fuzzy tier.
// Short tokens ("new", "st") match too promiscuously to be useful.
const fuzzyMinTokenLen = 4

// matchTokenFuzzy splits input and keys into whitespace tokens and hits when
// any sufficiently long token pair is a substring match in either direction.
func matchTokenFuzzy(input string, gaz *gazetteer.Gazetteer) (model.Region, bool) {
	inputTokens := strings.Fields(input)
	for _, e := range gaz.Entries() {
		keyTokens := strings.Fields(e.Name)
		for _, it := range inputTokens {
			if len(it) < fuzzyMinTokenLen {
				continue
			}
			for _, kt := range keyTokens {
				if len(kt) < fuzzyMinTokenLen {
					continue
				}
				if strings.Contains(it, kt) || strings.Contains(kt, it) {
					return e.Region, true
				}
			}
		}
	}
	return model.Region{}, false
}
