package component

import "github.com/sahilm/fuzzy"

// maxSuggestions bounds the number of names offered for a misspelling.
const maxSuggestions = 3

// suggest returns up to maxSuggestions candidates that fuzzy-match name,
// best match first. Both directions are tried so that a truncated name
// ("BAS") and an extended one ("BASE_ADDR") find "BASE".
func suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	seen := make(map[string]struct{})

	var out []string

	add := func(s string) {
		if _, ok := seen[s]; ok || len(out) >= maxSuggestions {
			return
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, m := range fuzzy.Find(name, candidates) {
		add(m.Str)
	}

	for _, c := range candidates {
		if len(fuzzy.Find(c, []string{name})) > 0 {
			add(c)
		}
	}

	return out
}
