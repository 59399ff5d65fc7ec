// Package roster narrows a game's Shadow list down to the names a bulk run
// should visit.
package roster

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var reUnderscore = regexp.MustCompile(`_+`)

// Key folds a Shadow name into a comparison key, so "Ose", "ose" and
// "O.S.E." match while "Ose" and "Ose Adv." stay distinct.
func Key(name string) string {
	s := strings.ToLower(name)

	repl := []string{
		"-", "_",
		"–", "_",
		"—", "_",
		"/", "_",
		" ", "_",
		".", "",
		"'", "",
		"’", "",
		"(", "",
		")", "",
	}
	for i := 0; i < len(repl); i += 2 {
		s = strings.ReplaceAll(s, repl[i], repl[i+1])
	}

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			clean = append(clean, r)
		}
	}

	return strings.Trim(reUnderscore.ReplaceAllString(string(clean), "_"), "_")
}

// Filter applies at most one selector, checked in the order name, range,
// list. An empty selector set returns all. name matches by Key first and
// falls back to a 1-based position.
func Filter(all []string, name, rng, list string) []string {
	if name != "" {
		byName := FilterByName(all, name)
		if len(byName) > 0 {
			return byName
		}

		if idx, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
			if idx > 0 && idx <= len(all) {
				return []string{all[idx-1]}
			}
		}

		return nil
	}

	if rng != "" {
		return FilterRange(all, rng)
	}
	if list != "" {
		return FilterList(all, list)
	}

	return all
}

func FilterByName(all []string, name string) []string {
	want := Key(name)
	if want == "" {
		return nil
	}

	var out []string
	for _, n := range all {
		if Key(n) == want {
			out = append(out, n)
		}
	}

	return out
}

// FilterRange takes an inclusive 1-based "start-end" span. Malformed or
// out-of-bounds spans select nothing.
func FilterRange(all []string, rng string) []string {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil
	}

	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))

	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || end <= 0 || start > end || end > len(all) {
		return nil
	}

	return all[start-1 : end]
}

// FilterList takes comma separated 1-based positions and skips the ones
// that do not parse or fall outside the roster.
func FilterList(all []string, list string) []string {
	var out []string

	for p := range strings.SplitSeq(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		idx, err := strconv.Atoi(p)
		if err != nil || idx <= 0 || idx > len(all) {
			continue
		}

		out = append(out, all[idx-1])
	}

	return out
}

// Dedupe drops repeated names by Key, keeping the first spelling seen.
func Dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))

	for _, n := range names {
		k := Key(n)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, n)
	}

	return out
}
