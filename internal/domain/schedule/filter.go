package schedule

import "strings"

// Matches reports whether filter appears, case-insensitively, in the competition,
// either team name or the raw date. An empty filter matches everything.
func Matches(m Match, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, field := range [...]string{m.Liga, m.HomeTeam, m.AwayTeam, m.Tanggal} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func Filter(matches []Match, filter string) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if Matches(m, filter) {
			out = append(out, m)
		}
	}
	return out
}
