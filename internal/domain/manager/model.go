package manager

import "strings"

// Manager is a human coach. The standings table stores coach names as free
// text, so managers are joined to their seasons by normalized-name matching
// rather than a foreign key; see NamesMatch.
type Manager struct {
	Name            string
	DiscordID       string
	DiscordUsername string
	TwitchUsername  string
	YouTubeURL      string
	Live            bool
}

// Championship is one title won by a coach, labeled with the season and
// league it was won in.
type Championship struct {
	Coach string
	Label string
}

// NormalizeName case-folds a coach name and strips punctuation, underscores
// and whitespace so independently maintained spellings of the same person
// can be compared.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NamesMatch reports whether two free-text coach names refer to the same
// person: normalized forms must be equal or one must contain the other.
// Substring containment keeps nicknames matching ("bob" vs "bob_w") but is
// ambiguous for short names; the data model should carry a stable key
// instead.
func NamesMatch(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
