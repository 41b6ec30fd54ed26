package token

var (
	keywords  = buildSpellingIndex(KwAcceptOn, KwXor)
	punctuate = buildSpellingIndex(Apostrophe, AndAndAnd)

	// MaxPunctLen is the longest punctuation spelling, used for longest-match scanning.
	MaxPunctLen = maxSpellingLen(Apostrophe, AndAndAnd)
)

func buildSpellingIndex(first, last Kind) map[string]Kind {
	out := make(map[string]Kind, int(last-first)+1)
	for k := first; k <= last; k++ {
		out[kindTable[k].text] = k
	}
	return out
}

func maxSpellingLen(first, last Kind) int {
	n := 0
	for k := first; k <= last; k++ {
		n = max(n, len(kindTable[k].text))
	}
	return n
}

// LookupKeyword returns the keyword kind for ident and true if it is a keyword.
// Keywords are case-sensitive: only lowercase spellings are recognised.
// The system names $unit and $root are handled here as well.
func LookupKeyword(ident string) (Kind, bool) {
	switch ident {
	case "$unit":
		return UnitSystemName, true
	case "$root":
		return RootSystemName, true
	}
	k, ok := keywords[ident]
	return k, ok
}

// LookupPunct returns the punctuation kind spelled exactly as text.
func LookupPunct(text string) (Kind, bool) {
	k, ok := punctuate[text]
	return k, ok
}
