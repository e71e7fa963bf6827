// Package autocorrect proposes a previously accepted command when the user
// types something close to, but not exactly, one of them.
package autocorrect

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/doeshing/xterm-go/internal/domain"
)

// tokenScale discounts token-based ratios so an exact character match always wins.
const tokenScale = 0.95

// Match is the best scoring candidate for a query.
type Match struct {
	Candidate string
	Score     int
}

// Score rates how similar a and b are on a 0-100 scale. It takes the best of
// a plain edit-distance ratio and two token based ratios, so reordered or
// partially repeated words still score high.
func Score(a, b string) int {
	pa, pb := normalize(a), normalize(b)
	if pa == "" || pb == "" {
		return 0
	}
	best := float64(ratio(pa, pb))
	best = math.Max(best, math.Round(tokenScale*float64(tokenSortRatio(pa, pb))))
	best = math.Max(best, math.Round(tokenScale*float64(tokenSetRatio(pa, pb))))
	if best > domain.MaxSimilarityScore {
		best = domain.MaxSimilarityScore
	}
	return int(best)
}

// BestMatch returns the highest scoring candidate. Ties go to the earliest
// candidate. An empty candidate list yields domain.ErrNoCandidates.
func BestMatch(query string, candidates []string) (Match, error) {
	if len(candidates) == 0 {
		return Match{}, domain.ErrNoCandidates
	}
	best := Match{Candidate: candidates[0], Score: Score(query, candidates[0])}
	for _, candidate := range candidates[1:] {
		if score := Score(query, candidate); score > best.Score {
			best = Match{Candidate: candidate, Score: score}
		}
	}
	return best, nil
}

// normalize lowercases s, turns every non alphanumeric rune into a separator
// and collapses whitespace.
func normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

func ratio(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

func tokenSortRatio(a, b string) int {
	return ratio(sortedTokens(a), sortedTokens(b))
}

func tokenSetRatio(a, b string) int {
	setA, setB := tokenSet(a), tokenSet(b)

	var common, onlyA, onlyB []string
	for tok := range setA {
		if setB[tok] {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if !setA[tok] {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	t0 := strings.Join(common, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(onlyA, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(onlyB, " "))

	best := ratio(t1, t2)
	if t0 != "" {
		if r := ratio(t0, t1); r > best {
			best = r
		}
		if r := ratio(t0, t2); r > best {
			best = r
		}
	}
	return best
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
