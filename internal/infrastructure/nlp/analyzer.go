// Package nlp is a small rule-based text analyzer for the nlp builtin. It
// tokenizes, tags parts of speech from a closed-class lexicon plus suffix
// rules, and groups proper nouns into named entities.
package nlp

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/ports"
)

// Universal POS tags.
const (
	tagAdj   = "ADJ"
	tagAdp   = "ADP"
	tagAdv   = "ADV"
	tagAux   = "AUX"
	tagCconj = "CCONJ"
	tagDet   = "DET"
	tagNoun  = "NOUN"
	tagNum   = "NUM"
	tagPart  = "PART"
	tagPron  = "PRON"
	tagPropn = "PROPN"
	tagPunct = "PUNCT"
	tagVerb  = "VERB"
)

var lexicon = map[string]string{
	"a": tagDet, "an": tagDet, "the": tagDet, "this": tagDet, "that": tagDet, "these": tagDet,
	"those": tagDet, "every": tagDet, "some": tagDet, "any": tagDet, "all": tagDet,
	"i": tagPron, "you": tagPron, "he": tagPron, "she": tagPron, "it": tagPron, "we": tagPron,
	"they": tagPron, "me": tagPron, "him": tagPron, "her": tagPron, "us": tagPron, "them": tagPron,
	"my": tagPron, "your": tagPron, "his": tagPron, "its": tagPron, "our": tagPron, "their": tagPron,
	"in": tagAdp, "on": tagAdp, "at": tagAdp, "by": tagAdp, "for": tagAdp, "from": tagAdp,
	"with": tagAdp, "of": tagAdp, "into": tagAdp, "over": tagAdp, "under": tagAdp, "about": tagAdp,
	"and": tagCconj, "or": tagCconj, "but": tagCconj, "nor": tagCconj,
	"is": tagAux, "are": tagAux, "was": tagAux, "were": tagAux, "be": tagAux, "been": tagAux,
	"am": tagAux, "has": tagAux, "have": tagAux, "had": tagAux, "will": tagAux, "would": tagAux,
	"can": tagAux, "could": tagAux, "should": tagAux, "must": tagAux, "do": tagAux, "does": tagAux, "did": tagAux,
	"to": tagPart, "not": tagPart, "'s": tagPart,
	"very": tagAdv, "now": tagAdv, "here": tagAdv, "there": tagAdv, "then": tagAdv, "soon": tagAdv,
	"go": tagVerb, "went": tagVerb, "run": tagVerb, "ran": tagVerb, "make": tagVerb, "made": tagVerb,
	"see": tagVerb, "saw": tagVerb, "get": tagVerb, "got": tagVerb, "show": tagVerb, "list": tagVerb,
	"open": tagVerb, "find": tagVerb, "found": tagVerb, "buy": tagVerb, "bought": tagVerb, "say": tagVerb, "said": tagVerb,
}

var months = map[string]bool{
	"january": true, "february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true, "november": true, "december": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true,
	"saturday": true, "sunday": true,
}

var places = map[string]bool{
	"paris": true, "london": true, "berlin": true, "tokyo": true, "madrid": true, "rome": true,
	"france": true, "germany": true, "japan": true, "china": true, "india": true, "spain": true,
	"italy": true, "canada": true, "england": true, "america": true, "usa": true, "taiwan": true,
}

var orgSuffixes = map[string]bool{
	"inc": true, "corp": true, "ltd": true, "llc": true, "university": true, "company": true, "bank": true,
}

// Analyzer implements ports.TextAnalyzer.
type Analyzer struct {
	fold cases.Caser
}

// NewAnalyzer builds an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{fold: cases.Fold()}
}

// Analyze implements ports.TextAnalyzer.
func (a *Analyzer) Analyze(ctx context.Context, text string) (domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, err
	}
	tokens := tokenize(norm.NFC.String(text))

	tags := make([]domain.TaggedToken, len(tokens))
	for i, tok := range tokens {
		tags[i] = domain.TaggedToken{Text: tok, Tag: a.tag(tok)}
	}
	return domain.Analysis{
		Tokens:   tokens,
		POSTags:  tags,
		Entities: a.entities(tags),
	}, nil
}

func (a *Analyzer) tag(tok string) string {
	first := []rune(tok)[0]
	switch {
	case isNumber(tok):
		return tagNum
	case !unicode.IsLetter(first) && !unicode.IsDigit(first) && first != '\'':
		return tagPunct
	}
	folded := a.fold.String(tok)
	if tag, ok := lexicon[folded]; ok {
		return tag
	}
	if unicode.IsUpper(first) {
		return tagPropn
	}
	switch {
	case strings.HasSuffix(folded, "ly"):
		return tagAdv
	case strings.HasSuffix(folded, "ing"), strings.HasSuffix(folded, "ed"):
		return tagVerb
	case strings.HasSuffix(folded, "ous"), strings.HasSuffix(folded, "ful"),
		strings.HasSuffix(folded, "able"), strings.HasSuffix(folded, "ive"):
		return tagAdj
	default:
		return tagNoun
	}
}

// entities groups consecutive proper nouns, and a month followed by a number,
// into labelled spans. Standalone numbers are cardinals.
func (a *Analyzer) entities(tags []domain.TaggedToken) []domain.Entity {
	var out []domain.Entity
	for i := 0; i < len(tags); {
		tok := tags[i]
		folded := a.fold.String(tok.Text)
		switch {
		case tok.Tag == tagPropn && months[folded]:
			end := i + 1
			if end < len(tags) && tags[end].Tag == tagNum {
				end++
			}
			out = append(out, domain.Entity{Text: joinTokens(tags[i:end]), Label: "DATE"})
			i = end
		case tok.Tag == tagPropn:
			end := i
			for end < len(tags) && tags[end].Tag == tagPropn && !months[a.fold.String(tags[end].Text)] {
				end++
			}
			out = append(out, domain.Entity{Text: joinTokens(tags[i:end]), Label: a.label(tags[i:end])})
			i = end
		case tok.Tag == tagNum:
			out = append(out, domain.Entity{Text: tok.Text, Label: "CARDINAL"})
			i++
		default:
			i++
		}
	}
	return out
}

func (a *Analyzer) label(span []domain.TaggedToken) string {
	last := a.fold.String(span[len(span)-1].Text)
	switch {
	case orgSuffixes[last]:
		return "ORG"
	case len(span) == 1 && places[last]:
		return "GPE"
	default:
		return "PERSON"
	}
}

// tokenize splits on whitespace and peels punctuation into its own tokens.
// Apostrophes and hyphens inside a word stay attached.
func tokenize(text string) []string {
	var tokens []string
	var word []rune
	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, string(word))
			word = word[:0]
		}
	}

	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word = append(word, r)
		case (r == '\'' || r == '-' || r == '.') && len(word) > 0 && i+1 < len(runes) &&
			(unicode.IsLetter(runes[i+1]) || unicode.IsDigit(runes[i+1])):
			word = append(word, r)
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}

func isNumber(tok string) bool {
	digits := 0
	for _, r := range tok {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}

func joinTokens(span []domain.TaggedToken) string {
	parts := make([]string, len(span))
	for i, tok := range span {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

var _ ports.TextAnalyzer = (*Analyzer)(nil)
