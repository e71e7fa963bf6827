package domain

// TaggedToken pairs a token with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Entity is a named span detected in analyzed text.
type Entity struct {
	Text  string
	Label string
}

// Analysis is what the text analyzer reports for one line.
type Analysis struct {
	Tokens   []string
	POSTags  []TaggedToken
	Entities []Entity
}
