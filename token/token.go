package token

// Tag is the abstract tag identifier used to tag matches and tokens by type.
type Tag int

// A few standard tags for matches.
const (
	// None is the tag to use for matches that aren't actual matches, such as
	// an absent optional value.
	None Tag = iota

	// Literal is the most generic tag.
	Literal

	// Last identifies the first non-built-in tag. No guarantee is made that
	// this will never change.
	Last
)

var prevTag = Last

// NextTag provides an interface for assigning tags serial numbers at runtime to
// avoid conflicts between tags when parsers from different modules are mixed
// and matched. This returns the next available tag and should be called during
// init.
func NextTag() Tag {
	prevTag++
	return prevTag
}

// Token is a lexed unit of input. It is comparable, so a []Token can be parsed
// with the same matchers used for bytes and runes.
type Token struct {
	Tag  Tag
	Text string
}

// New is a short hand for building a Token.
func New(t Tag, text string) Token {
	return Token{Tag: t, Text: text}
}
