package twotouch

// Converter converts between text and two-touch codes.
// *Codec and *Cached implement it.
type Converter interface {
	// Encode returns every candidate code for text: phrase shortcuts first,
	// then the literal character-by-character encoding.
	Encode(text string) ([]string, error)

	// Decode turns a string of 2-digit codes back into text.
	Decode(code string) (string, error)
}

// Options tune a Codec. The zero value is ready to use.
type Options struct {
	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

// Entry is one row of the code table.
type Entry struct {
	Char rune
	Code string
}

// Phrase is one row of the phrase table.
type Phrase struct {
	Text  string
	Codes []string
}
