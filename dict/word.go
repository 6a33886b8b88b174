package dict

// Word is a single validated dictionary word. Words are immutable and
// comparable; two Words are equal when their text is equal.
type Word struct {
	text    string
	uniques LetterSet
}

// NewWord wraps a lowercase token as a Word. It does not check the token
// against a Box; that is the Catalog's job during loading.
func NewWord(text string) Word {
	return Word{
		text:    text,
		uniques: NewLetterSet(text),
	}
}

// First returns the word's first letter.
func (w Word) First() byte {
	return w.text[0]
}

// Last returns the word's last letter.
func (w Word) Last() byte {
	return w.text[len(w.text)-1]
}

// Uniques returns the set of distinct letters in the word.
func (w Word) Uniques() LetterSet {
	return w.uniques
}

// UniqueCount returns the number of distinct letters in the word.
func (w Word) UniqueCount() int {
	return w.uniques.Count()
}

// Len returns the word's length in letters.
func (w Word) Len() int {
	return len(w.text)
}

func (w Word) String() string {
	return w.text
}
