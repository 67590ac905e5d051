// Package stats counts lines, words, graphemes and bytes in buffer text.
package stats

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Stats summarises a piece of text.
type Stats struct {
	Lines     int
	Words     int
	Graphemes int
	Bytes     int
}

// Compute returns the stats for text. Words follow Unicode word boundaries
// and only segments holding a letter or digit count.
func Compute(text string) Stats {
	s := Stats{
		Bytes:     len(text),
		Graphemes: uniseg.GraphemeClusterCount(text),
	}
	if text != "" {
		s.Lines = strings.Count(text, "\n") + 1
	}

	state := -1
	rest := text
	var word string
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.IndexFunc(word, isWordRune) >= 0 {
			s.Words++
		}
	}
	return s
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (s Stats) String() string {
	return fmt.Sprintf("Lines: %d, Words: %d, Graphemes: %d, Bytes: %d", s.Lines, s.Words, s.Graphemes, s.Bytes)
}
