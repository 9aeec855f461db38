package request

import (
	"strings"
	"unicode/utf8"
)

const MaxNotesLength = 500

type Notes struct {
	text string
}

func NewNotes(s string) (Notes, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{text: t}, nil
}

func (n Notes) String() string { return n.text }
func (n Notes) IsEmpty() bool  { return n.text == "" }
