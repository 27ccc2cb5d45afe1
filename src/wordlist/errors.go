package wordlist

import (
	"errors"
	"fmt"
)

var ErrUnknownLanguage = errors.New("unknown language")
var ErrEmptyWordlist = errors.New("wordlist is empty")
var ErrEmptyWord = errors.New("wordlist contains an empty word")
var ErrMissingWordlist = errors.New("no wordlist loaded")
var ErrNoWordlists = errors.New("no wordlist files found")

// UnknownLanguageError is returned when a name or tag does not match any
// supported language.
type UnknownLanguageError struct {
	Name string
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q", e.Name)
}

func (e *UnknownLanguageError) Unwrap() error { return ErrUnknownLanguage }

// DuplicateWordError reports a word that appears twice in one table.
type DuplicateWordError struct {
	Language Language
	Word     string
	First    int
	Second   int
}

func (e *DuplicateWordError) Error() string {
	return fmt.Sprintf("%s wordlist: word %q at index %d duplicates index %d", e.Language, e.Word, e.Second, e.First)
}
