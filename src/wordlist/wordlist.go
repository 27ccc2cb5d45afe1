// Package wordlist holds the per-language word tables used to spell seeds.
//
// The tables themselves are data: they are registered at startup, either
// from memory with New or from files with Load and LoadFS, and are never
// modified afterwards.
package wordlist

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Wordlist is an ordered table of distinct words for one language.
// A Wordlist is immutable and safe to share between goroutines.
type Wordlist struct {
	lang  Language
	words []string
	index map[string]int
}

// Provider returns the table for a language.
type Provider interface {
	Wordlist(lang Language) (*Wordlist, error)
}

// New validates words and returns them as the table for lang. The slice
// is copied.
func New(lang Language, words []string) (*Wordlist, error) {
	if !lang.Valid() {
		return nil, &UnknownLanguageError{Name: fmt.Sprintf("Language(%d)", int(lang))}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", lang, ErrEmptyWordlist)
	}
	w := &Wordlist{
		lang:  lang,
		words: make([]string, len(words)),
		index: make(map[string]int, len(words)),
	}
	for i, word := range words {
		if word == "" {
			return nil, fmt.Errorf("%s: index %d: %w", lang, i, ErrEmptyWord)
		}
		if first, ok := w.index[word]; ok {
			return nil, &DuplicateWordError{Language: lang, Word: word, First: first, Second: i}
		}
		w.index[word] = i
		w.words[i] = word
	}
	return w, nil
}

// MustNew is like New but panics on invalid input. It is meant for
// tables compiled into a program.
func MustNew(lang Language, words []string) *Wordlist {
	w, err := New(lang, words)
	if err != nil {
		panic(err)
	}
	return w
}

// Language returns the language the table belongs to.
func (w *Wordlist) Language() Language { return w.lang }

// Len returns the number of words. Tables built with New hold at least one.
func (w *Wordlist) Len() int { return len(w.words) }

// Word returns the word at index i.
func (w *Wordlist) Word(i int) string { return w.words[i] }

// Words returns a copy of the table.
func (w *Wordlist) Words() []string {
	words := make([]string, len(w.words))
	copy(words, w.words)
	return words
}

// Index returns the position of word in the table, or -1.
func (w *Wordlist) Index(word string) int {
	if i, ok := w.index[word]; ok {
		return i
	}
	return -1
}

// UniquePrefixLen returns the unique prefix length of the table's language.
func (w *Wordlist) UniquePrefixLen() int { return w.lang.UniquePrefixLen() }

// Fingerprint identifies the exact contents of the table, so two loaded
// copies can be compared without diffing them.
func (w *Wordlist) Fingerprint() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(w.words, "\n")))
}
