// Package mnemonic spells binary seeds as phrases of words.
//
// Every four bytes of seed become three words taken from a language's
// word table, and one more word, chosen from the ones already emitted by
// a CRC32 over their unique prefixes, is appended as a checksum:
//
//	4 bytes  -> 3 words + 1 checksum word
//	32 bytes -> 24 words + 1 checksum word
package mnemonic

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
	"unicode/utf8"

	log "github.com/schollz/logger"

	"github.com/schollz/seedwords/src/wordlist"
)

// SeedWordCount is the number of words that spell a full 32 byte seed.
// It is the fixed modulus of the checksum, whatever the seed length.
const SeedWordCount = 24

// WordsRequired returns the number of words in the phrase of a seed that
// is length bytes long, checksum word included, or 0 if length is not a
// valid seed length.
func WordsRequired(length int) int {
	if length <= 0 || length%4 != 0 {
		return 0
	}
	return 3*(length/4) + 1
}

// Encoder spells seeds with the tables of a wordlist.Provider.
type Encoder struct {
	provider wordlist.Provider
}

// NewEncoder returns an Encoder that looks its tables up in p.
func NewEncoder(p wordlist.Provider) *Encoder {
	return &Encoder{provider: p}
}

// Encode spells seed in lang.
func (e *Encoder) Encode(seed []byte, lang wordlist.Language) (string, error) {
	if err := checkLength(seed, lang); err != nil {
		return "", err
	}
	if e.provider == nil {
		return "", ErrNoWordlist
	}
	wl, err := e.provider.Wordlist(lang)
	if err != nil {
		return "", fmt.Errorf("could not get %s wordlist: %w", lang.EnglishName(), err)
	}
	return Encode(seed, wl)
}

// Encode returns the phrase for seed, its words separated by single
// spaces.
func Encode(seed []byte, wl *wordlist.Wordlist) (string, error) {
	words, err := EncodeWords(seed, wl)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// EncodeWords returns the words of the phrase for seed, checksum word
// last. The length of seed must be a positive multiple of four.
func EncodeWords(seed []byte, wl *wordlist.Wordlist) ([]string, error) {
	if wl == nil {
		return nil, ErrNoWordlist
	}
	if err := checkLength(seed, wl.Language()); err != nil {
		return nil, err
	}
	if wl.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", wl.Language(), wordlist.ErrEmptyWordlist)
	}

	n := uint32(wl.Len())
	result := make([]string, 0, WordsRequired(len(seed)))
	for src := seed; len(src) >= 4; src = src[4:] {
		x := binary.LittleEndian.Uint32(src)

		w1 := x % n
		w2 := (x/n + w1) % n
		w3 := (x/n/n + w2) % n
		result = append(result, wl.Word(int(w1)), wl.Word(int(w2)), wl.Word(int(w3)))
	}

	// seeds shorter than SeedWordCount words leave the index past the end
	i := ChecksumIndex(result, wl.UniquePrefixLen()) % len(result)
	result = append(result, result[i])

	log.Debugf("encoded %d byte seed as %d %s words (wordlist %s)", len(seed), len(result), wl.Language(), wl.Fingerprint())
	return result, nil
}

// ChecksumIndex returns which of words is repeated as the checksum word.
// Each word is cut to its first uniquePrefixLen characters, the prefixes
// are concatenated and the CRC32 (IEEE) of their UTF-8 bytes is reduced
// modulo SeedWordCount. A uniquePrefixLen of zero or less keeps words
// whole.
func ChecksumIndex(words []string, uniquePrefixLen int) int {
	var trimmed strings.Builder
	for _, word := range words {
		trimmed.WriteString(prefix(word, uniquePrefixLen))
	}
	return int(crc32.ChecksumIEEE([]byte(trimmed.String())) % SeedWordCount)
}

// prefix returns the first count characters of s, never splitting a
// multi-byte character.
func prefix(s string, count int) string {
	if count <= 0 || utf8.RuneCountInString(s) <= count {
		return s
	}
	for i := range s {
		if count == 0 {
			return s[:i]
		}
		count--
	}
	return s
}

func checkLength(seed []byte, lang wordlist.Language) error {
	if len(seed) == 0 || len(seed)%4 != 0 {
		return &InvalidLengthError{Length: len(seed), Language: lang}
	}
	return nil
}
