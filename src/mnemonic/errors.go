package mnemonic

import (
	"errors"
	"fmt"

	"github.com/schollz/seedwords/src/wordlist"
)

var ErrInvalidLength = errors.New("invalid seed length")
var ErrNoWordlist = errors.New("no wordlist given")

// InvalidLengthError is returned for seeds that are empty or whose
// length is not a multiple of four bytes.
type InvalidLengthError struct {
	Length   int
	Language wordlist.Language
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid seed length %d for %s phrase: must be a positive multiple of 4 bytes", e.Length, e.Language.EnglishName())
}

func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }
