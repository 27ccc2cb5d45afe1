package wordlist

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageMetadata(t *testing.T) {
	assert.Len(t, Languages(), 13)
	assert.Equal(t, "chinese_simplified", ChineseSimplified.String())
	assert.Equal(t, "Chinese (simplified)", ChineseSimplified.EnglishName())
	assert.Equal(t, "English (old)", EnglishOld.EnglishName())
	assert.Equal(t, 1, ChineseSimplified.UniquePrefixLen())
	assert.Equal(t, 3, English.UniquePrefixLen())
	assert.Equal(t, 3, Japanese.UniquePrefixLen())
	for _, lang := range []Language{Dutch, EnglishOld, Esperanto, French, German, Italian, Lojban, Portuguese, Russian, Spanish} {
		assert.Equal(t, 4, lang.UniquePrefixLen(), lang.String())
	}

	bad := Language(99)
	assert.False(t, bad.Valid())
	assert.Equal(t, "unknown", bad.String())
	assert.Equal(t, 0, bad.UniquePrefixLen())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"english", English},
		{"ENGLISH", English},
		{"English (old)", EnglishOld},
		{"english_old", EnglishOld},
		{" japanese ", Japanese},
		{"Chinese (simplified)", ChineseSimplified},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLanguage("klingon")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	var unknown *UnknownLanguageError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "klingon", unknown.Name)
}

func TestNew(t *testing.T) {
	words := []string{"abbey", "absorb", "acid"}
	w, err := New(English, words)
	require.NoError(t, err)
	assert.Equal(t, English, w.Language())
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, "absorb", w.Word(1))
	assert.Equal(t, 2, w.Index("acid"))
	assert.Equal(t, -1, w.Index("zoo"))
	assert.Equal(t, 3, w.UniquePrefixLen())

	// the table is copied in and out
	words[0] = "changed"
	assert.Equal(t, "abbey", w.Word(0))
	out := w.Words()
	out[0] = "changed"
	assert.Equal(t, "abbey", w.Word(0))
}

func TestNewRejectsMalformedTables(t *testing.T) {
	_, err := New(English, nil)
	assert.ErrorIs(t, err, ErrEmptyWordlist)

	_, err = New(English, []string{"one", "", "three"})
	assert.ErrorIs(t, err, ErrEmptyWord)

	_, err = New(French, []string{"un", "deux", "un"})
	var dup *DuplicateWordError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, French, dup.Language)
	assert.Equal(t, "un", dup.Word)
	assert.Equal(t, 0, dup.First)
	assert.Equal(t, 2, dup.Second)

	_, err = New(Language(-1), []string{"a"})
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	assert.Panics(t, func() { MustNew(English, nil) })
}

func TestFingerprint(t *testing.T) {
	a := MustNew(English, []string{"one", "two"})
	b := MustNew(Dutch, []string{"one", "two"})
	c := MustNew(English, []string{"two", "one"})
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := r.Wordlist(English)
	assert.ErrorIs(t, err, ErrMissingWordlist)

	_, err = r.Wordlist(Language(42))
	assert.ErrorIs(t, err, ErrUnknownLanguage)

	r.Register(MustNew(Spanish, []string{"uno"}))
	r.Register(MustNew(English, []string{"one"}))
	r.Register(MustNew(English, []string{"one", "two"}))
	w, err := r.Wordlist(English)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, []Language{English, Spanish}, r.Languages())
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i, lang := range Languages() {
		i, lang := i, lang
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(MustNew(lang, []string{lang.String()}))
		}()
		go func() {
			defer wg.Done()
			r.Wordlist(Languages()[i])
			r.Languages()
		}()
	}
	wg.Wait()
	assert.Equal(t, Languages(), r.Languages())
}

func TestLoad(t *testing.T) {
	src := "# comment\n\nabbey\n  absorb \r\nacid\n"
	w, err := Load(English, strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"abbey", "absorb", "acid"}, w.Words())

	// decomposed "é" is stored composed
	w, err = Load(French, strings.NewReader("e\u0301cole\n"))
	require.NoError(t, err)
	assert.Equal(t, "\u00e9cole", w.Word(0))

	_, err = Load(English, strings.NewReader("# only a comment\n"))
	assert.ErrorIs(t, err, ErrEmptyWordlist)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"english.txt": {Data: []byte("abbey\nabsorb\nacid\n")},
		"german.txt":  {Data: []byte("Abend\nAbfahrt\n")},
		"README.md":   {Data: []byte("not a table")},
		"klingon.txt": {Data: []byte("Qapla'\n")},
	}
	r, err := LoadFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, []Language{English, German}, r.Languages())

	w, err := r.Wordlist(German)
	require.NoError(t, err)
	assert.Equal(t, "Abfahrt", w.Word(1))

	_, err = LoadFS(fstest.MapFS{"notes.txt": {Data: []byte("x")}})
	assert.ErrorIs(t, err, ErrNoWordlists)

	_, err = LoadFS(fstest.MapFS{"dutch.txt": {Data: []byte("aap\naap\n")}})
	var dup *DuplicateWordError
	assert.True(t, errors.As(err, &dup))
	assert.Contains(t, err.Error(), "dutch.txt")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "english_old.txt", FileName(EnglishOld))
}
