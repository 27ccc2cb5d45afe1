package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"

	log "github.com/schollz/logger"
	"golang.org/x/text/unicode/norm"
)

// Registry is a Provider backed by tables registered at runtime.
type Registry struct {
	mu     sync.RWMutex
	tables map[Language]*Wordlist
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[Language]*Wordlist)}
}

// Register adds w, replacing any table already held for its language.
func (r *Registry) Register(w *Wordlist) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.tables[w.lang]; ok {
		log.Debugf("replacing %s wordlist %s with %s", w.lang, old.Fingerprint(), w.Fingerprint())
	}
	r.tables[w.lang] = w
}

// Wordlist implements Provider.
func (r *Registry) Wordlist(lang Language) (*Wordlist, error) {
	if !lang.Valid() {
		return nil, &UnknownLanguageError{Name: fmt.Sprintf("Language(%d)", int(lang))}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.tables[lang]
	if !ok {
		return nil, fmt.Errorf("%s: %w", lang, ErrMissingWordlist)
	}
	return w, nil
}

// Languages returns the languages that have a table, in declaration order.
func (r *Registry) Languages() []Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]Language, 0, len(r.tables))
	for lang := range r.tables {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Load reads a table for lang with one word per line. Blank lines and
// lines starting with '#' are skipped.
//
// Words are stored in Unicode NFC form, so a file written with decomposed
// characters yields different word bytes, and a different checksum word,
// than the file as supplied. Tables meant to match another implementation
// should already be NFC.
func Load(lang Language, r io.Reader) (*Wordlist, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, norm.NFC.String(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s wordlist: %w", lang, err)
	}
	return New(lang, words)
}

// FileName returns the name LoadFS expects the table of lang to have.
func FileName(lang Language) string {
	return lang.String() + ".txt"
}

// LoadFS registers every "<code>.txt" table found at the root of fsys.
// Files for unknown languages are ignored. It fails if no table is found
// or if any table is malformed.
func LoadFS(fsys fs.FS) (*Registry, error) {
	r := NewRegistry()
	for _, lang := range Languages() {
		name := FileName(lang)
		f, err := fsys.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			log.Tracef("no %s", name)
			continue
		} else if err != nil {
			return nil, err
		}
		w, err := Load(lang, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		log.Debugf("loaded %s: %d words (%s)", name, w.Len(), w.Fingerprint())
		r.Register(w)
	}
	if len(r.tables) == 0 {
		return nil, ErrNoWordlists
	}
	return r, nil
}
