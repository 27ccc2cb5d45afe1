package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"unicode"

	"golang.org/x/term"

	"github.com/schollz/seedwords/src/models"
)

// Get or create home directory
func GetConfigDir() (homedir string, err error) {
	homedir, err = os.UserHomeDir()
	if err != nil {
		return
	}

	if envHomedir, isSet := os.LookupEnv(models.ENV_CONFIG_DIR); isSet {
		homedir = envHomedir
	} else if xdgConfigHome, isSet := os.LookupEnv("XDG_CONFIG_HOME"); isSet {
		homedir = path.Join(xdgConfigHome, "seedwords")
	} else {
		homedir = path.Join(homedir, ".config", "seedwords")
	}

	if _, err = os.Stat(homedir); os.IsNotExist(err) {
		err = os.MkdirAll(homedir, 0o700)
	}
	return
}

// GetWordlistsDir returns the directory wordlist files are read from.
func GetWordlistsDir() (dir string, err error) {
	if envDir, isSet := os.LookupEnv(models.ENV_WORDLISTS); isSet && envDir != "" {
		return envDir, nil
	}
	dir, err = GetConfigDir()
	if err != nil {
		return
	}
	dir = path.Join(dir, models.WORDLISTS_DIR)
	return
}

// Exists reports whether the named file or directory exists.
func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// GetSecret reads a line from stdin without echoing it when stdin is a
// terminal. Piped input is read to the end.
func GetSecret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	fmt.Fprintf(os.Stderr, "%s", prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// ParseHexSeed decodes a hex seed. An optional 0x prefix and whitespace
// anywhere in s are ignored.
func ParseHexSeed(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, errors.New("empty seed")
	}
	seed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex seed: %w", err)
	}
	return seed, nil
}

// RandomSeed returns size random bytes.
func RandomSeed(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid seed size %d", size)
	}
	seed := make([]byte, size)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return seed, nil
}
