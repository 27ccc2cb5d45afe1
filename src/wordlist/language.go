package wordlist

import "strings"

// Language selects which word table a phrase is built from.
type Language int

// Supported languages, in the order they are listed by Languages.
const (
	ChineseSimplified Language = iota
	Dutch
	English
	EnglishOld
	Esperanto
	French
	German
	Italian
	Japanese
	Lojban
	Portuguese
	Russian
	Spanish
)

type languageInfo struct {
	code            string
	englishName     string
	uniquePrefixLen int
}

var languages = [...]languageInfo{
	ChineseSimplified: {"chinese_simplified", "Chinese (simplified)", 1},
	Dutch:             {"dutch", "Dutch", 4},
	English:           {"english", "English", 3},
	EnglishOld:        {"english_old", "English (old)", 4},
	Esperanto:         {"esperanto", "Esperanto", 4},
	French:            {"french", "French", 4},
	German:            {"german", "German", 4},
	Italian:           {"italian", "Italian", 4},
	Japanese:          {"japanese", "Japanese", 3},
	Lojban:            {"lojban", "Lojban", 4},
	Portuguese:        {"portuguese", "Portuguese", 4},
	Russian:           {"russian", "Russian", 4},
	Spanish:           {"spanish", "Spanish", 4},
}

// Languages returns every supported language.
func Languages() []Language {
	all := make([]Language, len(languages))
	for i := range languages {
		all[i] = Language(i)
	}
	return all
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l >= 0 && int(l) < len(languages)
}

// String returns the short code of the language, which is also the
// basename of its word table file.
func (l Language) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return languages[l].code
}

// EnglishName returns the name of the language in English.
func (l Language) EnglishName() string {
	if !l.Valid() {
		return "Unknown"
	}
	return languages[l].englishName
}

// UniquePrefixLen returns the number of characters that identify a word
// of this language's table. Only the checksum uses it.
func (l Language) UniquePrefixLen() int {
	if !l.Valid() {
		return 0
	}
	return languages[l].uniquePrefixLen
}

// ParseLanguage looks a language up by code or English name, ignoring case.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for i, info := range languages {
		if strings.EqualFold(s, info.code) || strings.EqualFold(s, info.englishName) {
			return Language(i), nil
		}
	}
	return -1, &UnknownLanguageError{Name: s}
}
