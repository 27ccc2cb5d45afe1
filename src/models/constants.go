package models

// DEFAULT_LANGUAGE is the language used when --lang is not given
var (
	DEFAULT_LANGUAGE  = "english"
	DEFAULT_SEED_SIZE = 32
	DEFAULT_LOG_LEVEL = "warn"
)

// Environment variables that override defaults
const (
	ENV_LANGUAGE   = "SEEDWORDS_LANG"
	ENV_WORDLISTS  = "SEEDWORDS_WORDLISTS"
	ENV_CONFIG_DIR = "SEEDWORDS_CONFIG_DIR"
)

// WORDLISTS_DIR is the name of the wordlist directory inside the config directory
const WORDLISTS_DIR = "wordlists"
