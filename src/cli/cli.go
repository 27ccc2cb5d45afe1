package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/schollz/cli/v2"
	log "github.com/schollz/logger"
	"github.com/skip2/go-qrcode"

	"github.com/schollz/seedwords/src/mnemonic"
	"github.com/schollz/seedwords/src/models"
	"github.com/schollz/seedwords/src/utils"
	"github.com/schollz/seedwords/src/wordlist"
)

// Version specifies the version
var Version string

// Run will run the command line program
func Run() (err error) {
	return newApp().Run(os.Args)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "seedwords"
	if Version == "" {
		Version = "v1.0.0-dev"
	}
	app.Version = Version
	app.Compiled = time.Now()
	app.Usage = "write a binary seed down as words"
	app.UsageText = `Encode a hex seed:
      seedwords encode 0123456789abcdef...

   Generate a new 32 byte seed and its phrase:
      seedwords generate

   Word tables are read from <name>.txt files in --wordlists, one word
   per line. Words are normalized to Unicode NFC when loaded.`
	app.Commands = []*cli.Command{
		{
			Name:        "encode",
			Usage:       "encode a hex seed as a phrase",
			Description: "encode a seed, given as hex argument or on stdin, as a mnemonic phrase",
			ArgsUsage:   "[hex]",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "qrcode", Usage: "also show the phrase as a qr code"},
			},
			HelpName: "seedwords encode",
			Action:   encode,
		},
		{
			Name:        "generate",
			Usage:       "generate a random seed and its phrase",
			Description: "generate a random seed from the system random source and encode it",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "bytes", Value: models.DEFAULT_SEED_SIZE, Usage: "seed size, a multiple of 4"},
				&cli.BoolFlag{Name: "qrcode", Usage: "also show the phrase as a qr code"},
			},
			HelpName: "seedwords generate",
			Action:   generate,
		},
		{
			Name:     "languages",
			Usage:    "list supported languages",
			HelpName: "seedwords languages",
			Action:   languages,
		},
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Usage: "toggle debug mode"},
		&cli.StringFlag{Name: "lang", Value: models.DEFAULT_LANGUAGE, Usage: "language of the phrase", EnvVars: []string{models.ENV_LANGUAGE}},
		&cli.StringFlag{Name: "wordlists", Usage: "directory with the word tables (default: config dir)", EnvVars: []string{models.ENV_WORDLISTS}},
	}
	app.EnableBashCompletion = true
	app.HideHelp = false
	app.HideVersion = false
	app.Before = func(c *cli.Context) error {
		if c.Bool("debug") {
			log.SetLevel("debug")
		} else {
			log.SetLevel(models.DEFAULT_LOG_LEVEL)
		}
		return nil
	}
	return app
}

func loadWordlists(c *cli.Context) (*wordlist.Registry, error) {
	dir := c.String("wordlists")
	if dir == "" {
		var err error
		dir, err = utils.GetWordlistsDir()
		if err != nil {
			return nil, err
		}
	}
	log.Debugf("loading wordlists from %s", dir)
	if !utils.Exists(dir) {
		return nil, fmt.Errorf("wordlist directory %s does not exist", dir)
	}
	r, err := wordlist.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("could not load wordlists from %s: %w", dir, err)
	}
	return r, nil
}

func getLanguage(c *cli.Context) (wordlist.Language, error) {
	return wordlist.ParseLanguage(c.String("lang"))
}

func encode(c *cli.Context) (err error) {
	lang, err := getLanguage(c)
	if err != nil {
		return
	}
	hexSeed := c.Args().First()
	if hexSeed == "" {
		hexSeed, err = utils.GetSecret("Enter seed (hex): ")
		if err != nil {
			return
		}
	}
	seed, err := utils.ParseHexSeed(hexSeed)
	if err != nil {
		return
	}
	phrase, err := encodePhrase(c, seed, lang)
	if err != nil {
		return
	}
	return printPhrase(c, phrase)
}

func generate(c *cli.Context) (err error) {
	lang, err := getLanguage(c)
	if err != nil {
		return
	}
	size := c.Int("bytes")
	if mnemonic.WordsRequired(size) == 0 {
		return &mnemonic.InvalidLengthError{Length: size, Language: lang}
	}
	seed, err := utils.RandomSeed(size)
	if err != nil {
		return
	}
	phrase, err := encodePhrase(c, seed, lang)
	if err != nil {
		return
	}
	fmt.Fprintf(c.App.Writer, "seed: %s\n", hex.EncodeToString(seed))
	return printPhrase(c, phrase)
}

func encodePhrase(c *cli.Context, seed []byte, lang wordlist.Language) (phrase string, err error) {
	r, err := loadWordlists(c)
	if err != nil {
		return
	}
	return mnemonic.NewEncoder(r).Encode(seed, lang)
}

func printPhrase(c *cli.Context, phrase string) error {
	fmt.Fprintln(c.App.Writer, phrase)
	if !c.Bool("qrcode") {
		return nil
	}
	q, err := qrcode.New(phrase, qrcode.Medium)
	if err != nil {
		return err
	}
	fmt.Fprint(c.App.Writer, q.ToSmallString(false))
	return nil
}

func languages(c *cli.Context) error {
	loaded := make(map[wordlist.Language]bool)
	r, err := loadWordlists(c)
	if err != nil && !errors.Is(err, wordlist.ErrNoWordlists) {
		log.Warnf("%v", err)
	}
	if r != nil {
		for _, lang := range r.Languages() {
			loaded[lang] = true
		}
	}
	for _, lang := range wordlist.Languages() {
		status := "missing"
		if loaded[lang] {
			status = "loaded"
		}
		fmt.Fprintf(c.App.Writer, "%-20s %-22s prefix %d  %s\n", lang, lang.EnglishName(), lang.UniquePrefixLen(), status)
	}
	return nil
}
