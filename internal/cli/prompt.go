package cli

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/patrickmn/go-cache"

	"github.com/mrlokans/birdr/internal/services"
)

// completionTTL bounds how long a prefix's candidates are reused. Repeated
// tab presses on the same prefix hit the cache instead of the database.
const completionTTL = 30 * time.Second

// CompleteFunc returns the full candidates for the text typed so far.
type CompleteFunc func(prefix string) []string

// Prompter reads one line of user input at a time.
type Prompter interface {
	// Prompt shows prompt and returns the trimmed line. complete may be nil.
	// Returns io.EOF when input ends.
	Prompt(prompt string, complete CompleteFunc) (string, error)
	Close() error
}

// readlinePrompter is the terminal Prompter. The whole line is the token
// being completed, so species names with spaces complete naturally.
type readlinePrompter struct {
	rl       *readline.Instance
	complete CompleteFunc
}

// NewTerminalPrompter creates a Prompter with line editing and tab completion.
func NewTerminalPrompter() (Prompter, error) {
	p := &readlinePrompter{}
	rl, err := readline.NewEx(&readline.Config{
		AutoComplete:      &lineCompleter{prompter: p},
		InterruptPrompt:   "^C",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	p.rl = rl
	return p, nil
}

func (p *readlinePrompter) Prompt(prompt string, complete CompleteFunc) (string, error) {
	p.complete = complete
	defer func() { p.complete = nil }()

	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

// lineCompleter adapts the prompter's current CompleteFunc to readline.
type lineCompleter struct {
	prompter *readlinePrompter
}

func (c *lineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if c.prompter.complete == nil {
		return nil, 0
	}
	prefix := string(line[:pos])
	var suffixes [][]rune
	for _, candidate := range c.prompter.complete(prefix) {
		suffixes = append(suffixes, []rune(strings.TrimPrefix(candidate, prefix)))
	}
	return suffixes, pos
}

// SpeciesCompleter offers catalog species names as completions, caching the
// candidates for each prefix.
type SpeciesCompleter struct {
	lookup services.SpeciesLookup
	cache  *cache.Cache
}

// NewSpeciesCompleter completes against lookup.
func NewSpeciesCompleter(lookup services.SpeciesLookup) *SpeciesCompleter {
	return &SpeciesCompleter{
		lookup: lookup,
		// A zero cleanup interval means no janitor goroutine; expired
		// entries are dropped on access.
		cache: cache.New(completionTTL, 0),
	}
}

// Complete returns the names of species starting with prefix. Lookup errors
// yield no candidates.
func (c *SpeciesCompleter) Complete(prefix string) []string {
	if cached, ok := c.cache.Get(prefix); ok {
		return cached.([]string)
	}
	matches, err := c.lookup.LookupMatchingSpecies(prefix)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, sp := range matches {
		names = append(names, sp.Name)
	}
	c.cache.Set(prefix, names, cache.DefaultExpiration)
	return names
}

// promptNonEmpty re-prompts until a non-blank line or end of input.
func promptNonEmpty(p Prompter, prompt string, complete CompleteFunc) (string, error) {
	for {
		line, err := p.Prompt(prompt, complete)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}
