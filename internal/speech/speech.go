// Package speech provides fire-and-forget text-to-speech through an
// external synthesizer command. Pronunciation is a courtesy feature:
// a missing or failing synthesizer never surfaces as an error.
package speech

import (
	"os/exec"
	"sync"

	"go.uber.org/zap"
)

// Speaker speaks a phrase aloud in the given BCP 47 language tag.
type Speaker interface {
	Speak(text, lang string)
}

// Noop is a Speaker that does nothing.
type Noop struct{}

func (Noop) Speak(text, lang string) {}

// Command runs an external synthesizer binary per utterance. The zero
// value is unusable; construct with NewCommand.
type Command struct {
	log *zap.Logger

	once sync.Once
	path string
	args func(text, lang string) []string
}

// candidates are probed in order at first use.
var candidates = []struct {
	name string
	args func(text, lang string) []string
}{
	{"say", func(text, lang string) []string { return []string{text} }},
	{"espeak-ng", func(text, lang string) []string { return []string{"-v", lang, text} }},
	{"espeak", func(text, lang string) []string { return []string{"-v", lang, text} }},
}

// NewCommand returns a Speaker backed by the first synthesizer found on
// PATH. override pins a specific binary instead of probing; pass ""
// to probe.
func NewCommand(override string, log *zap.Logger) *Command {
	c := &Command{log: log}
	if override != "" {
		c.once.Do(func() {})
		if path, err := exec.LookPath(override); err == nil {
			c.path = path
			c.args = func(text, lang string) []string { return []string{text} }
		}
	}
	return c
}

func (c *Command) resolve() {
	c.once.Do(func() {
		for _, cand := range candidates {
			path, err := exec.LookPath(cand.name)
			if err != nil {
				continue
			}
			c.path = path
			c.args = cand.args
			return
		}
	})
}

// Speak launches the synthesizer in the background and returns
// immediately. Absence of a synthesizer and per-utterance failures are
// logged at debug level and otherwise ignored.
func (c *Command) Speak(text, lang string) {
	c.resolve()
	if c.path == "" || text == "" {
		return
	}
	cmd := exec.Command(c.path, c.args(text, lang)...)
	go func() {
		if err := cmd.Run(); err != nil && c.log != nil {
			c.log.Debug("speech synthesis failed", zap.String("binary", c.path), zap.Error(err))
		}
	}()
}
