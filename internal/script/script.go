// Package script reads and writes YAML move scripts used to replay a game.
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/slides/internal/core"
)

// Script is a recorded session: which game, which seed, and the actions applied.
type Script struct {
	Game    string
	Seed    int64
	Actions []core.Action
}

// yamlScript represents the YAML structure for a script file.
type yamlScript struct {
	Game    string   `yaml:"game"`
	Seed    int64    `yaml:"seed"`
	Actions []string `yaml:"actions"`
}

// Parse parses a YAML script.
func Parse(data []byte) (Script, error) {
	var ys yamlScript
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if ys.Game == "" {
		return Script{}, errors.New("script: missing game")
	}

	s := Script{
		Game:    ys.Game,
		Seed:    ys.Seed,
		Actions: make([]core.Action, 0, len(ys.Actions)),
	}
	for i, name := range ys.Actions {
		a, ok := core.ParseAction(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return Script{}, fmt.Errorf("script: action %d: unknown action %q", i, name)
		}
		s.Actions = append(s.Actions, a)
	}

	return s, nil
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return s, nil
}

// Encode serializes a script back to YAML.
func Encode(s Script) ([]byte, error) {
	ys := yamlScript{
		Game:    s.Game,
		Seed:    s.Seed,
		Actions: make([]string, len(s.Actions)),
	}
	for i, a := range s.Actions {
		ys.Actions[i] = strings.ToLower(a.String())
	}
	return yaml.Marshal(ys)
}

// Frames converts the actions to one input frame each.
func (s Script) Frames() []core.InputFrame {
	frames := make([]core.InputFrame, len(s.Actions))
	for i, a := range s.Actions {
		frames[i] = core.FrameOf(a)
	}
	return frames
}
