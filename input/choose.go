package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a selection (Ctrl-C/Esc).
var ErrAborted = errors.New("selection aborted")

// Choose shows choices as a select list and returns the value picked.
func Choose(title string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("nothing to choose from")
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(true)
	keyMap.Select.Submit.SetKeys("enter")

	selected := choices[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(choiceOptions(choices)...).
				Height(min(len(choices)+2, 15)).
				Value(&selected),
		),
	).WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", err
	}
	return selected, nil
}

// LineChooser adapts Choose for picking a line of a file.
func LineChooser(title string) func(lines []string) (string, error) {
	return func(lines []string) (string, error) {
		return Choose(title, lines)
	}
}

// choiceOptions numbers each choice; blank lines get a visible label.
func choiceOptions(choices []string) []huh.Option[string] {
	width := len(fmt.Sprint(len(choices)))
	opts := make([]huh.Option[string], 0, len(choices))
	for i, c := range choices {
		label := c
		if strings.TrimSpace(c) == "" {
			label = "(blank)"
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%*d  %s", width, i+1, label), c))
	}
	return opts
}
