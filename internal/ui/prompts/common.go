package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptConfirm prompts for yes/no confirmation.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Value(&confirm).
		Affirmative("Yes").
		Negative("No").
		Run()

	return confirm, err
}

// PromptSelect prompts for a selection from a list of options and returns
// the chosen one.
func PromptSelect(message string, options []string) (string, error) {
	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptInput prompts for a text input with an optional validator.
func PromptInput(message string, helpText string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&inputVal)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return inputVal, err
}
