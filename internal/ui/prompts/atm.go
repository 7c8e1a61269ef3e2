package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"atmsim/internal/utils"
	"atmsim/internal/validation"
)

// PromptPIN prompts for a masked 4-digit PIN.
func PromptPIN(message string) (string, error) {
	var pin string

	err := huh.NewInput().
		Title(message).
		EchoMode(huh.EchoModePassword).
		Validate(validation.ValidatePIN).
		Value(&pin).
		Run()

	return pin, err
}

// PromptAccountID prompts for a 6-digit account number.
func PromptAccountID(message string) (string, error) {
	var id string

	err := huh.NewInput().
		Title(message).
		Validate(validation.ValidateAccountID).
		Value(&id).
		Run()

	return id, err
}

// PromptAmount prompts for a monetary amount and returns it in cents.
func PromptAmount(message string) (int64, error) {
	input, err := PromptInput(message, "e.g. 5000 or 5000.50", validation.ValidateAmount)
	if err != nil {
		return 0, err
	}

	cents, err := utils.ParseToCents(input)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}
	return cents, nil
}
