package validation

import (
	"fmt"

	"atmsim/internal/atm"
	"atmsim/internal/utils"
)

// ValidatePIN checks the 4-digit PIN format, for use as a prompt validator.
func ValidatePIN(pin string) error {
	if !atm.ValidPINFormat(pin) {
		return fmt.Errorf("PIN must be exactly 4 digits")
	}
	return nil
}

// ValidateAccountID checks the 6-digit account number format.
func ValidateAccountID(id string) error {
	if !atm.ValidAccountID(id) {
		return fmt.Errorf("account number must be exactly 6 digits")
	}
	return nil
}

// ValidateAmount checks that the input parses to a positive amount.
func ValidateAmount(input string) error {
	cents, err := utils.ParseToCents(input)
	if err != nil {
		return err
	}
	if cents <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateInitialBalance allows zero as well, for account creation.
func ValidateInitialBalance(input string) error {
	if input == "" || input == "0" {
		return nil
	}
	cents, err := utils.ParseToCents(input)
	if err != nil {
		return err
	}
	if cents < 0 {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}
