package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"

	"atmsim/internal/atm"
)

// IsCancel reports whether err means the user backed out of a prompt.
func IsCancel(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, atm.ErrCancelled) ||
		strings.Contains(err.Error(), "interrupt")
}
