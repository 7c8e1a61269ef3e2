package atm

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPIN returns the hex-encoded SHA-256 digest of a PIN.
// Single round, no salt: digests stored in existing data files must keep
// verifying, so the scheme cannot change.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPIN reports whether pin matches the stored digest.
func VerifyPIN(pin, digest string) bool {
	return HashPIN(pin) == digest
}

// ValidPINFormat reports whether pin is exactly four decimal digits.
func ValidPINFormat(pin string) bool {
	return isDigits(pin, 4)
}

// ValidAccountID reports whether id is exactly six decimal digits.
func ValidAccountID(id string) bool {
	return isDigits(id, 6)
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
