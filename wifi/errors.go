package wifi

import (
	"errors"
	"fmt"
)

var (
	// ErrSSIDEmpty is returned for a zero-length SSID.
	ErrSSIDEmpty = errors.New("SSID cannot be empty")
	// ErrPasswordUnexpected is returned when a password is supplied for an
	// open network.
	ErrPasswordUnexpected = errors.New("password should not be provided for 'nopass'")
)

// SSIDTooLongError is returned for an SSID longer than 32 bytes.
type SSIDTooLongError struct {
	Length int // measured byte length
}

func (e *SSIDTooLongError) Error() string {
	return fmt.Sprintf("SSID is too long (%d bytes). It must be between 1 and 32 bytes.", e.Length)
}

// InvalidPasswordError describes why a password failed validation for its
// authentication type. It carries the measured length and a content
// classification, never the password itself, so it is safe to show an
// operator.
type InvalidPasswordError struct {
	Auth    AuthType
	Length  int  // measured byte length
	IsHex   bool // every byte is an ASCII hex digit
	IsASCII bool // every byte is printable ASCII (0x20-0x7E)
}

func (e *InvalidPasswordError) Error() string {
	unit := "bytes"
	if e.Length == 1 {
		unit = "byte"
	}
	kind := "string"
	if e.IsHex {
		kind = "hex"
	}
	if e.Auth == AuthWEP {
		return fmt.Sprintf("WEP password must be 5 or 13 characters, or 10 or 26 hex digits (current: %d %s %s)", e.Length, unit, kind)
	}
	charType := "non-ASCII"
	if e.IsASCII {
		charType = "ASCII"
	}
	return fmt.Sprintf("WPA passphrase must be 8-63 printable ASCII characters, or 64 hex digits (current: %d %s %s, %s)", e.Length, unit, kind, charType)
}
