// Package wifi validates Wi-Fi credentials and encodes them into the
// MECARD-like WIFI: record understood by QR code scanners.
package wifi

import (
	"strconv"
	"strings"
)

// ValidateSSID checks that an SSID is between 1 and 32 bytes. Lengths are
// measured in encoded bytes, not runes, to match what scanners expect.
func ValidateSSID(ssid string) error {
	switch n := len(ssid); {
	case n == 0:
		return ErrSSIDEmpty
	case n > 32:
		return &SSIDTooLongError{Length: n}
	}
	return nil
}

// Password pairs a secret with the authentication type whose rules it must
// satisfy. An empty Value means no password was supplied, which is only
// valid for AuthNopass.
type Password struct {
	Value string
	Auth  AuthType
}

// Validate checks the password against the rules for its authentication
// type:
//
//   - nopass: the value must be empty.
//   - WPA: 8-63 printable ASCII bytes (a passphrase), or exactly 64 hex
//     digits (a pre-shared 256-bit key).
//   - WEP: exactly 5 or 13 bytes of any content (raw 40/104-bit keys), or
//     10 or 26 hex digits (the same keys hex-encoded).
func (p Password) Validate() error {
	n := len(p.Value)
	switch p.Auth {
	case AuthNopass:
		if n != 0 {
			return ErrPasswordUnexpected
		}
	case AuthWEP:
		if n == 5 || n == 13 {
			return nil
		}
		if (n == 10 || n == 26) && isHex(p.Value) {
			return nil
		}
		return &InvalidPasswordError{Auth: AuthWEP, Length: n, IsHex: isHex(p.Value)}
	default:
		if 8 <= n && n <= 63 && isPrintableASCII(p.Value) {
			return nil
		}
		if n == 64 && isHex(p.Value) {
			return nil
		}
		return &InvalidPasswordError{Auth: AuthWPA, Length: n, IsHex: isHex(p.Value), IsASCII: isPrintableASCII(p.Value)}
	}
	return nil
}

// isHex reports whether s is non-empty and every byte is an ASCII hex digit.
func isHex(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// isPrintableASCII reports whether s is non-empty and every byte is in the
// printable ASCII range 0x20-0x7E.
func isPrintableASCII(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// Config describes a Wi-Fi network to encode: the SSID, the password with
// its authentication type, and whether the network hides its SSID. It is
// the unit of both validation and encoding.
type Config struct {
	SSID     string
	Password Password
	Hidden   bool
}

// Validate checks the SSID first, then the password. The first failure is
// returned and nothing else is checked.
func (c Config) Validate() error {
	if err := ValidateSSID(c.SSID); err != nil {
		return err
	}
	return c.Password.Validate()
}

// MECARD encodes the configuration into the WIFI: record consumed by
// scanners:
//
//	WIFI:S:<ssid>;T:<auth>;P:<password>;H:<hidden>;;
//
// All four fields and the trailing ;; are always present, even when empty;
// free-text fields are escaped. MECARD assumes the configuration already
// passed Validate and cannot fail.
func (c Config) MECARD() string {
	var b strings.Builder
	b.WriteString("WIFI:S:")
	b.WriteString(Escape(c.SSID))
	b.WriteString(";T:")
	b.WriteString(c.Password.Auth.String())
	b.WriteString(";P:")
	b.WriteString(Escape(c.Password.Value))
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(c.Hidden))
	b.WriteString(";;")
	return b.String()
}
