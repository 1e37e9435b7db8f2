package wifi

import (
	"fmt"
	"strings"
)

// AuthType represents the authentication protocol of a network. It selects
// which validation rule applies to the password and supplies the T: token of
// the encoded record. The zero value is AuthWPA.
type AuthType int

const (
	AuthWPA AuthType = iota
	AuthWEP
	AuthNopass
)

// String returns the canonical token used in the encoded record.
func (a AuthType) String() string {
	switch a {
	case AuthWEP:
		return "WEP"
	case AuthNopass:
		return "nopass"
	default:
		return "WPA"
	}
}

// ParseAuthType maps a user-supplied security name to an AuthType. Matching
// is case-insensitive and accepts common aliases (wpa2, wpa3, open, none).
func ParseAuthType(s string) (AuthType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wpa", "wpa2", "wpa3":
		return AuthWPA, nil
	case "wep":
		return AuthWEP, nil
	case "nopass", "open", "none":
		return AuthNopass, nil
	}
	return AuthWPA, fmt.Errorf("invalid authentication type: %q (supported: WEP, WPA, nopass)", s)
}
