package wifi

import (
	"strings"
	"testing"
)

func TestEscapeDelimiters(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`,`, `\,`},
		{`:`, `\:`},
		{`;`, `\;`},
		{`\`, `\\`},
		{"Example:SSID", `Example\:SSID`},
		{`A;B,C\D`, `A\;B\,C\\D`},
		{`;;`, `\;\;`},
	}
	for _, c := range cases {
		if got := Escape(c.input); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestEscapePreservesNonDelimiters(t *testing.T) {
	cases := []string{
		"",
		"\t",
		"\n",
		" ",
		"!",
		`"`,
		"#",
		"-",
		"'",
		"+",
		".",
		"/",
		"09",
		"<>",
		"@",
		"AZ",
		"[]",
		"az",
		"あ",
		"☕️",
		"⚡",
		"パスワード",
	}
	for _, c := range cases {
		if got := Escape(c); got != c {
			t.Errorf("Escape(%q) = %q, want input unchanged", c, got)
		}
	}
}

func TestEscapeInsertsExactlyOneBackslashPerDelimiter(t *testing.T) {
	input := "café:guest;floor,2\\west and 日本語"
	got := Escape(input)

	delims := strings.Count(input, ",") + strings.Count(input, ":") +
		strings.Count(input, ";") + strings.Count(input, `\`)
	if len(got) != len(input)+delims {
		t.Errorf("Escape(%q) length = %d, want %d (= input + %d escapes)", input, len(got), len(input)+delims, delims)
	}

	// Stripping the inserted escapes must recover the original byte order.
	var stripped strings.Builder
	for i := 0; i < len(got); i++ {
		if got[i] == '\\' && i+1 < len(got) {
			i++
		}
		stripped.WriteByte(got[i])
	}
	if stripped.String() != input {
		t.Errorf("Escape(%q) reordered or altered bytes: %q", input, got)
	}
}
