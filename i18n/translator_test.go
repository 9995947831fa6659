package i18n

import "testing"

func TestTranslator_LanguageSwitch(t *testing.T) {
	defer SetLanguage("en")

	if got := T("invalid_number", nil); got != "invalid number" {
		t.Fatalf("en message mismatch: %q", got)
	}
	SetLanguage("ja")
	if got := T("invalid_number", nil); got != "数値が不正です" {
		t.Fatalf("ja message mismatch: %q", got)
	}
	// unknown language falls back to en
	SetLanguage("fr")
	if got := T("parse_error", nil); got != "parse error" {
		t.Fatalf("fallback message mismatch: %q", got)
	}
}

func TestTranslator_UnknownCodePassesThrough(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown code should pass through, got %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return "X:" + code }

func TestTranslator_CustomImplementation(t *testing.T) {
	defer SetTranslator(nil)

	SetTranslator(upperTranslator{})
	if got := T("parse_error", nil); got != "X:parse_error" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("parse_error", nil); got != "parse error" {
		t.Fatalf("nil reset should restore dictionary: %q", got)
	}
}
