package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "kind" or "tag").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "解析エラー"
		case "invalid_number":
			return "数値が不正です"
		case "invalid_complex":
			return "複素数が不正です"
		case "invalid_source":
			return "入力ソースが不正です"
		case "nil_schema":
			return "スキーマが nil です"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "parse error"
		case "invalid_number":
			return "invalid number"
		case "invalid_complex":
			return "invalid complex number"
		case "invalid_source":
			return "invalid source"
		case "nil_schema":
			return "nil schema"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
