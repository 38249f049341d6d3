package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "type" or "event").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "empty_name":
			return "名前が空です"
		case "duplicate_type":
			return "型が重複して登録されています"
		case "undeclared_type":
			return "未宣言の型にメンバーを定義できません"
		case "undefined_type":
			return "宣言された型が定義されていません"
		case "unresolved_ref":
			return "未解決の型参照です"
		case "duplicate_event":
			return "イベント名が重複しています"
		case "duplicate_field":
			return "オプションのフィールドが重複しています"
		case "missing_zero_ctor":
			return "引数なしコンストラクタがありません"
		case "duplicate_resource":
			return "リソースが重複しています"
		case "unknown_resource_dep":
			return "未知のリソース依存です"
		case "missing_alias":
			return "エイリアスの参照先がありません"
		}
	default: // "en"
		switch code {
		case "empty_name":
			return "empty name"
		case "duplicate_type":
			return "type registered twice"
		case "undeclared_type":
			return "members defined for an undeclared type"
		case "undefined_type":
			return "declared type never defined"
		case "unresolved_ref":
			return "unresolved type reference"
		case "duplicate_event":
			return "duplicate event name"
		case "duplicate_field":
			return "duplicate options field"
		case "missing_zero_ctor":
			return "zero-argument constructor missing"
		case "duplicate_resource":
			return "duplicate resource"
		case "unknown_resource_dep":
			return "unknown resource dependency"
		case "missing_alias":
			return "alias target missing"
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
