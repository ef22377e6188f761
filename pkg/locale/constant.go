package locale

const (
	// EN is English.
	EN = "en"
	// KO is Korean.
	KO = "ko"
	// AR is Arabic.
	AR = "ar"
)

// LangList contains all supported language codes.
var LangList = []string{EN, KO, AR}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN

// Locale is the context key for the request language.
type Locale struct{}
