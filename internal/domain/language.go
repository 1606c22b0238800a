package domain

type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageHungarian Language = "hu"
	LanguageArabic    Language = "ar"
	LanguageFrench    Language = "fr"
	LanguageSpanish   Language = "es"
	LanguageRussian   Language = "ru"
)

var languageNames = map[Language]string{
	LanguageEnglish:   "English",
	LanguageHungarian: "Hungarian",
	LanguageArabic:    "Arabic",
	LanguageFrench:    "French",
	LanguageSpanish:   "Spanish",
	LanguageRussian:   "Russian",
}

// ParseLanguage returns English for unknown codes
func ParseLanguage(code string) Language {
	l := Language(code)
	if _, ok := languageNames[l]; ok {
		return l
	}
	return LanguageEnglish
}

// Name is the English name of the language, used in prompts
func (l Language) Name() string {
	if n, ok := languageNames[l]; ok {
		return n
	}
	return languageNames[LanguageEnglish]
}
