package models

import "golang.org/x/text/language"

// Language selects which side of a bilingual field pair is preferred.
type Language int

const (
	// LanguageDefault prefers the French fields.
	LanguageDefault Language = iota
	// LanguageArabic prefers the Arabic fields.
	LanguageArabic
)

// arabicCode is the only request value that selects Arabic.
var arabicCode = language.Arabic.String()

// ParseLanguage maps a raw request value to a Language. Only the exact value
// "ar" selects LanguageArabic; any other value, including "AR", "ar-MA" or an
// empty string, selects LanguageDefault.
func ParseLanguage(value string) Language {
	if value == arabicCode {
		return LanguageArabic
	}
	return LanguageDefault
}

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	if l == LanguageArabic {
		return language.Arabic
	}
	return language.French
}

func (l Language) String() string {
	return l.Tag().String()
}

// pick returns the preferred value of a pair, falling back to the other one.
func (l Language) pick(primary, arabic string) string {
	switch l {
	case LanguageArabic:
		if arabic != "" {
			return arabic
		}
		return primary
	default:
		if primary != "" {
			return primary
		}
		return arabic
	}
}
