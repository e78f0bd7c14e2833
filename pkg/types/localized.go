package types

// LocalizedString carries the bilingual copy used across the menu platform.
type LocalizedString struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Get resolves the string for a language tag, falling back to English.
func (s LocalizedString) Get(lang string) string {
	if lang == "ar" && s.Ar != "" {
		return s.Ar
	}
	return s.En
}

// IsZero reports whether both translations are empty.
func (s LocalizedString) IsZero() bool {
	return s.En == "" && s.Ar == ""
}
