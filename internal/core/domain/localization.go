package domain

// DefaultLocale is the fallback locale consulted when a key has no
// translation in the requested locale.
const DefaultLocale = "en"

// Message is a single localized string keyed by (key, locale).
type Message struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Locale string `json:"locale"`
	Value  string `json:"value"`
}
