package entities

// Message is one localized template of a catalog table.
type Message struct {
	Key      string
	Template string
	Locale   string
	Section  string
}
