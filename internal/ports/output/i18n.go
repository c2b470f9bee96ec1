package output

// T exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + printf-style substitution for a
// given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// It never fails: a missing key renders as the key itself.
	T(locale, key string, args ...any) string
}

// Catalog is the strict side of the translator: lookups and formatting
// report errors instead of falling back. An empty locale selects the
// default locale.
type Catalog interface {
	T
	// Get returns the raw template for key.
	Get(locale, key string) (string, error)
	// Format renders key with args after checking them against its slots.
	Format(locale, key string, args ...any) (string, error)
	// Slots returns how many substitution values key expects.
	Slots(locale, key string) (int, error)
	// Section returns the section key belongs to.
	Section(locale, key string) (string, error)
}
