package locale

import "regexp"

// Intent identifies a keyword-matched conversational intent.
type Intent string

const (
	IntentStatus   Intent = "status"
	IntentFeedback Intent = "feedback"
	IntentRegister Intent = "register"
)

// GreetingPattern maps a greeting regex to a reply key.
type GreetingPattern struct {
	Pattern *regexp.Regexp
	Key     string
}

// IntentGroup is an ordered keyword group for intent matching. Order in the
// catalog's IntentGroups slice is the match priority.
type IntentGroup struct {
	Intent Intent
	Tokens []string
}

// Catalog holds every language-specific string and token list the chat flow
// needs. The state machine is polymorphic over this; transition logic never
// hardcodes language-specific literals.
type Catalog struct {
	Code         string
	Name         string
	NativeName   string
	Messages     map[string]string
	GreetingRe   []GreetingPattern
	YesPatterns  []*regexp.Regexp
	NoPatterns   []*regexp.Regexp
	IntentGroups []IntentGroup
	RatingLabels map[int]string
	Suggestions  []string
}

// Msg returns a message by key, or the key itself when missing so a broken
// catalog degrades to something visible rather than an empty reply.
func (c *Catalog) Msg(key string) string {
	if msg, ok := c.Messages[key]; ok {
		return msg
	}
	return key
}

// MatchGreeting reports whether text is a greeting and which reply key fits.
func (c *Catalog) MatchGreeting(text string) (string, bool) {
	for _, g := range c.GreetingRe {
		if g.Pattern.MatchString(text) {
			return g.Key, true
		}
	}
	return "", false
}

// MatchYesNo classifies text as "yes", "no" or "unknown".
func (c *Catalog) MatchYesNo(text string) string {
	for _, p := range c.YesPatterns {
		if p.MatchString(text) {
			return "yes"
		}
	}
	for _, p := range c.NoPatterns {
		if p.MatchString(text) {
			return "no"
		}
	}
	return "unknown"
}

// Registry resolves language codes to catalogs.
type Registry struct {
	catalogs map[string]*Catalog
	fallback string
}

// NewRegistry builds the registry with every supported language.
func NewRegistry() *Registry {
	return &Registry{
		catalogs: map[string]*Catalog{
			"en": englishCatalog(),
			"mr": marathiCatalog(),
		},
		fallback: "en",
	}
}

// Catalog returns the catalog for code, falling back to the default language.
func (r *Registry) Catalog(code string) *Catalog {
	if c, ok := r.catalogs[code]; ok {
		return c
	}
	return r.catalogs[r.fallback]
}

// IsSupported reports whether code names a supported language.
func (r *Registry) IsSupported(code string) bool {
	_, ok := r.catalogs[code]
	return ok
}

// Supported lists supported language codes, default first.
func (r *Registry) Supported() []string {
	codes := []string{r.fallback}
	for code := range r.catalogs {
		if code != r.fallback {
			codes = append(codes, code)
		}
	}
	return codes
}
