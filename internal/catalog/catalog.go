package catalog

import (
	"strings"

	"sixfactors/internal/model"
)

// DefaultLang is the language every lookup falls back to.
const DefaultLang = "en"

// Config controls language resolution.
type Config struct {
	// LocaleFromPrefix enables deriving the language from the first two
	// letters of the caller-supplied locale (e.g. "fr_FR" -> "fr"). Off by
	// default: every locale resolves to DefaultLang, matching the behavior
	// the chat flow was built against.
	LocaleFromPrefix bool `mapstructure:"locale_from_prefix"`
}

// Catalog is the immutable question inventory plus the answer-code table.
// It is built once at process start and shared read-only across requests.
type Catalog struct {
	questions   []model.Question
	answerCodes model.AnswerCodes
	cfg         Config
}

// New builds a catalog over the bundled six factors inventory.
func New(cfg Config) *Catalog {
	return &Catalog{
		questions:   sixFactorsQuestions(),
		answerCodes: sixFactorsAnswerCodes(),
		cfg:         cfg,
	}
}

// Len returns the number of questions in the inventory.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Question returns the question at the given index, or nil when the index
// falls outside the catalog on either side.
func (c *Catalog) Question(id int) *model.Question {
	if id < 0 || id >= len(c.questions) {
		return nil
	}
	return &c.questions[id]
}

// Label returns the question text at the given index for the given language,
// falling back to the default language label.
func (c *Catalog) Label(id int, lang string) (string, bool) {
	q := c.Question(id)
	if q == nil {
		return "", false
	}
	return q.Label(lang, DefaultLang), true
}

// AnswerCode translates a localized answer phrase to its numeric code.
// The second return value reports whether the language and phrase were found.
func (c *Catalog) AnswerCode(lang, answer string) (int, bool) {
	codes, ok := c.answerCodes[lang]
	if !ok {
		return 0, false
	}
	code, ok := codes[answer]
	return code, ok
}

// ResolveLang maps a caller-supplied locale to a supported language tag.
// Unless LocaleFromPrefix is set it returns DefaultLang unconditionally.
func (c *Catalog) ResolveLang(locale string) string {
	if !c.cfg.LocaleFromPrefix {
		return DefaultLang
	}

	if len(locale) < 2 {
		return DefaultLang
	}

	lang := strings.ToLower(locale[:2])
	if _, ok := c.answerCodes[lang]; !ok {
		return DefaultLang
	}

	return lang
}
