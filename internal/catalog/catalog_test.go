package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sixfactors/internal/model"
)

func TestNew(t *testing.T) {
	c := New(Config{})

	assert.NotNil(t, c)
	assert.Equal(t, 24, c.Len())
}

func TestCatalog_Question(t *testing.T) {
	c := New(Config{})

	tests := []struct {
		name  string
		id    int
		found bool
	}{
		{name: "first question", id: 0, found: true},
		{name: "last question", id: c.Len() - 1, found: true},
		{name: "beyond catalog", id: c.Len(), found: false},
		{name: "far beyond catalog", id: c.Len() + 100, found: false},
		{name: "negative index", id: -1, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := c.Question(tt.id)

			if !tt.found {
				assert.Nil(t, q)
				return
			}

			require.NotNil(t, q)
			assert.Equal(t, tt.id, q.ID)
			assert.NotEmpty(t, q.Labels["en"])
			assert.NotEmpty(t, q.Labels["fr"])
		})
	}
}

func TestCatalog_Question_IDsMatchPosition(t *testing.T) {
	c := New(Config{})

	for i := 0; i < c.Len(); i++ {
		q := c.Question(i)
		require.NotNil(t, q)
		assert.Equal(t, i, q.ID)
	}
}

func TestCatalog_Label(t *testing.T) {
	c := New(Config{})

	label, ok := c.Label(0, "fr")
	require.True(t, ok)
	assert.Equal(t, c.Question(0).Labels["fr"], label)

	// Unsupported language falls back to the default language label.
	label, ok = c.Label(0, "de")
	require.True(t, ok)
	assert.Equal(t, c.Question(0).Labels["en"], label)

	_, ok = c.Label(c.Len(), "en")
	assert.False(t, ok)
}

func TestCatalog_AnswerCode(t *testing.T) {
	c := New(Config{})

	tests := []struct {
		name   string
		lang   string
		answer string
		code   int
		found  bool
	}{
		{name: "english agree", lang: "en", answer: "I agree", code: model.AnswerCodeAgree, found: true},
		{name: "english neutral", lang: "en", answer: "I don't know", code: model.AnswerCodeNeutral, found: true},
		{name: "english disagree", lang: "en", answer: "I disagree", code: model.AnswerCodeDisagree, found: true},
		{name: "french agree", lang: "fr", answer: "Je suis d'accord", code: model.AnswerCodeAgree, found: true},
		{name: "french disagree", lang: "fr", answer: "Je ne suis pas d'accord", code: model.AnswerCodeDisagree, found: true},
		{name: "unknown phrase", lang: "en", answer: "maybe", found: false},
		{name: "unknown language", lang: "de", answer: "I agree", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := c.AnswerCode(tt.lang, tt.answer)

			assert.Equal(t, tt.found, ok)

			if tt.found {
				assert.Equal(t, tt.code, code)
			}
		})
	}
}

func TestCatalog_ResolveLang(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		locale string
		want   string
	}{
		{name: "prefix disabled ignores locale", cfg: Config{}, locale: "fr_FR", want: "en"},
		{name: "prefix disabled with english locale", cfg: Config{}, locale: "en_US", want: "en"},
		{name: "prefix disabled with garbage", cfg: Config{}, locale: "??", want: "en"},
		{name: "prefix enabled french", cfg: Config{LocaleFromPrefix: true}, locale: "fr_FR", want: "fr"},
		{name: "prefix enabled bare tag", cfg: Config{LocaleFromPrefix: true}, locale: "fr", want: "fr"},
		{name: "prefix enabled uppercase", cfg: Config{LocaleFromPrefix: true}, locale: "FR_fr", want: "fr"},
		{name: "prefix enabled unsupported language", cfg: Config{LocaleFromPrefix: true}, locale: "de_DE", want: "en"},
		{name: "prefix enabled too short", cfg: Config{LocaleFromPrefix: true}, locale: "f", want: "en"},
		{name: "prefix enabled empty", cfg: Config{LocaleFromPrefix: true}, locale: "", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.cfg)

			assert.Equal(t, tt.want, c.ResolveLang(tt.locale))
		})
	}
}
