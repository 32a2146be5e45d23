package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.NotNil(t, GetTranslator())
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      ErrKeyInvalidQuantity,
			locale:   "en",
			expected: "Quantity must be a positive integer",
		},
		{
			name:     "portuguese message",
			key:      ErrKeyPackSizeNotFound,
			locale:   "pt",
			expected: "Tamanho de pacote não registrado",
		},
		{
			name:     "dutch message",
			key:      ErrKeyNoPackSizes,
			locale:   "nl",
			expected: "Er zijn geen verpakkingsgroottes geconfigureerd",
		},
		{
			name:     "unknown locale falls back to english",
			key:      ErrKeyInvalidPackSize,
			locale:   "fr",
			expected: "Pack size must be a positive integer",
		},
		{
			name:     "empty locale falls back to english",
			key:      ErrKeyServiceUnavailable,
			locale:   "",
			expected: "Service temporarily unavailable, please try again later",
		},
		{
			name:     "unknown key returns key",
			key:      "error.does_not_exist",
			locale:   "pt",
			expected: "error.does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestMessages_EveryLocaleHasEveryKey(t *testing.T) {
	for key := range defaultMessages[DefaultLocale] {
		for locale, messages := range defaultMessages {
			assert.Contains(t, messages, key, "locale %s", locale)
		}
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "no header", header: "", expected: "en"},
		{name: "plain language", header: "pt", expected: "pt"},
		{name: "region and weights", header: "nl-NL,nl;q=0.9,en;q=0.8", expected: "nl"},
		{name: "upper case", header: "PT-BR", expected: "pt"},
		{name: "unsupported", header: "de-DE,de;q=0.9", expected: "en"},
		{name: "weight on first entry", header: "pt;q=0.8", expected: "pt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set(AcceptLanguageHeader, "nl")

	assert.Equal(t, "Niet gevonden", T(c, ErrKeyNotFound))
}
