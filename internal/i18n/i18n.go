// Package i18n provides internationalization support for the pack planner.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// T translates key for the request's locale.
func T(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

// GetLocale extracts the locale from the Accept-Language header, e.g.
// "pt-BR,pt;q=0.9" gives "pt". Unsupported languages give DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	lang, _, _ := strings.Cut(acceptLang, ",")
	lang, _, _ = strings.Cut(lang, ";")
	lang, _, _ = strings.Cut(strings.TrimSpace(lang), "-")
	lang = strings.ToLower(lang)

	if _, ok := defaultMessages[lang]; ok {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		"error.invalid_request":      "Invalid request",
		"error.invalid_request_body": "Invalid request body",
		"error.internal_error":       "An unexpected error occurred",
		"error.unauthorized":         "Unauthorized",
		"error.api_key_required":     "API key is required",
		"error.invalid_api_key":      "Invalid API key",
		"error.forbidden":            "Forbidden",
		"error.not_found":            "Not found",
		"error.rate_limit_exceeded":  "Too many requests, please try again later",
		"error.conflict":             "Conflict",
		"error.invalid_token":        "Invalid or expired token",
		"error.token_required":       "Authentication token is required",
		"error.timeout":              "Request timed out",
		"error.invalid_pack_size":    "Pack size must be a positive integer",
		"error.pack_size_not_found":  "Pack size is not registered",
		"error.invalid_quantity":     "Quantity must be a positive integer",
		"error.no_pack_sizes":        "No pack sizes are configured",
		"error.service_unavailable":  "Service temporarily unavailable, please try again later",
		"error.history_unavailable":  "Pack size history requires database storage",
	},
	"pt": {
		"error.invalid_request":      "Requisição inválida",
		"error.invalid_request_body": "Corpo da requisição inválido",
		"error.internal_error":       "Ocorreu um erro inesperado",
		"error.unauthorized":         "Não autorizado",
		"error.api_key_required":     "Chave de API é obrigatória",
		"error.invalid_api_key":      "Chave de API inválida",
		"error.forbidden":            "Proibido",
		"error.not_found":            "Não encontrado",
		"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
		"error.conflict":             "Conflito",
		"error.invalid_token":        "Token inválido ou expirado",
		"error.token_required":       "Token de autenticação é obrigatório",
		"error.timeout":              "Tempo limite da requisição excedido",
		"error.invalid_pack_size":    "O tamanho do pacote deve ser um inteiro positivo",
		"error.pack_size_not_found":  "Tamanho de pacote não registrado",
		"error.invalid_quantity":     "A quantidade deve ser um inteiro positivo",
		"error.no_pack_sizes":        "Nenhum tamanho de pacote configurado",
		"error.service_unavailable":  "Serviço temporariamente indisponível, tente novamente mais tarde",
		"error.history_unavailable":  "O histórico de tamanhos de pacote requer banco de dados",
	},
	"nl": {
		"error.invalid_request":      "Ongeldig verzoek",
		"error.invalid_request_body": "Ongeldige aanvraag body",
		"error.internal_error":       "Er is een onverwachte fout opgetreden",
		"error.unauthorized":         "Niet geautoriseerd",
		"error.api_key_required":     "API-sleutel is vereist",
		"error.invalid_api_key":      "Ongeldige API-sleutel",
		"error.forbidden":            "Verboden",
		"error.not_found":            "Niet gevonden",
		"error.rate_limit_exceeded":  "Te veel verzoeken, probeer het later opnieuw",
		"error.conflict":             "Conflict",
		"error.invalid_token":        "Ongeldig of verlopen token",
		"error.token_required":       "Authenticatietoken is vereist",
		"error.timeout":              "Verzoek is verlopen",
		"error.invalid_pack_size":    "Verpakkingsgrootte moet een positief geheel getal zijn",
		"error.pack_size_not_found":  "Verpakkingsgrootte is niet geregistreerd",
		"error.invalid_quantity":     "Aantal moet een positief geheel getal zijn",
		"error.no_pack_sizes":        "Er zijn geen verpakkingsgroottes geconfigureerd",
		"error.service_unavailable":  "Service tijdelijk niet beschikbaar, probeer het later opnieuw",
		"error.history_unavailable":  "Geschiedenis van verpakkingsgroottes vereist een database",
	},
}
