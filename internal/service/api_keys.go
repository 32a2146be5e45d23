package service

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultKeySubject names callers whose key entry carries no explicit name.
const DefaultKeySubject = "operator"

type plainKey struct {
	subject string
	key     []byte
}

type hashedKey struct {
	subject string
	hash    []byte
}

// APIKeyVerifier checks operator API keys. Entries are either "key" or
// "name=key"; the name becomes the token subject and the audit operator.
// Hashed entries hold bcrypt hashes instead of keys.
type APIKeyVerifier struct {
	plain  []plainKey
	hashed []hashedKey
}

// NewAPIKeyVerifier builds a verifier from plaintext keys and bcrypt hashes.
func NewAPIKeyVerifier(keys, hashes []string) *APIKeyVerifier {
	v := &APIKeyVerifier{}
	for _, entry := range keys {
		if subject, key := splitKeyEntry(entry); key != "" {
			v.plain = append(v.plain, plainKey{subject: subject, key: []byte(key)})
		}
	}
	for _, entry := range hashes {
		if subject, hash := splitKeyEntry(entry); hash != "" {
			v.hashed = append(v.hashed, hashedKey{subject: subject, hash: []byte(hash)})
		}
	}
	return v
}

// Empty reports whether no key is configured.
func (v *APIKeyVerifier) Empty() bool {
	return len(v.plain) == 0 && len(v.hashed) == 0
}

// Verify returns the subject of the matching key.
func (v *APIKeyVerifier) Verify(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	candidate := []byte(key)

	for _, k := range v.plain {
		if subtle.ConstantTimeCompare(k.key, candidate) == 1 {
			return k.subject, true
		}
	}
	for _, k := range v.hashed {
		if bcrypt.CompareHashAndPassword(k.hash, candidate) == nil {
			return k.subject, true
		}
	}
	return "", false
}

// HashAPIKey returns the bcrypt hash of key for use in API_KEY_HASHES.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func splitKeyEntry(entry string) (subject, key string) {
	entry = strings.TrimSpace(entry)
	if name, rest, ok := strings.Cut(entry, "="); ok && name != "" && !strings.HasPrefix(name, "$") {
		return strings.TrimSpace(name), strings.TrimSpace(rest)
	}
	return DefaultKeySubject, entry
}
