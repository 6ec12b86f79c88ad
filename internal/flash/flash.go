// Package flash queues user-facing messages across a redirect.
// Messages travel in a cookie that is encrypted and signed with a Fernet key,
// so clients can neither read nor forge them.
package flash

import (
	"crypto/sha256"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/fernet/fernet-go"
)

const (
	// CookieName is the name of the cookie holding queued messages.
	CookieName = "flash"
	// DefaultTTL bounds how long a queued message stays readable.
	DefaultTTL = 5 * time.Minute
)

// Store reads and writes flash message cookies.
type Store struct {
	key *fernet.Key
	ttl time.Duration
}

// NewStore creates a Store keyed by secret.
//
// A secret that is already a base64 Fernet key is used as is; any other non-empty
// secret is hashed into a key. An empty secret yields a random key, which means
// messages do not survive a restart or reach other instances.
func NewStore(secret string) *Store {
	return &Store{
		key: deriveKey(secret),
		ttl: DefaultTTL,
	}
}

func deriveKey(secret string) *fernet.Key {
	if secret == "" {
		var k fernet.Key
		if err := k.Generate(); err != nil {
			log.Fatalf("Failed to generate flash key: %v", err)
		}
		log.Println("SECRET_KEY not set, using a random flash message key")
		return &k
	}
	if k, err := fernet.DecodeKey(secret); err == nil {
		return k
	}
	k := fernet.Key(sha256.Sum256([]byte(secret)))
	return &k
}

// Add queues messages for the next request. Messages already queued by the
// incoming request are kept in front of the new ones.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, messages ...string) error {
	all := append(s.read(r), messages...)
	data, err := json.Marshal(all)
	if err != nil {
		return err
	}
	token, err := fernet.EncryptAndSign(data, s.key)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
	return nil
}

// Pop returns the queued messages and clears the cookie.
// A tampered or expired cookie yields no messages.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []string {
	if _, err := r.Cookie(CookieName); err != nil {
		return nil
	}
	messages := s.read(r)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return messages
}

func (s *Store) read(r *http.Request) []string {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	data := fernet.VerifyAndDecrypt([]byte(c.Value), s.ttl, []*fernet.Key{s.key})
	if data == nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}
	return messages
}
