// Package session implements a signed client-side session cookie. The
// payload lives with the visitor; the server trusts nothing beyond the
// HMAC signature being valid.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

const DefaultCookieName = "storefront_session"

// Session is the per-visitor state carried across requests: the cart mapping
// and the admin flag. Zero value means a fresh anonymous visitor.
type Session struct {
	Cart  map[int]int `json:"cart,omitempty"`
	Admin bool        `json:"admin,omitempty"`
}

type Codec struct {
	name   string
	secret []byte
}

func NewCodec(name string, secret []byte) *Codec {
	if name == "" {
		name = DefaultCookieName
	}
	return &Codec{name: name, secret: secret}
}

// Load decodes the session cookie. A missing cookie, a bad signature, or a
// garbled payload all yield a fresh empty session: an expired session and an
// empty cart are deliberately indistinguishable.
func (c *Codec) Load(r *http.Request) *Session {
	fresh := &Session{Cart: map[int]int{}}

	cookie, err := r.Cookie(c.name)
	if err != nil {
		return fresh
	}

	payload, ok := c.verify(cookie.Value)
	if !ok {
		return fresh
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return fresh
	}
	if s.Cart == nil {
		s.Cart = map[int]int{}
	}
	return &s
}

// Save writes the session back as a signed cookie.
func (c *Codec) Save(w http.ResponseWriter, s *Session) {
	payload, err := json.Marshal(s)
	if err != nil {
		// Session is plain maps and bools; this cannot fail.
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    c.sign(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *Codec) sign(payload []byte) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)

	return base64.RawURLEncoding.EncodeToString(payload) +
		"." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (c *Codec) verify(value string) ([]byte, bool) {
	body, sig, ok := strings.Cut(value, ".")
	if !ok {
		return nil, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return nil, false
	}

	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return nil, false
	}
	return payload, true
}
