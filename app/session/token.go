package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hostel-portal/app/client"
)

// CookieName is the portal's own session cookie.
const CookieName = "hostel_session"

const issuer = "hostel-portal"

// Claims carries the backend session cookies between requests.
type Claims struct {
	Backend map[string]string `json:"backend"`
	jwt.RegisteredClaims
}

// Manager issues and verifies portal session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

// Issue signs a token holding cred for the given login name.
func (m *Manager) Issue(subject string, cred client.Credential) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(m.ttl)
	claims := Claims{
		Backend: cred,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	return signed, expires, err
}

// Parse verifies a token and returns its claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}

// SetCookie stores cred in the session cookie.
func (m *Manager) SetCookie(c *fiber.Ctx, subject string, cred client.Credential) error {
	if cred.Empty() {
		return errors.New("session: backend set no session cookie")
	}
	token, expires, err := m.Issue(subject, cred)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: "Lax",
	})
	return nil
}

// ClearCookie drops the session cookie. The backend session itself is left to expire.
func (m *Manager) ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: "Lax",
	})
}

// Credential returns the backend cookies of the request, or nil when the
// session cookie is missing or invalid.
func (m *Manager) Credential(c *fiber.Ctx) client.Credential {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return nil
	}
	claims, err := m.Parse(raw)
	if err != nil {
		return nil
	}
	return client.Credential(claims.Backend)
}
