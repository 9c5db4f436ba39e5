package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/models"
	"portfolio/internal/storage"
)

// AuthService handles admin authentication. Logins issue an HS256 JWT whose
// `sid` claim points at a server-side session row; a token is only accepted
// while its session is live, so logout takes effect immediately.
type AuthService struct {
	store        storage.Store
	jwtSecret    []byte
	adminID      string
	adminEmail   string
	passwordHash []byte
	tokenDurat   time.Duration // Duration for which a login is valid
}

// NewAuthService creates a new AuthService. passwordHash is a bcrypt hash of
// the admin password.
func NewAuthService(store storage.Store, jwtSecret, adminID, adminEmail string, passwordHash []byte) *AuthService {
	return &AuthService{
		store:        store,
		jwtSecret:    []byte(jwtSecret),
		adminID:      adminID,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		tokenDurat:   24 * time.Hour,
	}
}

// Login authenticates the admin and returns a JWT token if successful.
func (s *AuthService) Login(email, password string) (string, error) {
	// Do not reveal which of the two checks failed.
	if email != s.adminEmail {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenDurat)

	payload, err := json.Marshal(map[string]string{"sub": s.adminID, "email": email})
	if err != nil {
		return "", fmt.Errorf("failed to encode session payload: %w", err)
	}
	session := &models.Session{
		ID:        uuid.New().String(),
		Payload:   string(payload),
		ExpiresAt: expiresAt,
	}
	if err := s.store.CreateSession(session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": s.adminID,
		"sid": session.ID,
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token and checks that its session
// is still live. It returns the authenticated identity (the `sub` claim).
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}

	sid, _ := claims["sid"].(string)
	session, err := s.store.GetSession(sid)
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return "", fmt.Errorf("session expired or revoked")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("invalid token: missing subject")
	}
	return sub, nil
}

// Logout revokes the session behind a token. Invalid tokens are not an error;
// there is nothing left to revoke.
func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil
	}
	return s.store.DeleteSession(sid)
}

// SweepExpiredSessions deletes expired session rows and logs the count.
func (s *AuthService) SweepExpiredSessions() {
	removed, err := s.store.DeleteExpiredSessions()
	if err != nil {
		log.Printf("Session sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Session sweep removed %d expired session(s)", removed)
	}
}

func (s *AuthService) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
