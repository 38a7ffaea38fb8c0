package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const issuer = "crochetstudio"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongFlow    = errors.New("token issued for another flow")
)

// Service signs the opaque tokens that point a browser or API client at its wizard session.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Claims struct {
	SessionID string `json:"sid"`
	Flow      string `json:"flow"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) GenerateToken(sessionID, flow string) (string, error) {
	token, _, err := s.IssueToken(sessionID, flow)
	return token, err
}

// IssueToken signs a token and also returns its expiry as encoded in the claims,
// which is truncated to whole seconds.
func (s *Service) IssueToken(sessionID, flow string) (string, time.Time, error) {
	now := s.now()
	exp := jwtlib.NewNumericDate(now.Add(s.ttl))
	claims := Claims{
		SessionID: sessionID,
		Flow:      flow,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: exp,
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp.Time, nil
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(issuer),
		jwtlib.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// SessionFor validates tokenStr and checks it belongs to flow.
func (s *Service) SessionFor(tokenStr, flow string) (string, error) {
	claims, err := s.ValidateToken(tokenStr)
	if err != nil {
		return "", err
	}
	if claims.Flow != flow {
		return "", ErrWrongFlow
	}
	return claims.SessionID, nil
}
