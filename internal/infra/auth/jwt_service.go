// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"sews/config"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/service"
	"sews/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errUnknownTokenType = errors.New("unknown token type")

// tokenClaims is the payload of every token this service signs.
type tokenClaims struct {
	Kind string `json:"kind"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	issuer        string
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc, err := newJWTService(cfg, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("jwt access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     5 * time.Minute,
		refreshTTL:    24 * time.Hour,
		issuer:        "sews",
		now:           now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			svc.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
		if cfg.Auth.Issuer != "" {
			svc.issuer = cfg.Auth.Issuer
		}
	}

	return svc, nil
}

// Issue creates a new access token and refresh token for the principal.
func (s *jwtService) Issue(principal entity.Principal) (*entity.TokenPair, error) {
	if principal.ID() == uuid.Nil || !principal.Kind.Valid() {
		return nil, errors.New("cannot issue tokens for an incomplete principal")
	}

	now := s.now()

	accessToken, accessExp, err := s.generateToken(principal.ID(), principal.Kind, entity.TokenAccess, now)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := s.generateToken(principal.ID(), principal.Kind, entity.TokenRefresh, now)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Verify authenticates the signed segments against both secrets before
// decoding anything, so any altered byte reports ErrTokenSignatureInvalid.
// Only then are the claims decoded and the expiry checked.
func (s *jwtService) Verify(tokenString string) (*entity.ResolvedIdentity, error) {
	class, secret, err := s.authenticateSignature(tokenString)
	if err != nil {
		return nil, err
	}

	claims := &tokenClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if entity.TokenClass(claims.Type) != class {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage(errUnknownTokenType.Error())
	}

	principalID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("subject is not a valid id")
	}

	kind, ok := entity.ParsePrincipalKind(claims.Kind)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("unknown principal kind")
	}

	identity := &entity.ResolvedIdentity{
		PrincipalID: principalID,
		Kind:        kind,
		Class:       class,
		ExpiresAt:   claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}

	return identity, nil
}

// authenticateSignature checks the HS256 signature of header.payload against
// the access and refresh secrets and returns the class whose secret matched.
func (s *jwtService) authenticateSignature(tokenString string) (entity.TokenClass, []byte, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", nil, domainerrors.ErrTokenMalformed.WrapMessage("token must have three segments")
	}

	sig, err := jwt.NewParser().DecodeSegment(parts[2])
	if err != nil {
		return "", nil, domainerrors.ErrTokenMalformed.WrapMessage("signature segment is not base64url")
	}

	signingString := parts[0] + "." + parts[1]
	candidates := []struct {
		class  entity.TokenClass
		secret []byte
	}{
		{class: entity.TokenAccess, secret: s.accessSecret},
		{class: entity.TokenRefresh, secret: s.refreshSecret},
	}
	for _, c := range candidates {
		if jwt.SigningMethodHS256.Verify(signingString, sig, c.secret) == nil {
			return c.class, c.secret, nil
		}
	}

	return "", nil, domainerrors.ErrTokenSignatureInvalid.WrapMessage(jwt.ErrTokenSignatureInvalid.Error())
}

// Refresh issues a fresh access token for the subject of a valid refresh token.
func (s *jwtService) Refresh(refreshToken string) (string, time.Time, error) {
	identity, err := s.Verify(refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}

	if identity.Class != entity.TokenRefresh {
		return "", time.Time{}, domainerrors.ErrTokenMalformed.WrapMessage("not a refresh token")
	}

	return s.generateToken(identity.PrincipalID, identity.Kind, entity.TokenAccess, s.now())
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(
	principalID uuid.UUID,
	kind entity.PrincipalKind,
	class entity.TokenClass,
	now time.Time,
) (string, time.Time, error) {
	ttl, secret := s.accessTTL, s.accessSecret
	if class == entity.TokenRefresh {
		ttl, secret = s.refreshTTL, s.refreshSecret
	}

	expiresAt := now.Add(ttl)
	claims := tokenClaims{
		Kind: kind.String(),
		Type: string(class),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, "failed to sign %s token", class)
	}

	return signed, expiresAt, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domainerrors.ErrTokenSignatureInvalid.WrapMessage(err.Error())
	default:
		return domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	}
}
