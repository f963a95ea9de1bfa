package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success  bool
	AuthType string
	Claims   *jwt.RegisteredClaims
	// AuthSubject is the wallet id of a JWT caller
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the authentication result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	authType, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	switch strings.ToLower(authType) {
	case "bearer":
		claims, err := validateJWT(credentials, cfg.JWTPublicKey)
		if err != nil {
			result.Error = err
			return result
		}
		if claims.Subject == "" {
			result.Error = errors.New("token has no subject")
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeJWT
		result.Claims = claims
		result.AuthSubject = claims.Subject

	case "apikey":
		if err := validateAPIKey(credentials, cfg.APIKeys); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AuthTypeAPIKey

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
	}

	return result
}

// Auth requires a valid JWT; the token subject becomes the caller wallet
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Authenticate(c.GetHeader("Authorization"), cfg)
		if result.Success && result.AuthType != AuthTypeJWT {
			result = AuthResult{Error: errors.New("a wallet token is required")}
		}
		if !result.Success {
			abortUnauthorized(c, result.Error)
			return
		}

		setAuth(c, result)
		c.Next()
	}
}

// OptionalAuth identifies the viewer when a token is sent and lets anonymous requests through.
// A token that is sent but invalid is rejected.
func OptionalAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		result := Authenticate(header, cfg)
		if !result.Success {
			abortUnauthorized(c, result.Error)
			return
		}

		setAuth(c, result)
		c.Next()
	}
}

// APIKeyAuth requires one of the configured API keys
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Authenticate(c.GetHeader("Authorization"), cfg)
		if result.Success && result.AuthType != AuthTypeAPIKey {
			result = AuthResult{Error: errors.New("an API key is required")}
		}
		if !result.Success {
			abortUnauthorized(c, result.Error)
			return
		}

		setAuth(c, result)
		c.Next()
	}
}

// ViewerWallet returns the authenticated wallet of the request, if any
func ViewerWallet(c *gin.Context) *string {
	value, ok := c.Get(AUTH_SUBJECT_KEY)
	if !ok {
		return nil
	}
	subject, ok := value.(string)
	if !ok || subject == "" {
		return nil
	}
	return &subject
}

func setAuth(c *gin.Context, result AuthResult) {
	c.Set(AUTH_TYPE_KEY, result.AuthType)
	if result.Claims != nil {
		c.Set(JWT_CLAIMS_KEY, result.Claims)
	}
	if result.AuthSubject != "" {
		c.Set(AUTH_SUBJECT_KEY, result.AuthSubject)
	}
	logger.DebugCtx(c.Request.Context(), "Authentication successful",
		zap.String("auth_type", result.AuthType),
		zap.String("subject", result.AuthSubject),
	)
}

func abortUnauthorized(c *gin.Context, err error) {
	logger.WarnCtx(c.Request.Context(), "Authentication failed",
		zap.Error(err),
		zap.String("client_ip", c.ClientIP()),
	)
	apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}

// validateJWT validates a JWT token with RSA signature and returns claims.
// Expiry and not-before are enforced by the parser.
func validateJWT(tokenString string, publicKeyPEM string) (*jwt.RegisteredClaims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// PKIX first, PKCS1 as fallback
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}
	return rsaKey, nil
}

func validateAPIKey(apiKey string, validKeys []string) error {
	configured := false
	for _, key := range validKeys {
		if key == "" {
			continue
		}
		configured = true
		if key == apiKey {
			return nil
		}
	}
	if !configured {
		return errors.New("no API keys configured")
	}
	return errors.New("invalid API key")
}
