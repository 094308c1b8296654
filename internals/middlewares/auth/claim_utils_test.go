// file: internals/middlewares/auth/claim_utils_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

// parseLikeMiddleware jalankan urutan cek yang sama dengan AuthMiddleware
// (parse → tolak pending → exp → user_id) tanpa butuh DB.
func parseLikeMiddleware(t *testing.T, tokenString string) error {
	t.Helper()

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	if err := ensureFullAccessToken(claims); err != nil {
		return err
	}
	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return err
	}
	_, err = extractUserID(claims)
	return err
}

func TestEnsureFullAccessToken(t *testing.T) {
	t.Run("access token normal lolos", func(t *testing.T) {
		assert.NoError(t, ensureFullAccessToken(jwt.MapClaims{
			"id":        uuid.New().String(),
			"user_name": "budi",
			"role":      "instructor",
		}))
	})

	t.Run("klaim stage apa pun ditolak", func(t *testing.T) {
		assert.Error(t, ensureFullAccessToken(jwt.MapClaims{
			"id":    uuid.New().String(),
			"stage": "2fa",
		}))
	})
}

// Token pending-2FA dari Login (klaim id + stage, secret sama dengan access
// token) tidak boleh diterima sebagai access token penuh.
func TestPendingTwoFactorTokenRejectedAsAccessToken(t *testing.T) {
	now := time.Now().UTC()

	pending := signClaims(t, jwt.MapClaims{
		"id":    uuid.New().String(),
		"stage": "2fa",
		"iat":   now.Unix(),
		"exp":   now.Add(5 * time.Minute).Unix(),
	})
	assert.Error(t, parseLikeMiddleware(t, pending))

	access := signClaims(t, jwt.MapClaims{
		"id":        uuid.New().String(),
		"user_name": "budi",
		"role":      "instructor",
		"iat":       now.Unix(),
		"exp":       now.Add(15 * time.Minute).Unix(),
	})
	assert.NoError(t, parseLikeMiddleware(t, access))
}
