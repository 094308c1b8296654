// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"roomku_backend/internals/configs"
	authModel "roomku_backend/internals/features/users/auth/model"
	authRepo "roomku_backend/internals/features/users/auth/repository"
	userModel "roomku_backend/internals/features/users/user/model"
	helper "roomku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
	pending2FATTL     = 5 * time.Minute
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET belum diset")
	}
	return configs.JWTRefreshSecret, nil
}

// computeRefreshHash HMAC-SHA256 token refresh — yang disimpan di DB hanya hash
func computeRefreshHash(token, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

/* ====================== CLAIMS BUILDERS ====================== */

func buildAccessClaims(user userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// buildPending2FAClaims token sementara setelah password benar tapi TOTP belum diverifikasi
func buildPending2FAClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"id":    userID.String(),
		"stage": "2fa",
		"iat":   now.Unix(),
		"exp":   now.Add(pending2FATTL).Unix(),
	}
}

/* ====================== ISSUE ====================== */

// issueTokenPair bikin access + refresh, simpan hash refresh di DB, set cookie refresh.
func issueTokenPair(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (string, string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return "", "", err
	}

	setRefreshCookie(c, refresh, now)

	return access, refresh, nil
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ====================== REFRESH TOKEN ====================== */

// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Parse & validate refresh JWT
	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh masih aktif di DB
	existing, err := authRepo.FindRefreshTokenByHashActive(db, computeRefreshHash(refreshCookie, refreshSecret))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	// Ambil user
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, terbitkan pasangan baru
	if err := authRepo.RevokeRefreshTokenByID(db, existing.ID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal rotasi refresh token")
	}

	access, _, err := issueTokenPair(db, c, user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat token baru")
	}

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": access,
	})
}
