// internals/features/users/auth/service/twofactor_service.go
package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"

	"roomku_backend/internals/configs"
	authRepo "roomku_backend/internals/features/users/auth/repository"
	helper "roomku_backend/internals/helpers"
)

/* ========================== SETUP ========================== */

// Setup2FA generate secret TOTP baru, simpan (belum enabled) dan kembalikan
// otpauth:// URL untuk di-scan authenticator app.
func Setup2FA(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if user.TwoFactorEnabled {
		return helper.JsonError(c, fiber.StatusConflict, "2FA sudah aktif")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      configs.TOTPIssuer,
		AccountName: user.Email,
	})
	if err != nil {
		log.Printf("[ERROR] totp generate: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate secret 2FA")
	}

	secret := key.Secret()
	if err := authRepo.UpdateUserTOTP(db, userID, &secret, false); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan secret 2FA")
	}

	return helper.JsonOK(c, "Scan QR berikut lalu konfirmasi kode", fiber.Map{
		"secret":      secret,
		"otpauth_url": key.URL(),
	})
}

/* ========================== ENABLE ========================== */

// Enable2FA verifikasi kode pertama dari authenticator lalu aktifkan 2FA.
func Enable2FA(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if user.TOTPSecret == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Belum setup 2FA")
	}
	if user.TwoFactorEnabled {
		return helper.JsonError(c, fiber.StatusConflict, "2FA sudah aktif")
	}

	if !totp.Validate(strings.TrimSpace(input.Code), *user.TOTPSecret) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Kode 2FA salah")
	}

	if err := authRepo.UpdateUserTOTP(db, userID, user.TOTPSecret, true); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal aktifkan 2FA")
	}

	return helper.JsonUpdated(c, "2FA aktif", nil)
}

/* ========================== VERIFY (LOGIN STEP 2) ========================== */

// Verify2FA terima pending_token dari Login + kode TOTP, terbitkan token penuh.
func Verify2FA(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		PendingToken string `json:"pending_token"`
		Code         string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(strings.TrimSpace(input.PendingToken), func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Pending token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if stage, _ := claims["stage"].(string); stage != "2fa" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Pending token invalid")
	}
	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Pending token invalid")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.TwoFactorEnabled || user.TOTPSecret == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "2FA tidak aktif untuk akun ini")
	}

	if !totp.Validate(strings.TrimSpace(input.Code), *user.TOTPSecret) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Kode 2FA salah")
	}

	access, _, err := issueTokenPair(db, c, user)
	if err != nil {
		log.Printf("[ERROR] verify2fa issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"role":      user.Role,
		},
	})
}
