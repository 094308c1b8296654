// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "roomku_backend/internals/features/users/auth/repository"
	userModel "roomku_backend/internals/features/users/user/model"
	helper "roomku_backend/internals/helpers"
)

/* ========================== REGISTER ========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
	}
	// Role register SELALU 'user' — upgrade role cuma lewat admin endpoint
	user.Role = ""
	user.SetDefaultValues()

	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.Password = string(hashed)

	if err := authRepo.CreateUser(db, &user); err != nil {
		// unique violation email → 409
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

/* ========================== LOGIN ========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"` // email atau user_name
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if strings.TrimSpace(input.Identifier) == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifier dan password wajib diisi")
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(input.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sengaja generic, jangan bocorkan akun mana yang ada
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	// Kalau 2FA aktif → belum kasih token penuh, kasih token pending dulu
	if user.TwoFactorEnabled {
		jwtSecret, err := getJWTSecret()
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		pending, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildPending2FAClaims(user.ID, nowUTC())).SignedString([]byte(jwtSecret))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal buat token 2FA")
		}
		return helper.JsonOK(c, "Verifikasi kode 2FA diperlukan", fiber.Map{
			"two_factor_required": true,
			"pending_token":       pending,
		})
	}

	access, _, err := issueTokenPair(db, c, user)
	if err != nil {
		log.Printf("[ERROR] login issue tokens: %v", err)
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

/* ========================== LOGOUT ========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist access token yang sedang dipakai
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tok := strings.Trim(fields[1], "\"'")
		// simpan dengan exp dari klaim kalau bisa dibaca, fallback 24 jam
		expiredAt := time.Now().Add(24 * time.Hour)
		if secret, err := getJWTSecret(); err == nil {
			claims := jwt.MapClaims{}
			parser := jwt.Parser{SkipClaimsValidation: true}
			if _, err := parser.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			}); err == nil {
				if exp, ok := claims["exp"].(float64); ok {
					expiredAt = time.Unix(int64(exp), 0)
				}
			}
		}
		if err := authRepo.BlacklistToken(db, tok, expiredAt); err != nil {
			log.Printf("[WARNING] gagal blacklist token: %v", err)
		}
	}

	// revoke refresh token dari cookie (kalau ada)
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			if rt, err := authRepo.FindRefreshTokenByHashActive(db, computeRefreshHash(refreshCookie, refreshSecret)); err == nil {
				_ = authRepo.RevokeRefreshTokenByID(db, rt.ID)
			}
		}
	}

	// hapus cookie
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}
