// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ==========================
   LOGIN
========================== */

type loginInput struct {
	Identifier string `json:"identifier"` // email atau user_name
	Password   string `json:"password"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var in loginInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	in.Identifier = strings.TrimSpace(in.Identifier)
	if in.Identifier == "" || in.Password == "" {
		return helper.JsonValidationError(c, map[string][]string{
			"identifier": {"wajib diisi"},
			"password":   {"wajib diisi"},
		})
	}

	var user userModel.UserModel
	err := db.WithContext(c.Context()).
		Where("LOWER(email) = LOWER(?) OR user_name = ?", in.Identifier, in.Identifier).
		First(&user).Error
	if err != nil {
		// satu pesan untuk salah identifier maupun salah password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifier atau password salah")
	}

	return issueTokens(db, c, &user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var in struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&in); err != nil || strings.TrimSpace(in.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}
	if configs.GoogleClientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Login Google tidak aktif")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(in.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(in.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token Google tidak valid")
	}

	// Akun harus sudah diprovision admin; Google hanya cara login.
	var user userModel.UserModel
	if err := db.WithContext(c.Context()).
		Where("LOWER(email) = LOWER(?)", claimSet.Email).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun belum terdaftar di sekolah mana pun")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// simpan google_id saat pertama kali
	if user.GoogleID == nil && claimSet.Sub != "" {
		sub := claimSet.Sub
		if err := db.Model(&user).Update("google_id", sub).Error; err != nil {
			log.Printf("[WARN] gagal simpan google_id: %v", err)
		}
	}

	return issueTokens(db, c, &user)
}

/* ==========================
   ISSUE / REFRESH / LOGOUT
========================== */

func issueTokens(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) error {
	now := time.Now().UTC()

	ids := lookupIdentityIDs(db, user)
	access, err := signHS256(buildAccessClaims(user, ids, now), configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refresh, err := signHS256(buildRefreshClaims(user.ID, now), configs.JWTRefreshSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	if err := storeRefreshToken(db, user.ID, refresh, now, c.Get("User-Agent"), c.IP()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setRefreshCookie(c, refresh, now.Add(refreshTTLDefault))

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"full_name": user.FullName,
			"role":      user.Role,
			"school_id": user.SchoolID,
		},
	})
}

// lookupIdentityIDs cari baris teacher/student milik user (boleh tidak ada).
func lookupIdentityIDs(db *gorm.DB, user *userModel.UserModel) IdentityIDs {
	var ids IdentityIDs

	var t teacherModel.TeacherModel
	if err := db.
		Where("teacher_user_id = ? AND teacher_school_id = ? AND teacher_is_active = true", user.ID, user.SchoolID).
		First(&t).Error; err == nil {
		ids.TeacherID = &t.TeacherID
	}

	var s studentModel.StudentModel
	if err := db.
		Where("student_user_id = ? AND student_school_id = ?", user.ID, user.SchoolID).
		First(&s).Error; err == nil {
		ids.StudentID = &s.StudentID
	}

	return ids
}

// POST /api/auth/refresh-token — ROTATE refresh + access baru
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
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

	// hash harus dikenal & masih aktif
	rt, err := findActiveRefreshToken(db, refreshCookie)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user userModel.UserModel
	if err := db.WithContext(c.Context()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, terbitkan pasangan baru
	if err := revokeRefreshToken(db, rt.ID); err != nil {
		log.Printf("[refresh] revoke old token failed: %v", err)
	}

	return issueTokens(db, c, &user)
}

// POST /api/auth/logout — blacklist access token + revoke refresh
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw != "" {
		// exp token dipakai sebagai umur baris blacklist
		expiredAt := time.Now().Add(accessTTLDefault)
		if tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err == nil {
			if claims, ok := tok.Claims.(jwt.MapClaims); ok {
				if exp, ok := claims["exp"].(float64); ok {
					expiredAt = time.Unix(int64(exp), 0)
				}
			}
		}
		if err := db.Create(&authModel.TokenBlacklist{
			Token:     raw,
			ExpiredAt: expiredAt,
		}).Error; err != nil && !helper.IsUniqueViolation(err, "") {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
		}
	}

	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if rt, err := findActiveRefreshToken(db, refreshCookie); err == nil {
			_ = revokeRefreshToken(db, rt.ID)
		}
	}
	clearRefreshCookie(c)

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   Cookie helpers
========================== */

func setRefreshCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
