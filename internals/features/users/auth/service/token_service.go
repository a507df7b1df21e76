// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

// IdentityIDs: id baris teacher/student milik user (kalau ada), ikut
// dibekukan ke dalam access token supaya downstream tidak perlu query lagi.
type IdentityIDs struct {
	TeacherID *uuid.UUID
	StudentID *uuid.UUID
}

func buildAccessClaims(u *userModel.UserModel, ids IdentityIDs, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":         u.ID.String(),
		"user_name":  u.UserName,
		"role":       u.Role,
		"school_id":  u.SchoolID.String(),
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTLDefault).Unix(),
	}
	if ids.TeacherID != nil {
		claims["teacher_id"] = ids.TeacherID.String()
	}
	if ids.StudentID != nil {
		claims["student_id"] = ids.StudentID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func signHS256(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// computeRefreshHash: refresh token disimpan sebagai hash, bukan plaintext.
func computeRefreshHash(raw string) string {
	sum := sha256.Sum256([]byte(raw + configs.JWTRefreshSecret))
	return hex.EncodeToString(sum[:])
}

func storeRefreshToken(db *gorm.DB, userID uuid.UUID, rawToken string, now time.Time, userAgent, ip string) error {
	rt := authModel.RefreshToken{
		UserID:    userID,
		TokenHash: computeRefreshHash(rawToken),
		ExpiresAt: now.Add(refreshTTLDefault),
	}
	if userAgent != "" {
		rt.UserAgent = &userAgent
	}
	if ip != "" {
		rt.IP = &ip
	}
	return db.Create(&rt).Error
}

// findActiveRefreshToken: belum revoked, belum expired.
func findActiveRefreshToken(db *gorm.DB, rawToken string) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", computeRefreshHash(rawToken)).
		First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func revokeRefreshToken(db *gorm.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&authModel.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now).Error
}

// IsTokenBlacklisted dipakai middleware auth sebagai BlacklistChecker.
func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var count int64
		err := db.Model(&authModel.TokenBlacklist{}).
			Where("token = ? AND deleted_at IS NULL", rawToken).
			Count(&count).Error
		return count > 0, err
	}
}
