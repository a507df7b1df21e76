package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/features/users/auth/model"
)

// purgeCutoff: baris kadaluarsa sebelum titik ini boleh dibuang.
// TTL memberi jeda supaya token yang baru saja kadaluarsa masih bisa
// diaudit dulu.
func purgeCutoff(now time.Time, ttlDays int) time.Time {
	if ttlDays < 0 {
		ttlDays = 0
	}
	return now.Add(-time.Duration(ttlDays) * 24 * time.Hour)
}

// StartTokenCleanupScheduler membersihkan token_blacklist dan
// refresh_tokens yang sudah lewat masa simpan, sekali sehari.
func StartTokenCleanupScheduler(db *gorm.DB) {
	ttlDays := 7
	if val := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS", ""); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			ttlDays = parsed
		}
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			cutoff := purgeCutoff(time.Now(), ttlDays)

			res := db.Unscoped().
				Where("expired_at < ?", cutoff).
				Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] token_blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d token blacklist kadaluarsa dihapus", res.RowsAffected)
			}

			res = db.
				Where("expires_at < ? OR revoked_at IS NOT NULL AND revoked_at < ?", cutoff, cutoff).
				Delete(&model.RefreshToken{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] refresh_tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d refresh token usang dihapus", res.RowsAffected)
			}

			<-ticker.C
		}
	}()
}
