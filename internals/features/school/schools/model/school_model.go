// models/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel merepresentasikan tabel `school_profiles` — akar tenant.
// Satu tabel kanonik (dulu sempat terpecah school_info/school_profile).
type SchoolModel struct {
	SchoolID uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas
	SchoolName string `json:"school_name" gorm:"column:school_name;type:varchar(150);not null"`
	SchoolSlug string `json:"school_slug" gorm:"column:school_slug;type:varchar(160);not null;uniqueIndex"`

	// Info tambahan
	SchoolAddress *string `json:"school_address,omitempty" gorm:"column:school_address;type:text"`
	SchoolPhone   *string `json:"school_phone,omitempty" gorm:"column:school_phone;type:varchar(30)"`
	SchoolEmail   *string `json:"school_email,omitempty" gorm:"column:school_email;type:varchar(255)"`
	SchoolMotto   *string `json:"school_motto,omitempty" gorm:"column:school_motto;type:text"`

	SchoolIsActive bool `json:"school_is_active" gorm:"column:school_is_active;not null;default:true"`

	SchoolCreatedAt time.Time      `json:"school_created_at" gorm:"column:school_created_at;type:timestamptz;not null;default:now()"`
	SchoolUpdatedAt time.Time      `json:"school_updated_at" gorm:"column:school_updated_at;type:timestamptz;not null;default:now()"`
	DeletedAt       gorm.DeletedAt `json:"school_deleted_at,omitempty" gorm:"column:school_deleted_at;type:timestamptz;index"`
}

func (SchoolModel) TableName() string {
	return "school_profiles"
}
