package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database.
// Satu user terikat ke TEPAT SATU sekolah (tenant).
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;not null;index" json:"school_id"`

	UserName string  `gorm:"size:50;not null" json:"user_name"`
	FullName string  `gorm:"size:100;not null" json:"full_name"`
	Email    string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	GoogleID *string `gorm:"size:255;unique" json:"google_id,omitempty"`

	// Role closed set: admin|principal|teacher|clerk|student
	Role string `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
