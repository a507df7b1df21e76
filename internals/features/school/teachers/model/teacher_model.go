// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TeacherSchoolID uuid.UUID `json:"teacher_school_id" gorm:"column:teacher_school_id;type:uuid;not null;index"`
	TeacherUserID   uuid.UUID `json:"teacher_user_id" gorm:"column:teacher_user_id;type:uuid;not null;uniqueIndex:uq_teachers_user"`

	TeacherNIP   *string `json:"teacher_nip" gorm:"column:teacher_nip;type:varchar(30)"`
	TeacherTitle *string `json:"teacher_title" gorm:"column:teacher_title;type:varchar(80)"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"column:teacher_is_active;not null;default:true"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"-" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }
