// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID       uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubjectSchoolID uuid.UUID `json:"subject_school_id" gorm:"column:subject_school_id;type:uuid;not null;index;uniqueIndex:uq_subjects_code_per_school,priority:1"`

	SubjectName string `json:"subject_name" gorm:"column:subject_name;type:varchar(120);not null"`
	SubjectCode string `json:"subject_code" gorm:"column:subject_code;type:varchar(30);not null;uniqueIndex:uq_subjects_code_per_school,priority:2"`

	SubjectIsActive bool `json:"subject_is_active" gorm:"column:subject_is_active;not null;default:true"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"-" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string { return "subjects" }
