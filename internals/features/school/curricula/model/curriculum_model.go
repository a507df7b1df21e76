// file: internals/features/school/curricula/model/curriculum_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CurriculumModel: silabus per mapel + jenjang + tahun ajaran.
// Topik disimpan terurut; urutan array = urutan pengajaran.
type CurriculumModel struct {
	CurriculumID       uuid.UUID `json:"curriculum_id" gorm:"column:curriculum_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CurriculumSchoolID uuid.UUID `json:"curriculum_school_id" gorm:"column:curriculum_school_id;type:uuid;not null;index;uniqueIndex:uq_curricula,priority:1"`

	CurriculumSubjectID    uuid.UUID `json:"curriculum_subject_id" gorm:"column:curriculum_subject_id;type:uuid;not null;uniqueIndex:uq_curricula,priority:2"`
	CurriculumLevel        int       `json:"curriculum_level" gorm:"column:curriculum_level;not null;uniqueIndex:uq_curricula,priority:3"`
	CurriculumAcademicYear string    `json:"curriculum_academic_year" gorm:"column:curriculum_academic_year;type:varchar(20);not null;uniqueIndex:uq_curricula,priority:4"`

	CurriculumTopics pq.StringArray `json:"curriculum_topics" gorm:"column:curriculum_topics;type:text[];not null"`

	CurriculumCreatedAt time.Time      `json:"curriculum_created_at" gorm:"column:curriculum_created_at;autoCreateTime"`
	CurriculumUpdatedAt time.Time      `json:"curriculum_updated_at" gorm:"column:curriculum_updated_at;autoUpdateTime"`
	CurriculumDeletedAt gorm.DeletedAt `json:"-" gorm:"column:curriculum_deleted_at;index"`
}

func (CurriculumModel) TableName() string { return "curricula" }
