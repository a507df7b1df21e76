// file: internals/features/school/lesson_plans/model/lesson_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonPlanModel: RPP milik guru. Hanya pemilik yang boleh mengubah.
type LessonPlanModel struct {
	LessonPlanID       uuid.UUID `json:"lesson_plan_id" gorm:"column:lesson_plan_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LessonPlanSchoolID uuid.UUID `json:"lesson_plan_school_id" gorm:"column:lesson_plan_school_id;type:uuid;not null;index"`

	LessonPlanTeacherID uuid.UUID  `json:"lesson_plan_teacher_id" gorm:"column:lesson_plan_teacher_id;type:uuid;not null;index"`
	LessonPlanClassID   uuid.UUID  `json:"lesson_plan_class_id" gorm:"column:lesson_plan_class_id;type:uuid;not null;index"`
	LessonPlanSubjectID uuid.UUID  `json:"lesson_plan_subject_id" gorm:"column:lesson_plan_subject_id;type:uuid;not null"`
	LessonPlanCurriculumID *uuid.UUID `json:"lesson_plan_curriculum_id" gorm:"column:lesson_plan_curriculum_id;type:uuid"`

	LessonPlanTitle       string    `json:"lesson_plan_title" gorm:"column:lesson_plan_title;type:varchar(200);not null"`
	LessonPlanPlannedDate time.Time `json:"lesson_plan_planned_date" gorm:"column:lesson_plan_planned_date;type:date;not null"`
	LessonPlanObjectives  string    `json:"lesson_plan_objectives" gorm:"column:lesson_plan_objectives;type:text;not null"`
	LessonPlanMaterials   *string   `json:"lesson_plan_materials" gorm:"column:lesson_plan_materials;type:text"`

	LessonPlanCreatedAt time.Time      `json:"lesson_plan_created_at" gorm:"column:lesson_plan_created_at;autoCreateTime"`
	LessonPlanUpdatedAt time.Time      `json:"lesson_plan_updated_at" gorm:"column:lesson_plan_updated_at;autoUpdateTime"`
	LessonPlanDeletedAt gorm.DeletedAt `json:"-" gorm:"column:lesson_plan_deleted_at;index"`
}

func (LessonPlanModel) TableName() string { return "lesson_plans" }
