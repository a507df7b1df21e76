// file: internals/features/school/lesson_plans/dto/lesson_plan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/lesson_plans/model"
)

type CreateLessonPlanRequest struct {
	LessonPlanClassID      uuid.UUID  `json:"lesson_plan_class_id" validate:"required"`
	LessonPlanSubjectID    uuid.UUID  `json:"lesson_plan_subject_id" validate:"required"`
	LessonPlanCurriculumID *uuid.UUID `json:"lesson_plan_curriculum_id"`
	LessonPlanTitle        string     `json:"lesson_plan_title" validate:"required,min=3,max=200"`
	LessonPlanPlannedDate  time.Time  `json:"lesson_plan_planned_date" validate:"required"`
	LessonPlanObjectives   string     `json:"lesson_plan_objectives" validate:"required"`
	LessonPlanMaterials    *string    `json:"lesson_plan_materials"`
}

func (r *CreateLessonPlanRequest) Normalize() {
	r.LessonPlanTitle = strings.TrimSpace(r.LessonPlanTitle)
	r.LessonPlanObjectives = strings.TrimSpace(r.LessonPlanObjectives)
}

func (r *CreateLessonPlanRequest) ToModel(schoolID, teacherID uuid.UUID) *model.LessonPlanModel {
	return &model.LessonPlanModel{
		LessonPlanSchoolID:     schoolID,
		LessonPlanTeacherID:    teacherID,
		LessonPlanClassID:      r.LessonPlanClassID,
		LessonPlanSubjectID:    r.LessonPlanSubjectID,
		LessonPlanCurriculumID: r.LessonPlanCurriculumID,
		LessonPlanTitle:        r.LessonPlanTitle,
		LessonPlanPlannedDate:  r.LessonPlanPlannedDate,
		LessonPlanObjectives:   r.LessonPlanObjectives,
		LessonPlanMaterials:    r.LessonPlanMaterials,
	}
}

type UpdateLessonPlanRequest struct {
	LessonPlanTitle       *string    `json:"lesson_plan_title" validate:"omitempty,min=3,max=200"`
	LessonPlanPlannedDate *time.Time `json:"lesson_plan_planned_date"`
	LessonPlanObjectives  *string    `json:"lesson_plan_objectives" validate:"omitempty,min=1"`
	LessonPlanMaterials   *string    `json:"lesson_plan_materials"`
}

func (r *UpdateLessonPlanRequest) Apply(m *model.LessonPlanModel) {
	if r.LessonPlanTitle != nil {
		m.LessonPlanTitle = strings.TrimSpace(*r.LessonPlanTitle)
	}
	if r.LessonPlanPlannedDate != nil {
		m.LessonPlanPlannedDate = *r.LessonPlanPlannedDate
	}
	if r.LessonPlanObjectives != nil {
		m.LessonPlanObjectives = strings.TrimSpace(*r.LessonPlanObjectives)
	}
	if r.LessonPlanMaterials != nil {
		m.LessonPlanMaterials = r.LessonPlanMaterials
	}
}
