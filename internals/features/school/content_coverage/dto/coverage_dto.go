// file: internals/features/school/content_coverage/dto/coverage_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/content_coverage/model"
)

type CreateCoverageReportRequest struct {
	CoverageReportClassID   uuid.UUID `json:"coverage_report_class_id" validate:"required"`
	CoverageReportSubjectID uuid.UUID `json:"coverage_report_subject_id" validate:"required"`
	CoverageReportTopic     string    `json:"coverage_report_topic" validate:"required,min=2,max=255"`
	CoverageReportTaughtAt  time.Time `json:"coverage_report_taught_at" validate:"required"`
	CoverageReportNote      *string   `json:"coverage_report_note"`
}

func (r *CreateCoverageReportRequest) Normalize() {
	r.CoverageReportTopic = strings.TrimSpace(r.CoverageReportTopic)
}

func (r *CreateCoverageReportRequest) ToModel(schoolID, teacherID uuid.UUID) *model.CoverageReportModel {
	return &model.CoverageReportModel{
		CoverageReportSchoolID:  schoolID,
		CoverageReportTeacherID: teacherID,
		CoverageReportClassID:   r.CoverageReportClassID,
		CoverageReportSubjectID: r.CoverageReportSubjectID,
		CoverageReportTopic:     r.CoverageReportTopic,
		CoverageReportTaughtAt:  r.CoverageReportTaughtAt,
		CoverageReportNote:      r.CoverageReportNote,
		CoverageReportStatus:    model.CoverageStatusPending,
	}
}

type DecideCoverageReportRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Note   *string `json:"note" validate:"omitempty,max=255"`
}
