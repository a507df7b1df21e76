// file: internals/features/school/content_coverage/model/coverage_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CoverageStatusPending  = "pending"
	CoverageStatusApproved = "approved"
	CoverageStatusRejected = "rejected"
)

// CoverageReportModel: laporan ketuntasan materi dari guru,
// menunggu persetujuan kepala sekolah/admin.
type CoverageReportModel struct {
	CoverageReportID       uuid.UUID `json:"coverage_report_id" gorm:"column:coverage_report_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CoverageReportSchoolID uuid.UUID `json:"coverage_report_school_id" gorm:"column:coverage_report_school_id;type:uuid;not null;index"`

	CoverageReportTeacherID uuid.UUID `json:"coverage_report_teacher_id" gorm:"column:coverage_report_teacher_id;type:uuid;not null;index"`
	CoverageReportClassID   uuid.UUID `json:"coverage_report_class_id" gorm:"column:coverage_report_class_id;type:uuid;not null;index"`
	CoverageReportSubjectID uuid.UUID `json:"coverage_report_subject_id" gorm:"column:coverage_report_subject_id;type:uuid;not null"`

	CoverageReportTopic     string    `json:"coverage_report_topic" gorm:"column:coverage_report_topic;type:varchar(255);not null"`
	CoverageReportTaughtAt  time.Time `json:"coverage_report_taught_at" gorm:"column:coverage_report_taught_at;type:date;not null"`
	CoverageReportNote      *string   `json:"coverage_report_note" gorm:"column:coverage_report_note;type:text"`

	CoverageReportStatus       string     `json:"coverage_report_status" gorm:"column:coverage_report_status;type:varchar(10);not null;default:'pending';index"`
	CoverageReportDecidedBy    *uuid.UUID `json:"coverage_report_decided_by" gorm:"column:coverage_report_decided_by;type:uuid"`
	CoverageReportDecidedAt    *time.Time `json:"coverage_report_decided_at" gorm:"column:coverage_report_decided_at"`
	CoverageReportDecisionNote *string    `json:"coverage_report_decision_note" gorm:"column:coverage_report_decision_note;type:varchar(255)"`

	CoverageReportCreatedAt time.Time      `json:"coverage_report_created_at" gorm:"column:coverage_report_created_at;autoCreateTime"`
	CoverageReportUpdatedAt time.Time      `json:"coverage_report_updated_at" gorm:"column:coverage_report_updated_at;autoUpdateTime"`
	CoverageReportDeletedAt gorm.DeletedAt `json:"-" gorm:"column:coverage_report_deleted_at;index"`
}

func (CoverageReportModel) TableName() string { return "coverage_reports" }
