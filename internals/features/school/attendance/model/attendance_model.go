// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceSessionModel: satu pertemuan absensi (kelas + tanggal, opsional mapel).
type AttendanceSessionModel struct {
	AttendanceSessionID       uuid.UUID `json:"attendance_session_id" gorm:"column:attendance_session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceSessionSchoolID uuid.UUID `json:"attendance_session_school_id" gorm:"column:attendance_session_school_id;type:uuid;not null;index"`

	AttendanceSessionClassID   uuid.UUID  `json:"attendance_session_class_id" gorm:"column:attendance_session_class_id;type:uuid;not null;index;uniqueIndex:uq_attendance_sessions,priority:1"`
	AttendanceSessionSubjectID *uuid.UUID `json:"attendance_session_subject_id" gorm:"column:attendance_session_subject_id;type:uuid"`
	AttendanceSessionDate      time.Time  `json:"attendance_session_date" gorm:"column:attendance_session_date;type:date;not null;uniqueIndex:uq_attendance_sessions,priority:2"`

	AttendanceSessionTeacherID uuid.UUID `json:"attendance_session_teacher_id" gorm:"column:attendance_session_teacher_id;type:uuid;not null;index"`

	AttendanceSessionCreatedAt time.Time      `json:"attendance_session_created_at" gorm:"column:attendance_session_created_at;autoCreateTime"`
	AttendanceSessionUpdatedAt time.Time      `json:"attendance_session_updated_at" gorm:"column:attendance_session_updated_at;autoUpdateTime"`
	AttendanceSessionDeletedAt gorm.DeletedAt `json:"-" gorm:"column:attendance_session_deleted_at;index"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

const (
	AttendanceStatusPresent = "hadir"
	AttendanceStatusPermit  = "izin"
	AttendanceStatusSick    = "sakit"
	AttendanceStatusAbsent  = "alpha"
)

// AttendanceEntryModel: status per siswa. Input ulang = update (upsert).
type AttendanceEntryModel struct {
	AttendanceEntryID        uuid.UUID `json:"attendance_entry_id" gorm:"column:attendance_entry_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceEntrySessionID uuid.UUID `json:"attendance_entry_session_id" gorm:"column:attendance_entry_session_id;type:uuid;not null;index;uniqueIndex:uq_attendance_entries,priority:1"`
	AttendanceEntryStudentID uuid.UUID `json:"attendance_entry_student_id" gorm:"column:attendance_entry_student_id;type:uuid;not null;uniqueIndex:uq_attendance_entries,priority:2"`

	AttendanceEntryStatus string  `json:"attendance_entry_status" gorm:"column:attendance_entry_status;type:varchar(10);not null"`
	AttendanceEntryNote   *string `json:"attendance_entry_note" gorm:"column:attendance_entry_note;type:varchar(255)"`

	AttendanceEntryCreatedAt time.Time `json:"attendance_entry_created_at" gorm:"column:attendance_entry_created_at;autoCreateTime"`
	AttendanceEntryUpdatedAt time.Time `json:"attendance_entry_updated_at" gorm:"column:attendance_entry_updated_at;autoUpdateTime"`
}

func (AttendanceEntryModel) TableName() string { return "attendance_entries" }
