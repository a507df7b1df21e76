// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceEntryInput struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=hadir izin sakit alpha"`
	Note      *string   `json:"note" validate:"omitempty,max=255"`
}

// RecordAttendanceRequest: satu kali submit untuk satu kelas satu tanggal.
// Submit ulang tanggal yang sama = koreksi (upsert per siswa).
type RecordAttendanceRequest struct {
	ClassID   uuid.UUID              `json:"class_id" validate:"required"`
	SubjectID *uuid.UUID             `json:"subject_id"`
	Date      time.Time              `json:"date" validate:"required"`
	Entries   []AttendanceEntryInput `json:"entries" validate:"required,min=1,dive"`
}

type AttendanceSessionResponse struct {
	AttendanceSessionID uuid.UUID  `json:"attendance_session_id"`
	ClassID             uuid.UUID  `json:"class_id"`
	SubjectID           *uuid.UUID `json:"subject_id,omitempty"`
	Date                time.Time  `json:"date"`
	TeacherID           uuid.UUID  `json:"teacher_id"`
	EntryCount          int        `json:"entry_count"`
}
