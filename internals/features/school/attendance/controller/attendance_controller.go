// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "sekolahku_backend/internals/features/school/attendance/dto"
	model "sekolahku_backend/internals/features/school/attendance/model"
	assignmentService "sekolahku_backend/internals/features/school/teachers/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /attendance — absen kelas untuk satu tanggal (idempoten per siswa)
func (ctrl *AttendanceController) Record(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	teacherID, err := helperAuth.GetTeacherID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.RecordAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// kelas harus termasuk grant guru
	refs, err := assignmentService.ResolveAssignedClasses(c.Context(), ctrl.DB, teacherID, schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas yang diampu")
	}
	if err := helperAuth.EnsureClassAllowed(body.ClassID, assignmentService.ClassIDsOf(refs)); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	day := body.Date.Truncate(24 * time.Hour)

	var session model.AttendanceSessionModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// sesi per (kelas, tanggal); submit ulang pakai sesi lama
		if err := tx.
			Where("attendance_session_class_id = ? AND attendance_session_date = ?", body.ClassID, day).
			First(&session).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			session = model.AttendanceSessionModel{
				AttendanceSessionSchoolID:  schoolID,
				AttendanceSessionClassID:   body.ClassID,
				AttendanceSessionSubjectID: body.SubjectID,
				AttendanceSessionDate:      day,
				AttendanceSessionTeacherID: teacherID,
			}
			if err := tx.Create(&session).Error; err != nil {
				return err
			}
		}

		// siswa harus anggota kelas ini
		studentIDs := make([]uuid.UUID, 0, len(body.Entries))
		for _, e := range body.Entries {
			studentIDs = append(studentIDs, e.StudentID)
		}
		var memberCount int64
		if err := tx.Table("students").
			Where("student_id IN ? AND student_class_id = ? AND student_school_id = ? AND student_deleted_at IS NULL",
				studentIDs, body.ClassID, schoolID).
			Count(&memberCount).Error; err != nil {
			return err
		}
		if memberCount != int64(len(studentIDs)) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Ada siswa yang bukan anggota kelas ini")
		}

		entries := make([]model.AttendanceEntryModel, 0, len(body.Entries))
		for _, e := range body.Entries {
			entries = append(entries, model.AttendanceEntryModel{
				AttendanceEntrySessionID: session.AttendanceSessionID,
				AttendanceEntryStudentID: e.StudentID,
				AttendanceEntryStatus:    e.Status,
				AttendanceEntryNote:      e.Note,
			})
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_entry_session_id"},
				{Name: "attendance_entry_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_entry_status",
				"attendance_entry_note",
				"attendance_entry_updated_at",
			}),
		}).Create(&entries).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonOK(c, "Absensi tersimpan", dto.AttendanceSessionResponse{
		AttendanceSessionID: session.AttendanceSessionID,
		ClassID:             session.AttendanceSessionClassID,
		SubjectID:           session.AttendanceSessionSubjectID,
		Date:                session.AttendanceSessionDate,
		TeacherID:           session.AttendanceSessionTeacherID,
		EntryCount:          len(body.Entries),
	})
}

// GET /attendance?class_id=&date=
func (ctrl *AttendanceController) GetSession(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	day, err := time.Parse("2006-01-02", strings.TrimSpace(c.Query("date")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date tidak valid (format YYYY-MM-DD)")
	}

	var session model.AttendanceSessionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_session_school_id = ? AND attendance_session_class_id = ? AND attendance_session_date = ?",
			schoolID, classID, day).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	var entries []model.AttendanceEntryModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attendance_entry_session_id = ?", session.AttendanceSessionID).
		Order("attendance_entry_created_at ASC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"session": session,
		"entries": entries,
	})
}
