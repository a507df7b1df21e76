// file: internals/features/cbt/attempts/controller/attempt_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/cbt/attempts/dto"
	model "sekolahku_backend/internals/features/cbt/attempts/model"
	scoringService "sekolahku_backend/internals/features/cbt/attempts/service"
	questionModel "sekolahku_backend/internals/features/cbt/questions/model"
	testModel "sekolahku_backend/internals/features/cbt/tests/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttemptController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /attempts/available — ujian published untuk kelas siswa
func (ctrl *AttemptController) ListAvailable(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	studentID, err := helperAuth.GetStudentID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var row struct {
		StudentClassID *uuid.UUID
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Table("students").
		Select("student_class_id").
		Where("student_id = ? AND student_school_id = ? AND student_deleted_at IS NULL", studentID, schoolID).
		Scan(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}
	if row.StudentClassID == nil {
		return helper.JsonOK(c, "", []testModel.CBTTestModel{})
	}

	var tests []testModel.CBTTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("test_school_id = ? AND test_class_id = ? AND test_status = ? AND (test_ends_at IS NULL OR test_ends_at > ?)",
			schoolID, *row.StudentClassID, testModel.TestStatusPublished, time.Now()).
		Order("test_starts_at ASC NULLS FIRST").
		Find(&tests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar ujian")
	}

	return helper.JsonOK(c, "", tests)
}

// POST /attempts — mulai mengerjakan
func (ctrl *AttemptController) Start(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	studentID, err := helperAuth.GetStudentID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.StartAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var t testModel.CBTTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&t, "test_id = ? AND test_school_id = ? AND test_status = ?",
			body.TestID, schoolID, testModel.TestStatusPublished).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}
	if !t.WindowOpen(time.Now()) {
		return helper.JsonError(c, fiber.StatusConflict, "Ujian belum dibuka atau sudah berakhir")
	}

	// siswa harus anggota kelas ujian
	var memberCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("students").
		Where("student_id = ? AND student_school_id = ? AND student_class_id = ? AND student_deleted_at IS NULL",
			studentID, schoolID, t.TestClassID).
		Count(&memberCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan kelas")
	}
	if memberCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	attempt := model.CBTAttemptModel{
		AttemptSchoolID:  schoolID,
		AttemptTestID:    t.TestID,
		AttemptStudentID: studentID,
		AttemptStatus:    model.AttemptStatusInProgress,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&attempt).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_attempts_per_student") {
			return helper.JsonError(c, fiber.StatusConflict, "Kamu sudah pernah mengerjakan ujian ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memulai ujian")
	}

	// soal dikirim tanpa kunci jawaban
	var questions []questionModel.CBTQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("question_id, question_test_id, question_text, question_option_a, question_option_b, question_option_c, question_option_d, question_points").
		Where("question_test_id = ?", t.TestID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	for i := range questions {
		questions[i].QuestionCorrect = ""
	}

	return helper.JsonCreated(c, "Ujian dimulai", fiber.Map{
		"attempt":   attempt,
		"test":      t,
		"questions": questions,
	})
}

// POST /attempts/:id/submit
func (ctrl *AttemptController) Submit(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	studentID, err := helperAuth.GetStudentID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var attempt model.CBTAttemptModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			First(&attempt, "attempt_id = ? AND attempt_school_id = ? AND attempt_student_id = ?",
				id, schoolID, studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helperAuth.ErrNotFoundOrDenied()
			}
			return err
		}
		if attempt.AttemptStatus != model.AttemptStatusInProgress {
			return fiber.NewError(fiber.StatusConflict, "Jawaban sudah dikumpulkan")
		}

		var questions []questionModel.CBTQuestionModel
		if err := tx.
			Where("question_test_id = ?", attempt.AttemptTestID).
			Find(&questions).Error; err != nil {
			return err
		}

		score, maxScore := scoringService.Score(questions, body.Answers)

		raw, err := sonic.Marshal(body.Answers)
		if err != nil {
			return err
		}

		now := time.Now()
		attempt.AttemptStatus = model.AttemptStatusSubmitted
		attempt.AttemptAnswers = raw
		attempt.AttemptScore = &score
		attempt.AttemptMaxScore = &maxScore
		attempt.AttemptSubmittedAt = &now
		return tx.Save(&attempt).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengumpulkan jawaban")
	}

	return helper.JsonOK(c, "Jawaban terkumpul", attempt)
}

// GET /attempts/mine — hasil ujian siswa
func (ctrl *AttemptController) ListMine(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	studentID, err := helperAuth.GetStudentID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var attempts []model.CBTAttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attempt_school_id = ? AND attempt_student_id = ?", schoolID, studentID).
		Order("attempt_started_at DESC").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil ujian")
	}

	return helper.JsonOK(c, "", attempts)
}

// GET /tests/:testId/attempts — rekap nilai untuk guru pemilik ujian
func (ctrl *AttemptController) ListByTest(c *fiber.Ctx) error {
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

	testID, err := uuid.Parse(strings.TrimSpace(c.Params("testId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var t testModel.CBTTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&t, "test_id = ? AND test_school_id = ? AND test_teacher_id = ?",
			testID, schoolID, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}

	var attempts []model.CBTAttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("attempt_test_id = ?", t.TestID).
		Order("attempt_submitted_at DESC NULLS LAST").
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil rekap nilai")
	}

	return helper.JsonOK(c, "", attempts)
}
