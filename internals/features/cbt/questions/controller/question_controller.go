// file: internals/features/cbt/questions/controller/question_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/cbt/questions/dto"
	model "sekolahku_backend/internals/features/cbt/questions/model"
	importService "sekolahku_backend/internals/features/cbt/questions/service"
	testModel "sekolahku_backend/internals/features/cbt/tests/model"
	testService "sekolahku_backend/internals/features/cbt/tests/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type QuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// findOwnedTest: soal selalu lewat ujian milik guru yang login.
func (ctrl *QuestionController) findOwnedTest(c *fiber.Ctx, testID uuid.UUID) (*testModel.CBTTestModel, error) {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return nil, err
	}
	teacherID, err := helperAuth.GetTeacherID(c)
	if err != nil {
		return nil, err
	}

	var t testModel.CBTTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&t, "test_id = ? AND test_school_id = ? AND test_teacher_id = ?",
			testID, schoolID, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helperAuth.ErrNotFoundOrDenied()
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}
	return &t, nil
}

// GET /tests/:testId/questions
func (ctrl *QuestionController) List(c *fiber.Ctx) error {
	testID, err := uuid.Parse(strings.TrimSpace(c.Params("testId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	t, err := ctrl.findOwnedTest(c, testID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var questions []model.CBTQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("question_test_id = ?", t.TestID).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	return helper.JsonOK(c, "", questions)
}

// POST /tests/:testId/questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	testID, err := uuid.Parse(strings.TrimSpace(c.Params("testId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	t, err := ctrl.findOwnedTest(c, testID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if err := testService.CanModifyQuestions(t.TestStatus); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := body.ToModel(t.TestSchoolID, t.TestID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah soal")
	}

	return helper.JsonCreated(c, "Soal ditambahkan", m)
}

// PATCH /tests/:testId/questions/:id
func (ctrl *QuestionController) Patch(c *fiber.Ctx) error {
	testID, err := uuid.Parse(strings.TrimSpace(c.Params("testId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}
	questionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	t, err := ctrl.findOwnedTest(c, testID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if err := testService.CanModifyQuestions(t.TestStatus); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var m model.CBTQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "question_id = ? AND question_test_id = ?", questionID, t.TestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	body.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update soal")
	}

	return helper.JsonUpdated(c, "Soal diperbarui", m)
}

// DELETE /tests/:testId/questions/:id
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	testID, err := uuid.Parse(strings.TrimSpace(c.Params("testId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}
	questionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID soal tidak valid")
	}

	t, err := ctrl.findOwnedTest(c, testID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if err := testService.CanModifyQuestions(t.TestStatus); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("question_id = ? AND question_test_id = ?", questionID, t.TestID).
		Delete(&model.CBTQuestionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	return helper.JsonDeleted(c, "Soal dihapus", fiber.Map{"question_id": questionID})
}

/* =======================
   Bank soal
======================= */

// GET /question-bank?subject_id=
func (ctrl *QuestionController) ListBank(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.BankQuestionModel{}).
		Where("bank_question_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("subject_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		q = q.Where("bank_question_subject_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil bank soal")
	}

	var items []model.BankQuestionModel
	if err := q.Order("bank_question_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil bank soal")
	}

	return helper.JsonList(c, "", items,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /question-bank
func (ctrl *QuestionController) CreateBank(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateBankQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := body.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah soal ke bank")
	}

	return helper.JsonCreated(c, "Soal masuk bank", m)
}

// POST /tests/:testId/questions/import — impor dari bank, duplikat ke-skip
func (ctrl *QuestionController) ImportFromBank(c *fiber.Ctx) error {
	testID, err := uuid.Parse(strings.TrimSpace(c.Params("testId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ujian tidak valid")
	}

	var body dto.ImportFromBankRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	t, err := ctrl.findOwnedTest(c, testID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if err := testService.CanModifyQuestions(t.TestStatus); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var summary importService.ImportSummary
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var bankQuestions []model.BankQuestionModel
		if err := tx.
			Where("bank_question_id IN ?", body.BankQuestionIDs).
			Find(&bankQuestions).Error; err != nil {
			return err
		}

		var existing []model.CBTQuestionModel
		if err := tx.Select("question_text").
			Where("question_test_id = ?", t.TestID).
			Find(&existing).Error; err != nil {
			return err
		}
		existingTexts := make(map[string]struct{}, len(existing))
		for _, q := range existing {
			existingTexts[strings.TrimSpace(q.QuestionText)] = struct{}{}
		}

		newQuestions, s := importService.BuildImport(bankQuestions, t.TestSchoolID, t.TestID, existingTexts)
		summary = s
		if len(newQuestions) == 0 {
			return nil
		}
		return tx.Create(&newQuestions).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengimpor soal")
	}

	// Alasan skip hanya untuk log server; client cuma dapat agregat.
	for _, sk := range summary.Skipped {
		log.Printf("[INFO] import soal ke ujian %s: bank %s di-skip (%s)", t.TestID, sk.BankQuestionID, sk.Reason)
	}

	return helper.JsonOK(c, "Impor selesai", summary.Counts())
}
