// file: internals/features/cbt/tests/controller/cbt_test_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/cbt/tests/dto"
	model "sekolahku_backend/internals/features/cbt/tests/model"
	testService "sekolahku_backend/internals/features/cbt/tests/service"
	assignmentService "sekolahku_backend/internals/features/school/teachers/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type CBTTestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCBTTestController(db *gorm.DB) *CBTTestController {
	return &CBTTestController{
		DB:        db,
		Validator: validator.New(),
	}
}

// findOwnedTest: ujian hanya terlihat oleh guru pemiliknya; pesan
// penolakan tidak membedakan "tidak ada" dan "bukan milik".
func (ctrl *CBTTestController) findOwnedTest(c *fiber.Ctx, id uuid.UUID) (*model.CBTTestModel, error) {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		return nil, err
	}
	teacherID, err := helperAuth.GetTeacherID(c)
	if err != nil {
		return nil, err
	}

	var m model.CBTTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "test_id = ? AND test_school_id = ? AND test_teacher_id = ?",
			id, schoolID, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helperAuth.ErrNotFoundOrDenied()
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}
	return &m, nil
}

// GET /tests — daftar ujian milik guru
func (ctrl *CBTTestController) List(c *fiber.Ctx) error {
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

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.CBTTestModel{}).
		Where("test_school_id = ? AND test_teacher_id = ?", schoolID, teacherID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("test_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}

	var tests []model.CBTTestModel
	if err := q.Order("test_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&tests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}

	return helper.JsonList(c, "", tests,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /tests/:id
func (ctrl *CBTTestController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := ctrl.findOwnedTest(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	return helper.JsonOK(c, "", m)
}

// POST /tests (TEACHER)
func (ctrl *CBTTestController) Create(c *fiber.Ctx) error {
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

	var body dto.CreateTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if fieldErrs := body.ValidateWindow(); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	refs, err := assignmentService.ResolveAssignedClasses(c.Context(), ctrl.DB, teacherID, schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas yang diampu")
	}
	if err := helperAuth.EnsureClassAllowed(body.TestClassID, assignmentService.ClassIDsOf(refs)); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// Mapel juga harus mapel yang diampu guru ini
	var subjectGrants int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("subject_assignments").
		Where("subject_assignment_teacher_id = ? AND subject_assignment_school_id = ? AND subject_assignment_subject_id = ?",
			teacherID, schoolID, body.TestSubjectID).
		Count(&subjectGrants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa mapel yang diampu")
	}
	if subjectGrants == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	m := body.ToModel(schoolID, teacherID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat ujian")
	}

	return helper.JsonCreated(c, "Ujian berhasil dibuat (draft)", m)
}

// PATCH /tests/:id — hanya pemilik, hanya draft
func (ctrl *CBTTestController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m, err := ctrl.findOwnedTest(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if m.TestStatus != model.TestStatusDraft {
		return helper.JsonError(c, fiber.StatusConflict, "Ujian hanya bisa diedit saat berstatus draft")
	}

	body.Apply(m)
	if !m.WindowOrdered() {
		return helper.JsonValidationError(c, map[string][]string{
			"test_ends_at": {"Jadwal selesai harus setelah jadwal mulai"},
		})
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update ujian")
	}

	return helper.JsonUpdated(c, "Ujian diperbarui", m)
}

// POST /tests/:id/status — publish / unpublish / close
func (ctrl *CBTTestController) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.ChangeStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m, err := ctrl.findOwnedTest(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var questionCount int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("cbt_questions").
		Where("question_test_id = ? AND question_deleted_at IS NULL", m.TestID).
		Count(&questionCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung soal")
	}

	if err := testService.ValidateTransition(m.TestStatus, body.Status, questionCount); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m.TestStatus = body.Status
	if err := ctrl.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status ujian")
	}

	return helper.JsonUpdated(c, "Status ujian diubah", m)
}

// DELETE /tests/:id — hanya draft yang boleh dihapus
func (ctrl *CBTTestController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	m, err := ctrl.findOwnedTest(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if m.TestStatus != model.TestStatusDraft {
		return helper.JsonError(c, fiber.StatusConflict, "Hanya ujian draft yang bisa dihapus")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ujian")
	}

	return helper.JsonDeleted(c, "Ujian dihapus", fiber.Map{"test_id": m.TestID})
}
