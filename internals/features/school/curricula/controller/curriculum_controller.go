// file: internals/features/school/curricula/controller/curriculum_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/curricula/dto"
	model "sekolahku_backend/internals/features/school/curricula/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type CurriculumController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCurriculumController(db *gorm.DB) *CurriculumController {
	return &CurriculumController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /curricula?subject_id=&level=&year=
func (ctrl *CurriculumController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.CurriculumModel{}).
		Where("curriculum_school_id = ?", schoolID)

	if s := strings.TrimSpace(c.Query("subject_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id tidak valid")
		}
		q = q.Where("curriculum_subject_id = ?", id)
	}
	if lvl := c.QueryInt("level", 0); lvl > 0 {
		q = q.Where("curriculum_level = ?", lvl)
	}
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		q = q.Where("curriculum_academic_year = ?", year)
	}

	var items []model.CurriculumModel
	if err := q.Order("curriculum_level ASC, curriculum_academic_year DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil silabus")
	}

	return helper.JsonOK(c, "", items)
}

// GET /curricula/:id
func (ctrl *CurriculumController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.CurriculumModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "curriculum_id = ? AND curriculum_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil silabus")
	}

	return helper.JsonOK(c, "", m)
}

// POST /curricula (ADMIN/PRINCIPAL)
func (ctrl *CurriculumController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateCurriculumRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := body.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_curricula") {
			return helper.JsonError(c, fiber.StatusConflict, "Silabus untuk mapel/jenjang/tahun ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat silabus")
	}

	return helper.JsonCreated(c, "Silabus berhasil dibuat", m)
}

// PUT /curricula/:id/topics (ADMIN/PRINCIPAL)
func (ctrl *CurriculumController) ReplaceTopics(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateCurriculumRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.CurriculumModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "curriculum_id = ? AND curriculum_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil silabus")
	}

	body.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update topik silabus")
	}

	return helper.JsonUpdated(c, "Topik silabus diperbarui", m)
}

// DELETE /curricula/:id (ADMIN)
func (ctrl *CurriculumController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("curriculum_id = ? AND curriculum_school_id = ?", id, schoolID).
		Delete(&model.CurriculumModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus silabus")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	return helper.JsonDeleted(c, "Silabus dihapus", fiber.Map{"curriculum_id": id})
}
