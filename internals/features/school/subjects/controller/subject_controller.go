// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/subjects/dto"
	model "sekolahku_backend/internals/features/school/subjects/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /subjects
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.SubjectModel{}).
		Where("subject_school_id = ?", schoolID)

	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where("LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mapel")
	}

	var subjects []model.SubjectModel
	if err := q.Order("subject_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mapel")
	}

	return helper.JsonList(c, "", dto.FromModels(subjects),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /subjects (ADMIN/PRINCIPAL)
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := body.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_subjects_code_per_school") {
			return helper.JsonValidationError(c, map[string][]string{
				"subject_code": {"Kode mapel sudah dipakai"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat mapel")
	}

	return helper.JsonCreated(c, "Mapel berhasil dibuat", dto.FromModel(m))
}

// PATCH /subjects/:id (ADMIN/PRINCIPAL)
func (ctrl *SubjectController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "subject_id = ? AND subject_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data mapel")
	}

	body.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_subjects_code_per_school") {
			return helper.JsonValidationError(c, map[string][]string{
				"subject_code": {"Kode mapel sudah dipakai"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update mapel")
	}

	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", dto.FromModel(&m))
}

// DELETE /subjects/:id (ADMIN)
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
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
		Where("subject_id = ? AND subject_school_id = ?", id, schoolID).
		Delete(&model.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"subject_id": id})
}
