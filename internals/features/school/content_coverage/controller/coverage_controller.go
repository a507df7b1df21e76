// file: internals/features/school/content_coverage/controller/coverage_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/school/content_coverage/dto"
	model "sekolahku_backend/internals/features/school/content_coverage/model"
	coverageService "sekolahku_backend/internals/features/school/content_coverage/service"
	assignmentService "sekolahku_backend/internals/features/school/teachers/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type CoverageController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCoverageController(db *gorm.DB) *CoverageController {
	return &CoverageController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /coverage-reports?status=&class_id=
func (ctrl *CoverageController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	role, err := helperAuth.GetRole(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.CoverageReportModel{}).
		Where("coverage_report_school_id = ?", schoolID)

	if role == constants.RoleTeacher {
		teacherID, err := helperAuth.GetTeacherID(c)
		if err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		q = q.Where("coverage_report_teacher_id = ?", teacherID)
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("coverage_report_status = ?", status)
	}
	if s := strings.TrimSpace(c.Query("class_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("coverage_report_class_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan materi")
	}

	var reports []model.CoverageReportModel
	if err := q.Order("coverage_report_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan materi")
	}

	return helper.JsonList(c, "", reports,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /coverage-reports (TEACHER)
func (ctrl *CoverageController) Create(c *fiber.Ctx) error {
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

	var body dto.CreateCoverageReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	refs, err := assignmentService.ResolveAssignedClasses(c.Context(), ctrl.DB, teacherID, schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas yang diampu")
	}
	if err := helperAuth.EnsureClassAllowed(body.CoverageReportClassID, assignmentService.ClassIDsOf(refs)); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	m := body.ToModel(schoolID, teacherID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat laporan materi")
	}

	return helper.JsonCreated(c, "Laporan materi terkirim, menunggu persetujuan", m)
}

// POST /coverage-reports/:id/decision (PRINCIPAL/ADMIN)
func (ctrl *CoverageController) Decide(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	approverID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.DecideCoverageReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.CoverageReportModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			First(&m,"coverage_report_id = ? AND coverage_report_school_id = ?", id, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helperAuth.ErrNotFoundOrDenied()
			}
			return err
		}
		if err := coverageService.CanDecide(m.CoverageReportStatus, body.Status); err != nil {
			return err
		}

		now := time.Now()
		m.CoverageReportStatus = body.Status
		m.CoverageReportDecidedBy = &approverID
		m.CoverageReportDecidedAt = &now
		m.CoverageReportDecisionNote = body.Note
		return tx.Save(&m).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses keputusan")
	}

	return helper.JsonUpdated(c, "Keputusan tersimpan", m)
}
