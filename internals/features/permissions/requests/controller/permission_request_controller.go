// file: internals/features/permissions/requests/controller/permission_request_controller.go
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
	dto "sekolahku_backend/internals/features/permissions/requests/dto"
	model "sekolahku_backend/internals/features/permissions/requests/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type PermissionRequestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPermissionRequestController(db *gorm.DB) *PermissionRequestController {
	return &PermissionRequestController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /permission-requests — pengaju lihat miliknya, approver lihat semua
func (ctrl *PermissionRequestController) List(c *fiber.Ctx) error {
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
		Model(&model.PermissionRequestModel{}).
		Where("permission_request_school_id = ?", schoolID)

	if !helperAuth.RoleIn(role, constants.ApproverRoles) {
		userID, err := helperAuth.GetUserID(c)
		if err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		q = q.Where("permission_request_user_id = ?", userID)
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("permission_request_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan izin")
	}

	var requests []model.PermissionRequestModel
	if err := q.Order("permission_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengajuan izin")
	}

	return helper.JsonList(c, "", requests,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /permission-requests
func (ctrl *PermissionRequestController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreatePermissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if fieldErrs := body.ValidateDates(); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := body.ToModel(schoolID, userID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengajuan izin")
	}

	return helper.JsonCreated(c, "Pengajuan izin terkirim", m)
}

// POST /permission-requests/:id/decision (PRINCIPAL/ADMIN) — sekali saja
func (ctrl *PermissionRequestController) Decide(c *fiber.Ctx) error {
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

	var body dto.DecidePermissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.PermissionRequestModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			First(&m, "permission_request_id = ? AND permission_request_school_id = ?", id, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helperAuth.ErrNotFoundOrDenied()
			}
			return err
		}
		if m.PermissionRequestStatus != model.PermissionStatusPending {
			return fiber.NewError(fiber.StatusConflict, "Pengajuan sudah diputuskan dan tidak bisa diubah")
		}
		// approver tidak boleh memutus pengajuannya sendiri
		if m.PermissionRequestUserID == approverID {
			return fiber.NewError(fiber.StatusForbidden, "Tidak bisa memutus pengajuan sendiri")
		}

		now := time.Now()
		m.PermissionRequestStatus = body.Status
		m.PermissionRequestDecidedBy = &approverID
		m.PermissionRequestDecidedAt = &now
		m.PermissionRequestDecisionNote = body.Note
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
