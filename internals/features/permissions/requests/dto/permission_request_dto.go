// file: internals/features/permissions/requests/dto/permission_request_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/permissions/requests/model"
)

type CreatePermissionRequest struct {
	Type       string         `json:"type" validate:"required,oneof=izin sakit dinas"`
	StartDate  time.Time      `json:"start_date" validate:"required"`
	EndDate    time.Time      `json:"end_date" validate:"required"`
	Reason     string         `json:"reason" validate:"required,min=5"`
	Attachment datatypes.JSON `json:"attachment"`
}

func (r *CreatePermissionRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
}

// ValidateDates: tanggal selesai tidak boleh sebelum tanggal mulai
// (izin satu hari berarti start == end).
func (r *CreatePermissionRequest) ValidateDates() map[string][]string {
	if r.EndDate.Before(r.StartDate) {
		return map[string][]string{
			"end_date": {"Tanggal selesai tidak boleh sebelum tanggal mulai"},
		}
	}
	return nil
}

func (r *CreatePermissionRequest) ToModel(schoolID, userID uuid.UUID) *model.PermissionRequestModel {
	return &model.PermissionRequestModel{
		PermissionRequestSchoolID:   schoolID,
		PermissionRequestUserID:     userID,
		PermissionRequestType:       r.Type,
		PermissionRequestStartDate:  r.StartDate,
		PermissionRequestEndDate:    r.EndDate,
		PermissionRequestReason:     r.Reason,
		PermissionRequestAttachment: r.Attachment,
		PermissionRequestStatus:     model.PermissionStatusPending,
	}
}

type DecidePermissionRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Note   *string `json:"note" validate:"omitempty,max=255"`
}
