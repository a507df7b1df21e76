// file: internals/features/permissions/requests/model/permission_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PermissionStatusPending  = "pending"
	PermissionStatusApproved = "approved"
	PermissionStatusRejected = "rejected"
)

const (
	PermissionTypeLeave    = "izin"
	PermissionTypeSick     = "sakit"
	PermissionTypeOfficial = "dinas"
)

// PermissionRequestModel: pengajuan izin pegawai. Setelah dibuat,
// pengaju tidak bisa mengubah isinya; keputusan hanya sekali.
type PermissionRequestModel struct {
	PermissionRequestID       uuid.UUID `json:"permission_request_id" gorm:"column:permission_request_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PermissionRequestSchoolID uuid.UUID `json:"permission_request_school_id" gorm:"column:permission_request_school_id;type:uuid;not null;index"`

	PermissionRequestUserID uuid.UUID `json:"permission_request_user_id" gorm:"column:permission_request_user_id;type:uuid;not null;index"`

	PermissionRequestType      string    `json:"permission_request_type" gorm:"column:permission_request_type;type:varchar(10);not null"`
	PermissionRequestStartDate time.Time `json:"permission_request_start_date" gorm:"column:permission_request_start_date;type:date;not null"`
	PermissionRequestEndDate   time.Time `json:"permission_request_end_date" gorm:"column:permission_request_end_date;type:date;not null"`
	PermissionRequestReason    string    `json:"permission_request_reason" gorm:"column:permission_request_reason;type:text;not null"`

	// lampiran bebas bentuk (nama berkas, url, dsb)
	PermissionRequestAttachment datatypes.JSON `json:"permission_request_attachment" gorm:"column:permission_request_attachment;type:jsonb"`

	PermissionRequestStatus       string     `json:"permission_request_status" gorm:"column:permission_request_status;type:varchar(10);not null;default:'pending';index"`
	PermissionRequestDecidedBy    *uuid.UUID `json:"permission_request_decided_by" gorm:"column:permission_request_decided_by;type:uuid"`
	PermissionRequestDecidedAt    *time.Time `json:"permission_request_decided_at" gorm:"column:permission_request_decided_at"`
	PermissionRequestDecisionNote *string    `json:"permission_request_decision_note" gorm:"column:permission_request_decision_note;type:varchar(255)"`

	PermissionRequestCreatedAt time.Time      `json:"permission_request_created_at" gorm:"column:permission_request_created_at;autoCreateTime"`
	PermissionRequestUpdatedAt time.Time      `json:"permission_request_updated_at" gorm:"column:permission_request_updated_at;autoUpdateTime"`
	PermissionRequestDeletedAt gorm.DeletedAt `json:"-" gorm:"column:permission_request_deleted_at;index"`
}

func (PermissionRequestModel) TableName() string { return "permission_requests" }
