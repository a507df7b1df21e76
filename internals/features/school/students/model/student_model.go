// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentSchoolID uuid.UUID `json:"student_school_id" gorm:"column:student_school_id;type:uuid;not null;index;uniqueIndex:uq_students_admission_number_per_school,priority:1"`

	// Akun login siswa, boleh kosong (belum diaktifkan).
	StudentUserID *uuid.UUID `json:"student_user_id" gorm:"column:student_user_id;type:uuid;index"`

	StudentClassID *uuid.UUID `json:"student_class_id" gorm:"column:student_class_id;type:uuid;index"`

	StudentAdmissionNumber string `json:"student_admission_number" gorm:"column:student_admission_number;type:varchar(40);not null;uniqueIndex:uq_students_admission_number_per_school,priority:2"`

	StudentFullName string     `json:"student_full_name" gorm:"column:student_full_name;type:varchar(120);not null"`
	StudentGender   *string    `json:"student_gender" gorm:"column:student_gender;type:varchar(1)"` // L / P
	StudentBirthDate *time.Time `json:"student_birth_date" gorm:"column:student_birth_date;type:date"`

	StudentGuardianName  *string `json:"student_guardian_name" gorm:"column:student_guardian_name;type:varchar(120)"`
	StudentGuardianPhone *string `json:"student_guardian_phone" gorm:"column:student_guardian_phone;type:varchar(30)"`

	StudentIsActive bool `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"-" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }
