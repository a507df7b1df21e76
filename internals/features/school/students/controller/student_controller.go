// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/students/dto"
	model "sekolahku_backend/internals/features/school/students/model"
	studentService "sekolahku_backend/internals/features/school/students/service"
	assignmentService "sekolahku_backend/internals/features/school/teachers/service"
	"sekolahku_backend/internals/constants"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// scopeByRole: guru hanya boleh melihat siswa dari kelas yang diampu.
func (ctrl *StudentController) scopeByRole(c *fiber.Ctx, q *gorm.DB, schoolID uuid.UUID) (*gorm.DB, error) {
	ids, isTeacher, err := ctrl.teacherAllowedClassIDs(c, schoolID)
	if err != nil {
		return nil, err
	}
	if !isTeacher {
		return q, nil
	}
	if len(ids) == 0 {
		// tidak ada grant = tidak ada siswa yang terlihat
		return q.Where("1 = 0"), nil
	}
	return q.Where("student_class_id IN ?", ids), nil
}

// teacherAllowedClassIDs: untuk caller guru, ambil himpunan kelas yang
// diampu. Caller non-guru (TU ke atas) tidak dibatasi kelas.
func (ctrl *StudentController) teacherAllowedClassIDs(c *fiber.Ctx, schoolID uuid.UUID) ([]uuid.UUID, bool, error) {
	role, err := helperAuth.GetRole(c)
	if err != nil {
		return nil, false, err
	}
	if role != constants.RoleTeacher {
		return nil, false, nil
	}

	teacherID, err := helperAuth.GetTeacherID(c)
	if err != nil {
		return nil, true, err
	}
	refs, err := assignmentService.ResolveAssignedClasses(c.Context(), ctrl.DB, teacherID, schoolID)
	if err != nil {
		return nil, true, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kelas yang diampu")
	}
	return assignmentService.ClassIDsOf(refs), true, nil
}

// GET /students?class_id=&q=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)

	q, err = ctrl.scopeByRole(c, q, schoolID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, perr := uuid.Parse(classID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("student_class_id = ?", id)
	}
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where("LOWER(student_full_name) LIKE ? OR LOWER(student_admission_number) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var students []model.StudentModel
	if err := q.Order("student_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonList(c, "", dto.FromModels(students),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)
	q, err = ctrl.scopeByRole(c, q, schoolID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var m model.StudentModel
	if err := q.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonOK(c, "", dto.FromModel(&m))
}

// POST /students — guru (kelas diampu) atau TU ke atas
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	allowed, isTeacher, err := ctrl.teacherAllowedClassIDs(c, schoolID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if isTeacher {
		if err := studentService.EnsureWritableClass(nil, body.StudentClassID, allowed); err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
	}

	m := body.ToModel(schoolID)
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if m.StudentClassID != nil {
			var count int64
			if err := tx.Table("classes").
				Where("class_id = ? AND class_school_id = ? AND class_deleted_at IS NULL",
					*m.StudentClassID, schoolID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return helperAuth.ErrNotFoundOrDenied()
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsUniqueViolation(err, "uq_students_admission_number_per_school") {
			return helper.JsonValidationError(c, map[string][]string{
				"student_admission_number": {"Nomor induk sudah terdaftar di sekolah ini"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.FromModel(m))
}

// PATCH /students/:id — guru (kelas asal & tujuan diampu) atau TU ke atas
func (ctrl *StudentController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "student_id = ? AND student_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	allowed, isTeacher, err := ctrl.teacherAllowedClassIDs(c, schoolID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if isTeacher {
		if err := studentService.EnsureWritableClass(m.StudentClassID, body.StudentClassID, allowed); err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
	}

	body.Apply(&m)
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// kelas tujuan harus kelas milik sekolah ini
		if body.StudentClassID != nil {
			var count int64
			if err := tx.Table("classes").
				Where("class_id = ? AND class_school_id = ? AND class_deleted_at IS NULL",
					*body.StudentClassID, schoolID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return helperAuth.ErrNotFoundOrDenied()
			}
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsUniqueViolation(err, "uq_students_admission_number_per_school") {
			return helper.JsonValidationError(c, map[string][]string{
				"student_admission_number": {"Nomor induk sudah terdaftar di sekolah ini"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data siswa")
	}

	return helper.JsonUpdated(c, "Data siswa diperbarui", dto.FromModel(&m))
}

// DELETE /students/:id (ADMIN)
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
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
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	return helper.JsonDeleted(c, "Data siswa dihapus", fiber.Map{"student_id": id})
}
