// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/teachers/dto"
	model "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Data guru
======================= */

// GET /teachers
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.TeacherModel{}).
		Where("teacher_school_id = ?", schoolID)

	if c.QueryBool("active_only", false) {
		q = q.Where("teacher_is_active = true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	var teachers []model.TeacherModel
	if err := q.Order("teacher_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	return helper.JsonList(c, "", dto.FromModels(teachers),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /teachers — daftarkan user sebagai guru
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := body.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_teachers_user") {
			return helper.JsonValidationError(c, map[string][]string{
				"teacher_user_id": {"User sudah terdaftar sebagai guru"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan guru")
	}

	return helper.JsonCreated(c, "Guru berhasil didaftarkan", dto.FromModel(m))
}

// PATCH /teachers/:id
func (ctrl *TeacherController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateTeacherRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "teacher_id = ? AND teacher_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data guru")
	}

	body.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update data guru")
	}

	return helper.JsonUpdated(c, "Data guru diperbarui", dto.FromModel(&m))
}

/* =======================
   Grant mapel & wali kelas
======================= */

// GET /teachers/:id/assignments
func (ctrl *TeacherController) ListAssignments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	teacherID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var subjectGrants []model.SubjectAssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("subject_assignment_teacher_id = ? AND subject_assignment_school_id = ?", teacherID, schoolID).
		Order("subject_assignment_created_at ASC").
		Find(&subjectGrants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil grant mapel")
	}

	var homerooms []model.HomeroomAssignmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("homeroom_assignment_teacher_id = ? AND homeroom_assignment_school_id = ?", teacherID, schoolID).
		Find(&homerooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wali kelas")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"subject_assignments":  subjectGrants,
		"homeroom_assignments": homerooms,
	})
}

// POST /assignments/subjects
func (ctrl *TeacherController) CreateSubjectAssignment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateSubjectAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// guru yang di-grant harus guru aktif di sekolah ini
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.TeacherModel{}).
		Where("teacher_id = ? AND teacher_school_id = ? AND teacher_is_active = true",
			body.SubjectAssignmentTeacherID, schoolID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa data guru")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	m := body.ToModel(schoolID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_subject_assignments") {
			return helper.JsonError(c, fiber.StatusConflict, "Grant mapel sudah ada")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Mapel atau kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grant mapel")
	}

	return helper.JsonCreated(c, "Grant mapel dibuat", m)
}

// DELETE /assignments/subjects/:id
func (ctrl *TeacherController) DeleteSubjectAssignment(c *fiber.Ctx) error {
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
		Where("subject_assignment_id = ? AND subject_assignment_school_id = ?", id, schoolID).
		Delete(&model.SubjectAssignmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus grant mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	return helper.JsonDeleted(c, "Grant mapel dihapus", fiber.Map{"subject_assignment_id": id})
}

// PUT /assignments/homerooms — satu kelas satu wali, set ulang = ganti wali
func (ctrl *TeacherController) SetHomeroom(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.SetHomeroomRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var out model.HomeroomAssignmentModel
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TeacherModel{}).
			Where("teacher_id = ? AND teacher_school_id = ? AND teacher_is_active = true",
				body.HomeroomAssignmentTeacherID, schoolID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return helperAuth.ErrNotFoundOrDenied()
		}

		if err := tx.
			Where("homeroom_assignment_class_id = ? AND homeroom_assignment_school_id = ?",
				body.HomeroomAssignmentClassID, schoolID).
			Delete(&model.HomeroomAssignmentModel{}).Error; err != nil {
			return err
		}

		out = model.HomeroomAssignmentModel{
			HomeroomAssignmentSchoolID:  schoolID,
			HomeroomAssignmentTeacherID: body.HomeroomAssignmentTeacherID,
			HomeroomAssignmentClassID:   body.HomeroomAssignmentClassID,
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal set wali kelas")
	}

	return helper.JsonUpdated(c, "Wali kelas di-set", out)
}
