// file: internals/features/school/lesson_plans/controller/lesson_plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	dto "sekolahku_backend/internals/features/school/lesson_plans/dto"
	model "sekolahku_backend/internals/features/school/lesson_plans/model"
	assignmentService "sekolahku_backend/internals/features/school/teachers/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type LessonPlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLessonPlanController(db *gorm.DB) *LessonPlanController {
	return &LessonPlanController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /lesson-plans — guru lihat miliknya, kepala sekolah/admin lihat semua
func (ctrl *LessonPlanController) List(c *fiber.Ctx) error {
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
		Model(&model.LessonPlanModel{}).
		Where("lesson_plan_school_id = ?", schoolID)

	if role == constants.RoleTeacher {
		teacherID, err := helperAuth.GetTeacherID(c)
		if err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		q = q.Where("lesson_plan_teacher_id = ?", teacherID)
	}

	if s := strings.TrimSpace(c.Query("class_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("lesson_plan_class_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil RPP")
	}

	var plans []model.LessonPlanModel
	if err := q.Order("lesson_plan_planned_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil RPP")
	}

	return helper.JsonList(c, "", plans,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /lesson-plans (TEACHER)
func (ctrl *LessonPlanController) Create(c *fiber.Ctx) error {
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

	var body dto.CreateLessonPlanRequest
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
	if err := helperAuth.EnsureClassAllowed(body.LessonPlanClassID, assignmentService.ClassIDsOf(refs)); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// Mapel juga harus mapel yang diampu guru ini
	var subjectGrants int64
	if err := ctrl.DB.WithContext(c.Context()).
		Table("subject_assignments").
		Where("subject_assignment_teacher_id = ? AND subject_assignment_school_id = ? AND subject_assignment_subject_id = ?",
			teacherID, schoolID, body.LessonPlanSubjectID).
		Count(&subjectGrants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa mapel yang diampu")
	}
	if subjectGrants == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	m := body.ToModel(schoolID, teacherID)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat RPP")
	}

	return helper.JsonCreated(c, "RPP berhasil dibuat", m)
}

// PATCH /lesson-plans/:id — hanya pemilik
func (ctrl *LessonPlanController) Patch(c *fiber.Ctx) error {
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

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateLessonPlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.LessonPlanModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "lesson_plan_id = ? AND lesson_plan_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil RPP")
	}
	if err := helperAuth.EnsureOwner(teacherID, m.LessonPlanTeacherID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	body.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update RPP")
	}

	return helper.JsonUpdated(c, "RPP diperbarui", m)
}

// DELETE /lesson-plans/:id — hanya pemilik
func (ctrl *LessonPlanController) Delete(c *fiber.Ctx) error {
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

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("lesson_plan_id = ? AND lesson_plan_school_id = ? AND lesson_plan_teacher_id = ?",
			id, schoolID, teacherID).
		Delete(&model.LessonPlanModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus RPP")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	return helper.JsonDeleted(c, "RPP dihapus", fiber.Map{"lesson_plan_id": id})
}
