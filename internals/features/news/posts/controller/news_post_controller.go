// file: internals/features/news/posts/controller/news_post_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/news/posts/dto"
	model "sekolahku_backend/internals/features/news/posts/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type NewsPostController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNewsPostController(db *gorm.DB) *NewsPostController {
	return &NewsPostController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Publik
======================= */

// GET /schools/:slug/news — hanya yang published
func (ctrl *NewsPostController) ListPublic(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug sekolah wajib diisi")
	}

	paging := helper.ResolvePaging(c, 10, 50)

	q := ctrl.DB.WithContext(c.Context()).
		Table("news_posts AS n").
		Joins("JOIN school_profiles s ON s.school_id = n.news_post_school_id AND s.school_deleted_at IS NULL").
		Where("s.school_slug = ? AND s.school_is_active = true", slug).
		Where("n.news_post_is_published = true AND n.news_post_deleted_at IS NULL")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}

	var posts []model.NewsPostModel
	if err := q.Select("n.*").
		Order("n.news_post_published_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}

	return helper.JsonList(c, "", posts,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* =======================
   Internal sekolah
======================= */

// GET /news
func (ctrl *NewsPostController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&model.NewsPostModel{}).
		Where("news_post_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}

	var posts []model.NewsPostModel
	if err := q.Order("news_post_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}

	return helper.JsonList(c, "", posts,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// POST /news
func (ctrl *NewsPostController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	authorID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var body dto.CreateNewsPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	body.Normalize()
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	base := helper.Slugify(body.NewsPostTitle, 120)
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "news_posts", "news_post_slug", base,
		func(q *gorm.DB) *gorm.DB { return q.Where("news_post_school_id = ?", schoolID) }, 120)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug berita")
	}

	m := body.ToModel(schoolID, authorID, slug)
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat berita")
	}

	return helper.JsonCreated(c, "Berita dibuat (draft)", m)
}

// PATCH /news/:id
func (ctrl *NewsPostController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateNewsPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.NewsPostModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&m, "news_post_id = ? AND news_post_school_id = ?", id, schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
	}

	body.Apply(&m)
	if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update berita")
	}

	return helper.JsonUpdated(c, "Berita diperbarui", m)
}

// POST /news/:id/publish dan /news/:id/unpublish
func (ctrl *NewsPostController) SetPublished(published bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID, err := helperAuth.GetSchoolID(c)
		if err != nil {
			fe := err.(*fiber.Error)
			return helper.JsonError(c, fe.Code, fe.Message)
		}

		id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
		}

		var m model.NewsPostModel
		if err := ctrl.DB.WithContext(c.Context()).
			First(&m, "news_post_id = ? AND news_post_school_id = ?", id, schoolID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil berita")
		}

		m.NewsPostIsPublished = published
		if published {
			now := time.Now()
			m.NewsPostPublishedAt = &now
		} else {
			m.NewsPostPublishedAt = nil
		}
		if err := ctrl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status berita")
		}

		msg := "Berita dipublikasikan"
		if !published {
			msg = "Berita ditarik dari publik"
		}
		return helper.JsonUpdated(c, msg, m)
	}
}

// DELETE /news/:id
func (ctrl *NewsPostController) Delete(c *fiber.Ctx) error {
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
		Where("news_post_id = ? AND news_post_school_id = ?", id, schoolID).
		Delete(&model.NewsPostModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus berita")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, helperAuth.MsgNotFoundOrDenied)
	}

	return helper.JsonDeleted(c, "Berita dihapus", fiber.Map{"news_post_id": id})
}
