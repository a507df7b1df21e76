// file: internals/features/news/posts/dto/news_post_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/news/posts/model"
)

type CreateNewsPostRequest struct {
	NewsPostTitle   string `json:"news_post_title" validate:"required,min=3,max=200"`
	NewsPostContent string `json:"news_post_content" validate:"required,min=10"`
}

func (r *CreateNewsPostRequest) Normalize() {
	r.NewsPostTitle = strings.TrimSpace(r.NewsPostTitle)
	r.NewsPostContent = strings.TrimSpace(r.NewsPostContent)
}

func (r *CreateNewsPostRequest) ToModel(schoolID, authorID uuid.UUID, slug string) *model.NewsPostModel {
	return &model.NewsPostModel{
		NewsPostSchoolID: schoolID,
		NewsPostAuthorID: authorID,
		NewsPostTitle:    r.NewsPostTitle,
		NewsPostSlug:     slug,
		NewsPostContent:  r.NewsPostContent,
	}
}

type UpdateNewsPostRequest struct {
	NewsPostTitle   *string `json:"news_post_title" validate:"omitempty,min=3,max=200"`
	NewsPostContent *string `json:"news_post_content" validate:"omitempty,min=10"`
}

func (r *UpdateNewsPostRequest) Apply(m *model.NewsPostModel) {
	if r.NewsPostTitle != nil {
		m.NewsPostTitle = strings.TrimSpace(*r.NewsPostTitle)
	}
	if r.NewsPostContent != nil {
		m.NewsPostContent = strings.TrimSpace(*r.NewsPostContent)
	}
}
