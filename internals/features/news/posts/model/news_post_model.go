// file: internals/features/news/posts/model/news_post_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsPostModel: pengumuman/berita sekolah. Yang published tampil di
// halaman publik sekolah.
type NewsPostModel struct {
	NewsPostID       uuid.UUID `json:"news_post_id" gorm:"column:news_post_id;type:uuid;default:gen_random_uuid();primaryKey"`
	NewsPostSchoolID uuid.UUID `json:"news_post_school_id" gorm:"column:news_post_school_id;type:uuid;not null;index;uniqueIndex:uq_news_posts_slug_per_school,priority:1"`

	NewsPostAuthorID uuid.UUID `json:"news_post_author_id" gorm:"column:news_post_author_id;type:uuid;not null"`

	NewsPostTitle   string `json:"news_post_title" gorm:"column:news_post_title;type:varchar(200);not null"`
	NewsPostSlug    string `json:"news_post_slug" gorm:"column:news_post_slug;type:varchar(120);not null;uniqueIndex:uq_news_posts_slug_per_school,priority:2"`
	NewsPostContent string `json:"news_post_content" gorm:"column:news_post_content;type:text;not null"`

	NewsPostIsPublished bool       `json:"news_post_is_published" gorm:"column:news_post_is_published;not null;default:false;index"`
	NewsPostPublishedAt *time.Time `json:"news_post_published_at" gorm:"column:news_post_published_at"`

	NewsPostCreatedAt time.Time      `json:"news_post_created_at" gorm:"column:news_post_created_at;autoCreateTime"`
	NewsPostUpdatedAt time.Time      `json:"news_post_updated_at" gorm:"column:news_post_updated_at;autoUpdateTime"`
	NewsPostDeletedAt gorm.DeletedAt `json:"-" gorm:"column:news_post_deleted_at;index"`
}

func (NewsPostModel) TableName() string { return "news_posts" }
