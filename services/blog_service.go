package services

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/soham2710/bulemo/models"
	"github.com/soham2710/bulemo/utils"
)

type BlogService struct {
	DB *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{DB: db}
}

type BlogCreateInput struct {
	Title         string
	Content       string
	Excerpt       string
	Status        string
	FeaturedImage string
	Tags          datatypes.JSON
	Author        string
}

// BlogUpdateInput carries partial-update semantics: nil pointers leave the
// stored value untouched.
type BlogUpdateInput struct {
	Title         *string
	Content       *string
	Excerpt       *string
	Status        *string
	FeaturedImage *string
	Tags          datatypes.JSON
}

type BlogListResult struct {
	Posts []models.BlogPost
	Total int64
}

// List returns posts sorted by creation time descending. Drafts are included
// only when the caller is an authenticated admin.
func (s *BlogService) List(page, limit int, includeDrafts bool) (BlogListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	countQuery := s.DB.Model(&models.BlogPost{})
	if !includeDrafts {
		countQuery = countQuery.Where("status = ?", models.BlogStatusPublished)
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return BlogListResult{}, err
	}

	listQuery := s.DB.Model(&models.BlogPost{})
	if !includeDrafts {
		listQuery = listQuery.Where("status = ?", models.BlogStatusPublished)
	}

	var posts []models.BlogPost
	if err := listQuery.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return BlogListResult{}, err
	}

	return BlogListResult{Posts: posts, Total: total}, nil
}

// GetByIDOrSlug tries the identifier as a numeric id first and falls back to
// a slug lookup. A draft is reported as not-found to non-admin callers so its
// existence never leaks.
func (s *BlogService) GetByIDOrSlug(identifier string, includeDrafts bool) (models.BlogPost, error) {
	var post models.BlogPost

	found := false
	if id, convErr := strconv.ParseUint(identifier, 10, 64); convErr == nil {
		err := s.DB.First(&post, uint(id)).Error
		if err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BlogPost{}, err
		}
	}

	if !found {
		err := s.DB.Where("slug = ?", identifier).First(&post).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BlogPost{}, ErrNotFound
		}
		if err != nil {
			return models.BlogPost{}, err
		}
	}

	if post.Status != models.BlogStatusPublished && !includeDrafts {
		return models.BlogPost{}, ErrNotFound
	}
	return post, nil
}

func (s *BlogService) Create(in BlogCreateInput) (models.BlogPost, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.Content) == "" {
		return models.BlogPost{}, ErrValidation
	}

	status := in.Status
	if status == "" {
		status = models.BlogStatusDraft
	}
	if status != models.BlogStatusDraft && status != models.BlogStatusPublished {
		return models.BlogPost{}, ErrInvalidStatus
	}

	slug := utils.Slugify(title)
	taken, err := s.slugTaken(slug, 0)
	if err != nil {
		return models.BlogPost{}, err
	}
	if taken {
		return models.BlogPost{}, ErrDuplicateSlug
	}

	post := models.BlogPost{
		Title:         title,
		Slug:          slug,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		Status:        status,
		FeaturedImage: in.FeaturedImage,
		Tags:          in.Tags,
		Author:        in.Author,
	}
	if err := s.DB.Create(&post).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.BlogPost{}, ErrDuplicateSlug
		}
		return models.BlogPost{}, err
	}
	return post, nil
}

// Update applies only the supplied fields. A new title recomputes the slug
// and re-checks uniqueness excluding the post itself.
func (s *BlogService) Update(id uint, in BlogUpdateInput) (models.BlogPost, error) {
	var post models.BlogPost
	if err := s.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.BlogPost{}, ErrNotFound
		}
		return models.BlogPost{}, err
	}

	updates := map[string]interface{}{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return models.BlogPost{}, ErrValidation
		}
		slug := utils.Slugify(title)
		taken, err := s.slugTaken(slug, post.ID)
		if err != nil {
			return models.BlogPost{}, err
		}
		if taken {
			return models.BlogPost{}, ErrDuplicateSlug
		}
		updates["title"] = title
		updates["slug"] = slug
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return models.BlogPost{}, ErrValidation
		}
		updates["content"] = *in.Content
	}
	if in.Excerpt != nil {
		updates["excerpt"] = *in.Excerpt
	}
	if in.Status != nil {
		if *in.Status != models.BlogStatusDraft && *in.Status != models.BlogStatusPublished {
			return models.BlogPost{}, ErrInvalidStatus
		}
		updates["status"] = *in.Status
	}
	if in.FeaturedImage != nil {
		updates["featured_image"] = *in.FeaturedImage
	}
	if len(in.Tags) > 0 {
		updates["tags"] = in.Tags
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&post).Updates(updates).Error; err != nil {
			if isDuplicateKeyError(err) {
				return models.BlogPost{}, ErrDuplicateSlug
			}
			return models.BlogPost{}, err
		}
	}

	// Re-fetch so the caller sees exactly what was stored.
	if err := s.DB.First(&post, id).Error; err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

func (s *BlogService) Delete(id uint) error {
	result := s.DB.Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BlogService) slugTaken(slug string, excludeID uint) (bool, error) {
	query := s.DB.Model(&models.BlogPost{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
