package repository

import (
	"errors"

	"urbancare-clinic-api/internal/domain/entity"
	domainRepo "urbancare-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type blogPostRepository struct{}

func NewBlogPostRepository() domainRepo.BlogPostRepository {
	return &blogPostRepository{}
}

func (r *blogPostRepository) Create(db *gorm.DB, post *entity.BlogPost) error {
	return db.Create(post).Error
}

func (r *blogPostRepository) FindAll(db *gorm.DB) ([]entity.BlogPost, error) {
	var posts []entity.BlogPost
	err := db.Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) FindByID(db *gorm.DB, id uint) (*entity.BlogPost, error) {
	var post entity.BlogPost
	err := db.Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}
