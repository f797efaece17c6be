package repository

import (
	"urbancare-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type BlogPostRepository interface {
	Create(db *gorm.DB, post *entity.BlogPost) error
	FindAll(db *gorm.DB) ([]entity.BlogPost, error)
	FindByID(db *gorm.DB, id uint) (*entity.BlogPost, error)
}
