package repository

import (
	"urbancare-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(db *gorm.DB, video *entity.Video) error
	FindAll(db *gorm.DB) ([]entity.Video, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
