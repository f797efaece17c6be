package repository

import (
	"urbancare-clinic-api/internal/domain/entity"
	domainRepo "urbancare-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type videoRepository struct{}

func NewVideoRepository() domainRepo.VideoRepository {
	return &videoRepository{}
}

func (r *videoRepository) Create(db *gorm.DB, video *entity.Video) error {
	return db.Create(video).Error
}

func (r *videoRepository) FindAll(db *gorm.DB) ([]entity.Video, error) {
	var videos []entity.Video
	err := db.Order("created_at DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.Video{}, id)
	return result.RowsAffected, result.Error
}
