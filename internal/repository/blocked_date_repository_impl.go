package repository

import (
	"urbancare-clinic-api/internal/domain/entity"
	domainRepo "urbancare-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type blockedDateRepository struct{}

func NewBlockedDateRepository() domainRepo.BlockedDateRepository {
	return &blockedDateRepository{}
}

func (r *blockedDateRepository) Create(db *gorm.DB, blockedDate *entity.BlockedDate) error {
	return db.Create(blockedDate).Error
}

func (r *blockedDateRepository) FindAll(db *gorm.DB) ([]entity.BlockedDate, error) {
	var dates []entity.BlockedDate
	err := db.Order("date ASC").Find(&dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *blockedDateRepository) ExistsByDate(db *gorm.DB, date string) (bool, error) {
	var count int64
	err := db.Model(&entity.BlockedDate{}).Where("date = ?", date).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a blocked date by ID. Returns affected rows so callers can
// distinguish "deleted" from "did not exist".
func (r *blockedDateRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Delete(&entity.BlockedDate{}, id)
	return result.RowsAffected, result.Error
}
