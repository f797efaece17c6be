package repository

import (
	"urbancare-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type BlockedDateRepository interface {
	Create(db *gorm.DB, blockedDate *entity.BlockedDate) error
	FindAll(db *gorm.DB) ([]entity.BlockedDate, error)
	ExistsByDate(db *gorm.DB, date string) (bool, error)
	Delete(db *gorm.DB, id uint) (int64, error)
}
