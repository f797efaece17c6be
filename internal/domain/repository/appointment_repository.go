package repository

import (
	"urbancare-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, date string) ([]entity.Appointment, error)
	// ExistsActiveSlot reports whether a non-cancelled appointment other
	// than excludeID occupies the (date, timeSlot) pair. excludeID 0 means
	// no exclusion.
	ExistsActiveSlot(db *gorm.DB, date string, timeSlot string, excludeID uint) (bool, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
