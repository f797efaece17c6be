package repository

import (
	"errors"

	"urbancare-clinic-api/internal/domain/entity"
	domainRepo "urbancare-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Order("appointment_date ASC, appointment_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(db *gorm.DB, date string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("appointment_date = ?", date).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ExistsActiveSlot checks whether a non-cancelled appointment other than
// excludeID already holds the (date, timeSlot) pair.
func (r *appointmentRepository) ExistsActiveSlot(db *gorm.DB, date string, timeSlot string, excludeID uint) (bool, error) {
	var count int64
	query := db.Model(&entity.Appointment{}).
		Where("appointment_date = ? AND appointment_time = ? AND status != ?",
			date, timeSlot, entity.AppointmentStatusCancelled)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}
