package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment. The set is
// open by convention; these three are the values the clinic uses.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a patient booking for a single (date, time) slot.
// A partial unique index on (appointment_date, appointment_time) for
// non-cancelled rows enforces that no two active appointments share a slot.
type Appointment struct {
	ID                 uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string            `gorm:"type:varchar(255);not null" json:"name"`
	Email              string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone              string            `gorm:"type:varchar(20);not null;index" json:"phone"`
	DiseaseDescription string            `gorm:"type:text;not null" json:"disease_description"`
	AppointmentDate    string            `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime    string            `gorm:"type:varchar(5);not null" json:"appointment_time"`
	Status             AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt          time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment no longer occupies its slot
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Slot returns the (date, time) pair this appointment occupies
func (a *Appointment) Slot() (string, string) {
	return a.AppointmentDate, a.AppointmentTime
}
