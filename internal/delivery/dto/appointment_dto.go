package dto

import (
	"time"
)

// Request DTOs

type CreateAppointmentRequest struct {
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,basicemail"`
	Phone              string `json:"phone" validate:"required,phone10"`
	DiseaseDescription string `json:"disease_description" validate:"required"`
	AppointmentDate    string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime    string `json:"appointment_time" validate:"required"` // Format: HH:MM
}

type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"omitempty"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" validate:"omitempty"` // Format: HH:MM
	Status          string `json:"status" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	DiseaseDescription   string    `json:"disease_description"`
	AppointmentDate      string    `json:"appointment_date"`
	AppointmentTime      string    `json:"appointment_time"`
	AppointmentTimeLabel string    `json:"appointment_time_label"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailabilityResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type TimeSlotResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
	Total     int                `json:"total"`
}
