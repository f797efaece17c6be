package converter

import (
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                   appointment.ID,
		Name:                 appointment.Name,
		Email:                appointment.Email,
		Phone:                appointment.Phone,
		DiseaseDescription:   appointment.DiseaseDescription,
		AppointmentDate:      appointment.AppointmentDate,
		AppointmentTime:      appointment.AppointmentTime,
		AppointmentTimeLabel: entity.TimeSlotLabel(appointment.AppointmentTime),
		Status:               string(appointment.Status),
		CreatedAt:            appointment.CreatedAt,
		UpdatedAt:            appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
