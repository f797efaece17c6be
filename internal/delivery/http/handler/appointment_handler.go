package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/usecase"
	"urbancare-clinic-api/pkg/response"
	"urbancare-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

// AppointmentHandler serves the admin appointment list and editor
type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.Error(w, http.StatusBadRequest, "Invalid appointment date format, use YYYY-MM-DD", nil)
		case errors.Is(err, usecase.ErrInvalidTimeSlot):
			response.Error(w, http.StatusBadRequest, "Appointment time is not a bookable slot", nil)
		case errors.Is(err, usecase.ErrDateBlocked):
			response.Conflict(w, "The clinic is closed on the selected date")
		case errors.Is(err, usecase.ErrSlotTaken):
			response.Conflict(w, "The selected date and time are already booked")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}
