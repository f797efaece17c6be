package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/service"
	"urbancare-clinic-api/internal/usecase"
	"urbancare-clinic-api/pkg/response"
	"urbancare-clinic-api/pkg/validator"
)

// BookingHandler serves the public booking form: the phone verification
// gate, slot availability queries and appointment submission.
type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.bookingUsecase.RequestPhoneCode(r.Context(), &req); err != nil {
		if errors.Is(err, service.ErrTooManyCodeRequests) {
			response.TooManyRequests(w, "Too many verification code requests, try again later")
			return
		}
		response.InternalServerError(w, "Failed to send verification code")
		return
	}

	response.Success(w, http.StatusOK, "Verification code sent", nil)
}

func (h *BookingHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.bookingUsecase.VerifyPhoneCode(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrCodeExpired):
			response.Error(w, http.StatusBadRequest, "Verification code expired, request a new one", nil)
		case errors.Is(err, service.ErrCodeMismatch):
			response.Error(w, http.StatusBadRequest, "Verification code does not match", nil)
		case errors.Is(err, service.ErrTooManyAttempts):
			response.TooManyRequests(w, "Too many attempts, request a new code")
		default:
			response.InternalServerError(w, "Failed to verify code")
		}
		return
	}

	response.Success(w, http.StatusOK, "Phone verified successfully", &dto.VerificationStatusResponse{
		Phone:    req.Phone,
		Verified: true,
	})
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	timeSlot := r.URL.Query().Get("time")

	availability, err := h.bookingUsecase.CheckAvailability(r.Context(), date, timeSlot)
	if err != nil {
		if errors.Is(err, service.ErrSlotUndetermined) {
			response.Error(w, http.StatusBadRequest, "Both date and time query parameters are required", nil)
			return
		}
		response.InternalServerError(w, "Failed to check availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability checked", availability)
}

func (h *BookingHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPhoneNotVerified):
			response.Error(w, http.StatusForbidden, "Phone number has not been verified", nil)
		case errors.Is(err, usecase.ErrInvalidAppointmentDate):
			response.Error(w, http.StatusBadRequest, "Invalid appointment date format, use YYYY-MM-DD", nil)
		case errors.Is(err, usecase.ErrAppointmentDatePast):
			response.Error(w, http.StatusBadRequest, "Cannot book an appointment in the past", nil)
		case errors.Is(err, usecase.ErrInvalidTimeSlot):
			response.Error(w, http.StatusBadRequest, "Appointment time is not a bookable slot", nil)
		case errors.Is(err, usecase.ErrDateBlocked):
			response.Conflict(w, "The clinic is closed on the selected date")
		case errors.Is(err, usecase.ErrSlotTaken):
			response.Conflict(w, "The selected date and time are already booked")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *BookingHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Time slots retrieved successfully", h.bookingUsecase.ListTimeSlots())
}
