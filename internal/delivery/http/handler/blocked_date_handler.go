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

type BlockedDateHandler struct {
	blockedDateUsecase usecase.BlockedDateUsecase
	validator          *validator.CustomValidator
}

func NewBlockedDateHandler(blockedDateUsecase usecase.BlockedDateUsecase, validator *validator.CustomValidator) *BlockedDateHandler {
	return &BlockedDateHandler{
		blockedDateUsecase: blockedDateUsecase,
		validator:          validator,
	}
}

func (h *BlockedDateHandler) GetAllBlockedDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.blockedDateUsecase.GetAllBlockedDates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get blocked dates")
		return
	}

	response.Success(w, http.StatusOK, "Blocked dates retrieved successfully", dates)
}

func (h *BlockedDateHandler) CreateBlockedDate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blockedDate, err := h.blockedDateUsecase.CreateBlockedDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBlockedDate):
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case errors.Is(err, usecase.ErrDateAlreadyBlocked):
			response.Conflict(w, "Date is already blocked")
		default:
			response.InternalServerError(w, "Failed to create blocked date")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Date blocked successfully", blockedDate)
}

func (h *BlockedDateHandler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blocked date ID", nil)
		return
	}

	if err := h.blockedDateUsecase.DeleteBlockedDate(r.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrBlockedDateNotFound) {
			response.NotFound(w, "Blocked date not found")
			return
		}
		response.InternalServerError(w, "Failed to delete blocked date")
		return
	}

	response.Success(w, http.StatusOK, "Blocked date deleted successfully", nil)
}
