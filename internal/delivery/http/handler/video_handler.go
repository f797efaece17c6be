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

type VideoHandler struct {
	videoUsecase usecase.VideoUsecase
	validator    *validator.CustomValidator
}

func NewVideoHandler(videoUsecase usecase.VideoUsecase, validator *validator.CustomValidator) *VideoHandler {
	return &VideoHandler{
		videoUsecase: videoUsecase,
		validator:    validator,
	}
}

func (h *VideoHandler) GetAllVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoUsecase.GetAllVideos(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get videos")
		return
	}

	response.Success(w, http.StatusOK, "Videos retrieved successfully", videos)
}

func (h *VideoHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	video, err := h.videoUsecase.CreateVideo(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidVideoURL) {
			response.Error(w, http.StatusBadRequest, "URL does not contain a YouTube video ID", nil)
			return
		}
		response.InternalServerError(w, "Failed to create video")
		return
	}

	response.Success(w, http.StatusCreated, "Video created successfully", video)
}

func (h *VideoHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid video ID", nil)
		return
	}

	if err := h.videoUsecase.DeleteVideo(r.Context(), uint(id)); err != nil {
		if errors.Is(err, usecase.ErrVideoNotFound) {
			response.NotFound(w, "Video not found")
			return
		}
		response.InternalServerError(w, "Failed to delete video")
		return
	}

	response.Success(w, http.StatusOK, "Video deleted successfully", nil)
}
