package handler

import (
	"errors"
	"net/http"
	"strconv"

	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/service"
	"urbancare-clinic-api/internal/usecase"
	"urbancare-clinic-api/pkg/response"
	"urbancare-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
)

// multipartMemoryLimit bounds in-memory parsing of the blog upload form;
// larger parts spill to temp files.
const multipartMemoryLimit = 8 * 1024 * 1024

type BlogHandler struct {
	blogUsecase usecase.BlogUsecase
	validator   *validator.CustomValidator
}

func NewBlogHandler(blogUsecase usecase.BlogUsecase, validator *validator.CustomValidator) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		validator:   validator,
	}
}

func (h *BlogHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogUsecase.GetAllPosts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get blog posts")
		return
	}

	response.Success(w, http.StatusOK, "Blog posts retrieved successfully", posts)
}

func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blog post ID", nil)
		return
	}

	post, err := h.blogUsecase.GetPost(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrBlogPostNotFound) {
			response.NotFound(w, "Blog post not found")
			return
		}
		response.InternalServerError(w, "Failed to get blog post")
		return
	}

	response.Success(w, http.StatusOK, "Blog post retrieved successfully", post)
}

// CreatePost accepts a multipart form: title, description, author fields
// plus an optional "image" file part.
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req := dto.CreateBlogPostRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Author:      r.FormValue("author"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var image *usecase.BlogImageUpload
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image = &usecase.BlogImageUpload{
			Body:        file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		response.Error(w, http.StatusBadRequest, "Invalid image upload", nil)
		return
	}

	post, err := h.blogUsecase.CreatePost(r.Context(), &req, image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageTypeNotAllowed):
			response.Error(w, http.StatusBadRequest, "Image must be a JPEG, PNG or WebP", nil)
		case errors.Is(err, service.ErrImageTooLarge):
			response.Error(w, http.StatusBadRequest, "Image size must be less than 5MB", nil)
		default:
			response.InternalServerError(w, "Failed to create blog post")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blog post created successfully", post)
}
