package converter

import (
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
)

// BlogPostToResponse converts a BlogPost entity to its response DTO
func BlogPostToResponse(post *entity.BlogPost) *dto.BlogPostResponse {
	if post == nil {
		return nil
	}

	return &dto.BlogPostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Author:      post.Author,
		ImageURL:    post.ImageURL,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// BlogPostsToResponses converts a slice of BlogPost entities to response DTOs
func BlogPostsToResponses(posts []entity.BlogPost) []dto.BlogPostResponse {
	responses := make([]dto.BlogPostResponse, len(posts))
	for i := range posts {
		responses[i] = *BlogPostToResponse(&posts[i])
	}
	return responses
}
