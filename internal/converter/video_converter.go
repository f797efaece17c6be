package converter

import (
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
)

// VideoToResponse converts a Video entity to its response DTO, deriving the
// embeddable YouTube ID from the stored URL.
func VideoToResponse(video *entity.Video) *dto.VideoResponse {
	if video == nil {
		return nil
	}

	return &dto.VideoResponse{
		ID:        video.ID,
		URL:       video.URL,
		Title:     video.Title,
		YouTubeID: entity.ExtractYouTubeID(video.URL),
		CreatedAt: video.CreatedAt,
	}
}

// VideosToResponses converts a slice of Video entities to response DTOs
func VideosToResponses(videos []entity.Video) []dto.VideoResponse {
	responses := make([]dto.VideoResponse, len(videos))
	for i := range videos {
		responses[i] = *VideoToResponse(&videos[i])
	}
	return responses
}
