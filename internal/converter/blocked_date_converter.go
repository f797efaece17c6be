package converter

import (
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
)

// BlockedDateToResponse converts a BlockedDate entity to its response DTO
func BlockedDateToResponse(blockedDate *entity.BlockedDate) *dto.BlockedDateResponse {
	if blockedDate == nil {
		return nil
	}

	return &dto.BlockedDateResponse{
		ID:        blockedDate.ID,
		Date:      blockedDate.Date,
		Reason:    blockedDate.Reason,
		CreatedAt: blockedDate.CreatedAt,
	}
}

// BlockedDatesToResponses converts a slice of BlockedDate entities to response DTOs
func BlockedDatesToResponses(blockedDates []entity.BlockedDate) []dto.BlockedDateResponse {
	responses := make([]dto.BlockedDateResponse, len(blockedDates))
	for i := range blockedDates {
		responses[i] = *BlockedDateToResponse(&blockedDates[i])
	}
	return responses
}
