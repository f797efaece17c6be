package usecase

import (
	"context"
	"testing"

	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubVideoRepo struct {
	videos []entity.Video
}

func (r *stubVideoRepo) Create(db *gorm.DB, video *entity.Video) error {
	video.ID = uint(len(r.videos) + 1)
	r.videos = append(r.videos, *video)
	return nil
}

func (r *stubVideoRepo) FindAll(db *gorm.DB) ([]entity.Video, error) {
	return r.videos, nil
}

func (r *stubVideoRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	for i := range r.videos {
		if r.videos[i].ID == id {
			r.videos = append(r.videos[:i], r.videos[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newVideoFixture(videos []entity.Video) (VideoUsecase, *stubVideoRepo, *stubAuditService) {
	videoRepo := &stubVideoRepo{videos: videos}
	audit := &stubAuditService{}
	return NewVideoUsecase(newTestDB(), newTestLogger(), videoRepo, audit), videoRepo, audit
}

func TestCreateVideo(t *testing.T) {
	usecase, videoRepo, audit := newVideoFixture(nil)

	result, err := usecase.CreateVideo(context.Background(), &dto.CreateVideoRequest{
		URL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title: "Clinic tour",
	})
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", result.YouTubeID)
	assert.Len(t, videoRepo.videos, 1)

	require.Len(t, audit.records, 1)
	assert.Equal(t, entity.AuditActionVideoCreate, audit.records[0].action)
}

func TestCreateVideoRejectsNonYouTubeURL(t *testing.T) {
	usecase, videoRepo, _ := newVideoFixture(nil)

	for _, url := range []string{
		"https://vimeo.com/123456789",
		"https://www.youtube.com/feed/subscriptions",
		"not a url",
	} {
		_, err := usecase.CreateVideo(context.Background(), &dto.CreateVideoRequest{URL: url, Title: "x"})
		assert.ErrorIs(t, err, ErrInvalidVideoURL, url)
	}

	assert.Empty(t, videoRepo.videos)
}

func TestDeleteVideo(t *testing.T) {
	usecase, videoRepo, audit := newVideoFixture([]entity.Video{
		{ID: 1, URL: "https://youtu.be/dQw4w9WgXcQ", Title: "Clinic tour"},
	})

	require.NoError(t, usecase.DeleteVideo(context.Background(), 1))
	assert.Empty(t, videoRepo.videos)

	require.Len(t, audit.records, 1)
	assert.Equal(t, entity.AuditActionVideoDelete, audit.records[0].action)

	assert.ErrorIs(t, usecase.DeleteVideo(context.Background(), 1), ErrVideoNotFound)
}

func TestGetAllVideos(t *testing.T) {
	usecase, _, _ := newVideoFixture([]entity.Video{
		{ID: 1, URL: "https://youtu.be/dQw4w9WgXcQ", Title: "Clinic tour"},
		{ID: 2, URL: "https://www.youtube.com/watch?v=aB3_x9Kl0-M", Title: "Meet the team"},
	})

	result, err := usecase.GetAllVideos(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "dQw4w9WgXcQ", result.Videos[0].YouTubeID)
	assert.Equal(t, "aB3_x9Kl0-M", result.Videos[1].YouTubeID)
}
