package usecase

import (
	"context"
	"errors"
	"fmt"

	"urbancare-clinic-api/internal/converter"
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
	"urbancare-clinic-api/internal/domain/repository"
	"urbancare-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrInvalidVideoURL = errors.New("URL does not contain a YouTube video ID")
)

// VideoUsecase manages the YouTube embed gallery
type VideoUsecase interface {
	GetAllVideos(ctx context.Context) (*dto.VideoListResponse, error)
	CreateVideo(ctx context.Context, req *dto.CreateVideoRequest) (*dto.VideoResponse, error)
	DeleteVideo(ctx context.Context, id uint) error
}

type videoUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	videoRepo    repository.VideoRepository
	auditService service.AuditService
}

func NewVideoUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	videoRepo repository.VideoRepository,
	auditService service.AuditService,
) VideoUsecase {
	return &videoUsecase{
		db:           db,
		log:          log,
		videoRepo:    videoRepo,
		auditService: auditService,
	}
}

func (u *videoUsecase) GetAllVideos(ctx context.Context) (*dto.VideoListResponse, error) {
	videos, err := u.videoRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find videos: %+v", err)
		return nil, err
	}

	return &dto.VideoListResponse{
		Videos: converter.VideosToResponses(videos),
		Total:  len(videos),
	}, nil
}

func (u *videoUsecase) CreateVideo(ctx context.Context, req *dto.CreateVideoRequest) (*dto.VideoResponse, error) {
	if entity.ExtractYouTubeID(req.URL) == "" {
		return nil, ErrInvalidVideoURL
	}

	video := &entity.Video{
		URL:   req.URL,
		Title: req.Title,
	}

	if err := u.videoRepo.Create(u.db.WithContext(ctx), video); err != nil {
		u.log.Errorf("Failed to create video: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionVideoCreate, "video", fmt.Sprint(video.ID), entity.JSON{
		"url":   video.URL,
		"title": video.Title,
	})

	u.log.Infof("Video created: id=%d, title=%s", video.ID, video.Title)
	return converter.VideoToResponse(video), nil
}

func (u *videoUsecase) DeleteVideo(ctx context.Context, id uint) error {
	affected, err := u.videoRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Errorf("Failed to delete video %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrVideoNotFound
	}

	u.auditService.Record(ctx, entity.AuditActionVideoDelete, "video", fmt.Sprint(id), nil)

	u.log.Infof("Video deleted: id=%d", id)
	return nil
}
