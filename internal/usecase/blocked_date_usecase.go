package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"urbancare-clinic-api/internal/converter"
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
	"urbancare-clinic-api/internal/domain/repository"
	"urbancare-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBlockedDateNotFound = errors.New("blocked date not found")
	ErrDateAlreadyBlocked  = errors.New("date is already blocked")
	ErrInvalidBlockedDate  = errors.New("invalid date format, use YYYY-MM-DD")
)

// BlockedDateUsecase manages the calendar dates closed for booking
type BlockedDateUsecase interface {
	GetAllBlockedDates(ctx context.Context) (*dto.BlockedDateListResponse, error)
	CreateBlockedDate(ctx context.Context, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error)
	DeleteBlockedDate(ctx context.Context, id uint) error
}

type blockedDateUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	blockedDateRepo repository.BlockedDateRepository
	auditService    service.AuditService
}

func NewBlockedDateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	blockedDateRepo repository.BlockedDateRepository,
	auditService service.AuditService,
) BlockedDateUsecase {
	return &blockedDateUsecase{
		db:              db,
		log:             log,
		blockedDateRepo: blockedDateRepo,
		auditService:    auditService,
	}
}

func (u *blockedDateUsecase) GetAllBlockedDates(ctx context.Context) (*dto.BlockedDateListResponse, error) {
	dates, err := u.blockedDateRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find blocked dates: %+v", err)
		return nil, err
	}

	return &dto.BlockedDateListResponse{
		BlockedDates: converter.BlockedDatesToResponses(dates),
		Total:        len(dates),
	}, nil
}

func (u *blockedDateUsecase) CreateBlockedDate(ctx context.Context, req *dto.CreateBlockedDateRequest) (*dto.BlockedDateResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidBlockedDate
	}

	blockedDate := &entity.BlockedDate{
		Date:   req.Date,
		Reason: req.Reason,
	}

	if err := u.blockedDateRepo.Create(u.db.WithContext(ctx), blockedDate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDateAlreadyBlocked
		}
		u.log.Errorf("Failed to create blocked date: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionBlockedDateCreate, "blocked_date", fmt.Sprint(blockedDate.ID), entity.JSON{
		"date":   blockedDate.Date,
		"reason": blockedDate.Reason,
	})

	u.log.Infof("Blocked date created: id=%d, date=%s", blockedDate.ID, blockedDate.Date)
	return converter.BlockedDateToResponse(blockedDate), nil
}

func (u *blockedDateUsecase) DeleteBlockedDate(ctx context.Context, id uint) error {
	affected, err := u.blockedDateRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Errorf("Failed to delete blocked date %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrBlockedDateNotFound
	}

	u.auditService.Record(ctx, entity.AuditActionBlockedDateDelete, "blocked_date", fmt.Sprint(id), nil)

	u.log.Infof("Blocked date deleted: id=%d", id)
	return nil
}
