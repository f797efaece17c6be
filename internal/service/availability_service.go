package service

import (
	"context"
	"errors"

	"urbancare-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSlotUndetermined is returned when date or time is missing, so
// availability cannot be decided yet.
var ErrSlotUndetermined = errors.New("date and time are both required to check availability")

// SlotUnavailableReason explains why a slot cannot be booked
type SlotUnavailableReason string

const (
	ReasonDateBlocked SlotUnavailableReason = "date_blocked"
	ReasonSlotTaken   SlotUnavailableReason = "slot_taken"
)

// SlotCheck is the tagged result of an availability check
type SlotCheck struct {
	Available bool                  `json:"available"`
	Reason    SlotUnavailableReason `json:"reason,omitempty"`
}

// AvailabilityService decides whether a (date, time) pair is bookable.
// Checks are read-only; the storage-level unique index on active slots is
// the final arbiter against concurrent bookers.
type AvailabilityService interface {
	CheckSlot(ctx context.Context, date string, timeSlot string, excludeID uint) (*SlotCheck, error)
}

type availabilityService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	blockedDateRepo repository.BlockedDateRepository
}

func NewAvailabilityService(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	blockedDateRepo repository.BlockedDateRepository,
) AvailabilityService {
	return &availabilityService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		blockedDateRepo: blockedDateRepo,
	}
}

// CheckSlot applies the two availability rules in order: a blocked date is
// never bookable, and a slot held by another non-cancelled appointment is
// taken. excludeID lets the admin editor save a record onto its own slot.
func (s *availabilityService) CheckSlot(ctx context.Context, date string, timeSlot string, excludeID uint) (*SlotCheck, error) {
	if date == "" || timeSlot == "" {
		return nil, ErrSlotUndetermined
	}

	blocked, err := s.blockedDateRepo.ExistsByDate(s.db.WithContext(ctx), date)
	if err != nil {
		s.log.Warnf("Failed to check blocked dates for %s: %+v", date, err)
		return nil, err
	}
	if blocked {
		return &SlotCheck{Available: false, Reason: ReasonDateBlocked}, nil
	}

	taken, err := s.appointmentRepo.ExistsActiveSlot(s.db.WithContext(ctx), date, timeSlot, excludeID)
	if err != nil {
		s.log.Warnf("Failed to check appointments for %s %s: %+v", date, timeSlot, err)
		return nil, err
	}
	if taken {
		return &SlotCheck{Available: false, Reason: ReasonSlotTaken}, nil
	}

	return &SlotCheck{Available: true}, nil
}
