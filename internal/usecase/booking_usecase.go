package usecase

import (
	"context"
	"errors"
	"time"

	"urbancare-clinic-api/internal/converter"
	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
	"urbancare-clinic-api/internal/domain/repository"
	"urbancare-clinic-api/internal/service"
	"urbancare-clinic-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPhoneNotVerified       = errors.New("phone number has not been verified")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date format, use YYYY-MM-DD")
	ErrInvalidTimeSlot        = errors.New("appointment time is not a bookable slot")
	ErrAppointmentDatePast    = errors.New("cannot book an appointment in the past")
	ErrDateBlocked            = errors.New("the clinic is closed on the selected date")
	ErrSlotTaken              = errors.New("the selected date and time are already booked")
)

// BookingUsecase drives the public booking flow: the phone verification
// gate, slot availability lookups, and appointment submission.
type BookingUsecase interface {
	RequestPhoneCode(ctx context.Context, req *dto.RequestCodeRequest) error
	VerifyPhoneCode(ctx context.Context, req *dto.VerifyCodeRequest) error
	CheckAvailability(ctx context.Context, date string, timeSlot string) (*dto.AvailabilityResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListTimeSlots() *dto.TimeSlotListResponse
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	availability    service.AvailabilityService
	otpService      service.OTPService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	availability service.AvailabilityService,
	otpService service.OTPService,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		availability:    availability,
		otpService:      otpService,
	}
}

// RequestPhoneCode issues a verification code for the phone on the booking form
func (u *bookingUsecase) RequestPhoneCode(ctx context.Context, req *dto.RequestCodeRequest) error {
	phone := validator.NormalizePhone(req.Phone)
	return u.otpService.RequestCode(ctx, phone)
}

// VerifyPhoneCode checks the submitted code; on success the phone is
// verified and the rest of the booking form may be submitted.
func (u *bookingUsecase) VerifyPhoneCode(ctx context.Context, req *dto.VerifyCodeRequest) error {
	phone := validator.NormalizePhone(req.Phone)
	return u.otpService.VerifyCode(ctx, phone, req.Code)
}

// CheckAvailability answers the booking form's slot query
func (u *bookingUsecase) CheckAvailability(ctx context.Context, date string, timeSlot string) (*dto.AvailabilityResponse, error) {
	check, err := u.availability.CheckSlot(ctx, date, timeSlot, 0)
	if err != nil {
		return nil, err
	}

	return &dto.AvailabilityResponse{
		Date:      date,
		Time:      timeSlot,
		Available: check.Available,
		Reason:    string(check.Reason),
	}, nil
}

// CreateAppointment validates a complete booking and persists it.
//
// Preconditions, checked in order:
// 1. The phone passed the verification gate
// 2. Date parses as YYYY-MM-DD and is not in the past
// 3. Time is one of the bookable slots
// 4. The slot is available (date not blocked, slot not taken)
//
// The availability check and the insert are not atomic; the partial unique
// index on active (date, time) pairs settles concurrent bookers, and its
// violation surfaces here as ErrSlotTaken.
func (u *bookingUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	phone := validator.NormalizePhone(req.Phone)

	verified, err := u.otpService.IsVerified(ctx, phone)
	if err != nil {
		u.log.Warnf("Failed to check phone verification for %s: %+v", phone, err)
		return nil, err
	}
	if !verified {
		return nil, ErrPhoneNotVerified
	}

	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if appointmentDate.Before(today) {
		return nil, ErrAppointmentDatePast
	}

	if !entity.IsValidTimeSlot(req.AppointmentTime) {
		return nil, ErrInvalidTimeSlot
	}

	check, err := u.availability.CheckSlot(ctx, req.AppointmentDate, req.AppointmentTime, 0)
	if err != nil {
		return nil, err
	}
	if !check.Available {
		return nil, availabilityError(check.Reason)
	}

	appointment := &entity.Appointment{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              phone,
		DiseaseDescription: req.DiseaseDescription,
		AppointmentDate:    req.AppointmentDate,
		AppointmentTime:    req.AppointmentTime,
		Status:             entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		// A concurrent booker can win the slot between the check and the
		// insert; the unique index reports that as a duplicate key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		u.log.Errorf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, date=%s, time=%s", appointment.ID, appointment.AppointmentDate, appointment.AppointmentTime)
	return converter.AppointmentToResponse(appointment), nil
}

// ListTimeSlots returns the fixed slot enumeration for selection controls
func (u *bookingUsecase) ListTimeSlots() *dto.TimeSlotListResponse {
	slots := make([]dto.TimeSlotResponse, len(entity.TimeSlots))
	for i, slot := range entity.TimeSlots {
		slots[i] = dto.TimeSlotResponse{Value: slot.Value, Label: slot.Label}
	}
	return &dto.TimeSlotListResponse{
		TimeSlots: slots,
		Total:     len(slots),
	}
}

// availabilityError maps a slot-check reason to its sentinel error
func availabilityError(reason service.SlotUnavailableReason) error {
	if reason == service.ReasonDateBlocked {
		return ErrDateBlocked
	}
	return ErrSlotTaken
}
