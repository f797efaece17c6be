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

var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentUsecase is the admin view over appointments: list everything,
// reschedule or change status of a single record.
type AppointmentUsecase interface {
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	availability    service.AvailabilityService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	availability service.AvailabilityService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		availability:    availability,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment reschedules an appointment and/or changes its status.
// Only date, time and status are mutable in this flow. The availability
// check excludes the record itself, so saving an unchanged slot never
// conflicts with its own row.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	newDate := appointment.AppointmentDate
	newTime := appointment.AppointmentTime
	newStatus := appointment.Status

	if req.AppointmentDate != "" {
		if _, err := time.Parse("2006-01-02", req.AppointmentDate); err != nil {
			return nil, ErrInvalidAppointmentDate
		}
		newDate = req.AppointmentDate
	}
	if req.AppointmentTime != "" {
		if !entity.IsValidTimeSlot(req.AppointmentTime) {
			return nil, ErrInvalidTimeSlot
		}
		newTime = req.AppointmentTime
	}
	if req.Status != "" {
		newStatus = entity.AppointmentStatus(req.Status)
	}

	// A cancelled appointment releases its slot, so only active target
	// states need the conflict check.
	if newStatus != entity.AppointmentStatusCancelled {
		check, err := u.availability.CheckSlot(ctx, newDate, newTime, appointment.ID)
		if err != nil {
			return nil, err
		}
		if !check.Available {
			return nil, availabilityError(check.Reason)
		}
	}

	oldDate, oldTime := appointment.Slot()
	oldStatus := appointment.Status

	appointment.AppointmentDate = newDate
	appointment.AppointmentTime = newTime
	appointment.Status = newStatus

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		u.log.Errorf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	u.auditService.Record(ctx, entity.AuditActionAppointmentUpdate, "appointment", fmt.Sprint(id), entity.JSON{
		"old_date":   oldDate,
		"old_time":   oldTime,
		"old_status": string(oldStatus),
		"new_date":   newDate,
		"new_time":   newTime,
		"new_status": string(newStatus),
	})

	u.log.Infof("Appointment updated: id=%d, date=%s, time=%s, status=%s", id, newDate, newTime, newStatus)
	return converter.AppointmentToResponse(appointment), nil
}
