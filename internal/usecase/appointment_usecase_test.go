package usecase

import (
	"context"
	"testing"

	"urbancare-clinic-api/internal/delivery/dto"
	"urbancare-clinic-api/internal/domain/entity"
	"urbancare-clinic-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type appointmentFixture struct {
	usecase         AppointmentUsecase
	appointmentRepo *stubAppointmentRepo
	blockedDateRepo *stubBlockedDateRepo
	audit           *stubAuditService
}

func newAppointmentFixture(appointments []entity.Appointment, blockedDates []entity.BlockedDate) *appointmentFixture {
	db := newTestDB()
	log := newTestLogger()

	appointmentRepo := &stubAppointmentRepo{appointments: appointments}
	blockedDateRepo := &stubBlockedDateRepo{blockedDates: blockedDates}
	audit := &stubAuditService{}

	availability := service.NewAvailabilityService(db, log, appointmentRepo, blockedDateRepo)

	return &appointmentFixture{
		usecase:         NewAppointmentUsecase(db, log, appointmentRepo, availability, audit),
		appointmentRepo: appointmentRepo,
		blockedDateRepo: blockedDateRepo,
		audit:           audit,
	}
}

func seedAppointments() []entity.Appointment {
	return []entity.Appointment{
		{ID: 5, Name: "Jordan Smith", AppointmentDate: "2026-09-01", AppointmentTime: "14:00", Status: entity.AppointmentStatusPending},
		{ID: 6, Name: "Casey Lee", AppointmentDate: "2026-09-01", AppointmentTime: "15:00", Status: entity.AppointmentStatusConfirmed},
	}
}

func TestGetAllAppointments(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), nil)

	result, err := f.usecase.GetAllAppointments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "2:00 PM", result.Appointments[0].AppointmentTimeLabel)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	f := newAppointmentFixture(nil, nil)

	_, err := f.usecase.UpdateAppointment(context.Background(), 99, &dto.UpdateAppointmentRequest{Status: "Confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointmentStatusOnly(t *testing.T) {
	// confirming an appointment keeps its slot; the record must not
	// conflict with its own row
	f := newAppointmentFixture(seedAppointments(), nil)

	result, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{Status: "Confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "Confirmed", result.Status)
	assert.Equal(t, "2026-09-01", result.AppointmentDate)
	assert.Equal(t, "14:00", result.AppointmentTime)
}

func TestUpdateAppointmentReschedule(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), nil)

	result, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{
		AppointmentDate: "2026-09-02",
		AppointmentTime: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-02", result.AppointmentDate)
	assert.Equal(t, "10:00", result.AppointmentTime)
	assert.Equal(t, "10:00 AM", result.AppointmentTimeLabel)

	// untouched fields survive the partial update
	assert.Equal(t, "Pending", result.Status)
	assert.Equal(t, "Jordan Smith", result.Name)
}

func TestUpdateAppointmentMoveToTakenSlot(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), nil)

	_, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{AppointmentTime: "15:00"})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdateAppointmentMoveToBlockedDate(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), []entity.BlockedDate{{ID: 1, Date: "2026-09-03"}})

	_, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{AppointmentDate: "2026-09-03"})
	assert.ErrorIs(t, err, ErrDateBlocked)
}

func TestUpdateAppointmentCancelSkipsConflictCheck(t *testing.T) {
	// cancelling releases the slot, so the target slot being taken or the
	// date being blocked must not prevent the cancellation
	f := newAppointmentFixture(seedAppointments(), []entity.BlockedDate{{ID: 1, Date: "2026-09-01"}})

	result, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{Status: "Cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", result.Status)
}

func TestUpdateAppointmentFreedSlotIsReusable(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), nil)

	_, err := f.usecase.UpdateAppointment(context.Background(), 6, &dto.UpdateAppointmentRequest{Status: "Cancelled"})
	require.NoError(t, err)

	// the slot cancelled appointment 6 held is open for appointment 5
	result, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{AppointmentTime: "15:00"})
	require.NoError(t, err)
	assert.Equal(t, "15:00", result.AppointmentTime)
}

func TestUpdateAppointmentInvalidInputs(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), nil)

	_, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{AppointmentDate: "09/02/2026"})
	assert.ErrorIs(t, err, ErrInvalidAppointmentDate)

	_, err = f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{AppointmentTime: "14:30"})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestUpdateAppointmentConcurrentDuplicate(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), nil)
	f.appointmentRepo.updateErr = gorm.ErrDuplicatedKey

	_, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{AppointmentTime: "16:00"})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdateAppointmentRecordsAudit(t *testing.T) {
	f := newAppointmentFixture(seedAppointments(), nil)

	_, err := f.usecase.UpdateAppointment(context.Background(), 5, &dto.UpdateAppointmentRequest{
		AppointmentTime: "16:00",
		Status:          "Confirmed",
	})
	require.NoError(t, err)

	require.Len(t, f.audit.records, 1)
	record := f.audit.records[0]
	assert.Equal(t, entity.AuditActionAppointmentUpdate, record.action)
	assert.Equal(t, "5", record.entityID)
	assert.Equal(t, "14:00", record.metadata["old_time"])
	assert.Equal(t, "16:00", record.metadata["new_time"])
	assert.Equal(t, "Pending", record.metadata["old_status"])
	assert.Equal(t, "Confirmed", record.metadata["new_status"])
}
