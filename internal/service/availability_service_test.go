package service

import (
	"context"
	"testing"

	"urbancare-clinic-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB builds a detached gorm handle; the fake repositories never
// touch it, so no connection is needed.
func newTestDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeAppointmentRepo struct {
	appointments []entity.Appointment
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = uint(len(r.appointments) + 1)
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			appointment := r.appointments[i]
			return &appointment, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	return r.appointments, nil
}

func (r *fakeAppointmentRepo) FindByDate(db *gorm.DB, date string) ([]entity.Appointment, error) {
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.AppointmentDate == date {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) ExistsActiveSlot(db *gorm.DB, date string, timeSlot string, excludeID uint) (bool, error) {
	for _, appointment := range r.appointments {
		if appointment.AppointmentDate != date || appointment.AppointmentTime != timeSlot {
			continue
		}
		if appointment.IsCancelled() {
			continue
		}
		if excludeID != 0 && appointment.ID == excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == appointment.ID {
			r.appointments[i] = *appointment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeBlockedDateRepo struct {
	blockedDates []entity.BlockedDate
}

func (r *fakeBlockedDateRepo) Create(db *gorm.DB, blockedDate *entity.BlockedDate) error {
	blockedDate.ID = uint(len(r.blockedDates) + 1)
	r.blockedDates = append(r.blockedDates, *blockedDate)
	return nil
}

func (r *fakeBlockedDateRepo) FindAll(db *gorm.DB) ([]entity.BlockedDate, error) {
	return r.blockedDates, nil
}

func (r *fakeBlockedDateRepo) ExistsByDate(db *gorm.DB, date string) (bool, error) {
	for _, blockedDate := range r.blockedDates {
		if blockedDate.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBlockedDateRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	for i := range r.blockedDates {
		if r.blockedDates[i].ID == id {
			r.blockedDates = append(r.blockedDates[:i], r.blockedDates[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func TestCheckSlotRequiresBothInputs(t *testing.T) {
	svc := NewAvailabilityService(newTestDB(), newTestLogger(), &fakeAppointmentRepo{}, &fakeBlockedDateRepo{})

	_, err := svc.CheckSlot(context.Background(), "", "10:00", 0)
	assert.ErrorIs(t, err, ErrSlotUndetermined)

	_, err = svc.CheckSlot(context.Background(), "2026-09-01", "", 0)
	assert.ErrorIs(t, err, ErrSlotUndetermined)

	_, err = svc.CheckSlot(context.Background(), "", "", 0)
	assert.ErrorIs(t, err, ErrSlotUndetermined)
}

func TestCheckSlotBlockedDate(t *testing.T) {
	blockedRepo := &fakeBlockedDateRepo{
		blockedDates: []entity.BlockedDate{{ID: 1, Date: "2026-09-01"}},
	}
	svc := NewAvailabilityService(newTestDB(), newTestLogger(), &fakeAppointmentRepo{}, blockedRepo)

	// every slot on a blocked date is unavailable
	for _, slot := range entity.TimeSlots {
		check, err := svc.CheckSlot(context.Background(), "2026-09-01", slot.Value, 0)
		require.NoError(t, err)
		assert.False(t, check.Available)
		assert.Equal(t, ReasonDateBlocked, check.Reason)
	}
}

func TestCheckSlotBlockedDateWinsOverConflict(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{
		appointments: []entity.Appointment{
			{ID: 1, AppointmentDate: "2026-09-01", AppointmentTime: "10:00", Status: entity.AppointmentStatusConfirmed},
		},
	}
	blockedRepo := &fakeBlockedDateRepo{
		blockedDates: []entity.BlockedDate{{ID: 1, Date: "2026-09-01"}},
	}
	svc := NewAvailabilityService(newTestDB(), newTestLogger(), appointmentRepo, blockedRepo)

	check, err := svc.CheckSlot(context.Background(), "2026-09-01", "10:00", 0)
	require.NoError(t, err)
	assert.False(t, check.Available)
	assert.Equal(t, ReasonDateBlocked, check.Reason)
}

func TestCheckSlotTaken(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{
		appointments: []entity.Appointment{
			{ID: 1, AppointmentDate: "2026-09-01", AppointmentTime: "14:00", Status: entity.AppointmentStatusConfirmed},
		},
	}
	svc := NewAvailabilityService(newTestDB(), newTestLogger(), appointmentRepo, &fakeBlockedDateRepo{})

	check, err := svc.CheckSlot(context.Background(), "2026-09-01", "14:00", 0)
	require.NoError(t, err)
	assert.False(t, check.Available)
	assert.Equal(t, ReasonSlotTaken, check.Reason)

	// the neighbouring slot on the same day is free
	check, err = svc.CheckSlot(context.Background(), "2026-09-01", "15:00", 0)
	require.NoError(t, err)
	assert.True(t, check.Available)
	assert.Empty(t, check.Reason)

	// the same slot on another day is free
	check, err = svc.CheckSlot(context.Background(), "2026-09-02", "14:00", 0)
	require.NoError(t, err)
	assert.True(t, check.Available)
}

func TestCheckSlotCancelledDoesNotConflict(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{
		appointments: []entity.Appointment{
			{ID: 1, AppointmentDate: "2026-09-01", AppointmentTime: "14:00", Status: entity.AppointmentStatusCancelled},
		},
	}
	svc := NewAvailabilityService(newTestDB(), newTestLogger(), appointmentRepo, &fakeBlockedDateRepo{})

	check, err := svc.CheckSlot(context.Background(), "2026-09-01", "14:00", 0)
	require.NoError(t, err)
	assert.True(t, check.Available)
}

func TestCheckSlotExcludesOwnAppointment(t *testing.T) {
	appointmentRepo := &fakeAppointmentRepo{
		appointments: []entity.Appointment{
			{ID: 5, AppointmentDate: "2026-09-01", AppointmentTime: "14:00", Status: entity.AppointmentStatusConfirmed},
			{ID: 6, AppointmentDate: "2026-09-01", AppointmentTime: "15:00", Status: entity.AppointmentStatusConfirmed},
		},
	}
	svc := NewAvailabilityService(newTestDB(), newTestLogger(), appointmentRepo, &fakeBlockedDateRepo{})

	// an appointment keeping its own slot never conflicts with itself
	check, err := svc.CheckSlot(context.Background(), "2026-09-01", "14:00", 5)
	require.NoError(t, err)
	assert.True(t, check.Available)

	// but it still conflicts with everyone else
	check, err = svc.CheckSlot(context.Background(), "2026-09-01", "15:00", 5)
	require.NoError(t, err)
	assert.False(t, check.Available)
	assert.Equal(t, ReasonSlotTaken, check.Reason)
}
