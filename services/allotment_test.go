package services

import (
	"testing"
	"time"

	"pramaansetu/models"

	"github.com/jinzhu/now"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func TestAllotFillsCenterThenExhausts(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 2)

	first := seedUser(t, db, "first", "Delhi")
	second := seedUser(t, db, "second", "Delhi")
	third := seedUser(t, db, "third", "Delhi")

	a1, err := AllotAppointment(db, first.ID, models.CenterHospital, testDate)
	require.NoError(t, err)
	assert.Equal(t, center.ID, a1.CenterID)
	assert.Equal(t, models.AppointmentBooked, a1.Status)

	a2, err := AllotAppointment(db, second.ID, models.CenterHospital, testDate)
	require.NoError(t, err)
	assert.Equal(t, center.ID, a2.CenterID)

	_, err = AllotAppointment(db, third.ID, models.CenterHospital, testDate)
	assert.ErrorIs(t, err, ErrNoCapacity)

	// The ceiling held: exactly capacityPerDay bookings for that date
	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).
		Where("center_id = ? AND status = ?", center.ID, models.AppointmentBooked).
		Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAllotDuplicateIsConflict(t *testing.T) {
	db := openTestDB(t)
	seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 5)
	user := seedUser(t, db, "asha", "Delhi")

	_, err := AllotAppointment(db, user.ID, models.CenterHospital, testDate)
	require.NoError(t, err)

	_, err = AllotAppointment(db, user.ID, models.CenterHospital, testDate.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "conflict must not create a record")
}

func TestAllotDifferentTypesAllowed(t *testing.T) {
	db := openTestDB(t)
	seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 5)
	seedCenter(t, db, "PS Connaught", models.CenterPolice, "Delhi", 5)
	user := seedUser(t, db, "asha", "Delhi")

	_, err := AllotAppointment(db, user.ID, models.CenterHospital, testDate)
	require.NoError(t, err)

	_, err = AllotAppointment(db, user.ID, models.CenterPolice, testDate)
	require.NoError(t, err)
}

func TestAllotValidation(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "asha", "Delhi")

	_, err := AllotAppointment(db, user.ID, "temple", testDate)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = AllotAppointment(db, 999, models.CenterHospital, testDate)
	assert.ErrorIs(t, err, ErrNotFound)

	// No hospital anywhere near this user
	_, err = AllotAppointment(db, user.ID, models.CenterHospital, testDate)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllotOnlyMatchesUserCity(t *testing.T) {
	db := openTestDB(t)
	seedCenter(t, db, "KEM Mumbai", models.CenterHospital, "Mumbai", 5)
	user := seedUser(t, db, "asha", "Delhi")

	_, err := AllotAppointment(db, user.ID, models.CenterHospital, testDate)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllotFirstFitIsDeterministic(t *testing.T) {
	db := openTestDB(t)
	full := seedCenter(t, db, "Small Clinic", models.CenterHospital, "Delhi", 1)
	spare := seedCenter(t, db, "Big Hospital", models.CenterHospital, "Delhi", 10)

	first := seedUser(t, db, "first", "Delhi")
	second := seedUser(t, db, "second", "Delhi")

	a1, err := AllotAppointment(db, first.ID, models.CenterHospital, testDate)
	require.NoError(t, err)
	assert.Equal(t, full.ID, a1.CenterID, "lowest center id wins while it has capacity")

	a2, err := AllotAppointment(db, second.ID, models.CenterHospital, testDate)
	require.NoError(t, err)
	assert.Equal(t, spare.ID, a2.CenterID, "first-fit moves on once a center is full")
}

func TestAllotCountsOnlySameDate(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 1)

	first := seedUser(t, db, "first", "Delhi")
	second := seedUser(t, db, "second", "Delhi")

	_, err := AllotAppointment(db, first.ID, models.CenterHospital, testDate)
	require.NoError(t, err)

	// Same center, next day: yesterday's booking does not count
	a2, err := AllotAppointment(db, second.ID, models.CenterHospital, testDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, center.ID, a2.CenterID)
}

func TestAllotIgnoresCompletedBookings(t *testing.T) {
	db := openTestDB(t)
	center := seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 1)

	first := seedUser(t, db, "first", "Delhi")
	second := seedUser(t, db, "second", "Delhi")

	a1, err := AllotAppointment(db, first.ID, models.CenterHospital, testDate)
	require.NoError(t, err)
	_, err = CompleteAppointment(db, a1.ID)
	require.NoError(t, err)

	// The completed slot no longer counts against capacity
	_, err = AllotAppointment(db, second.ID, models.CenterHospital, testDate)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).
		Where("center_id = ?", center.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestApproveAndAssign(t *testing.T) {
	db := openTestDB(t)
	hospital := seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 5)
	police := seedCenter(t, db, "PS Connaught", models.CenterPolice, "Delhi", 5)
	user := seedUser(t, db, "asha", "Delhi")

	appointments, err := ApproveAndAssign(db, user.ID)
	require.NoError(t, err)
	require.Len(t, appointments, 2)

	assert.Equal(t, hospital.ID, appointments[0].CenterID)
	assert.Equal(t, models.CenterHospital, appointments[0].CenterType)
	assert.Equal(t, police.ID, appointments[1].CenterID)
	assert.Equal(t, models.CenterPolice, appointments[1].CenterType)

	wantHospital := now.New(time.Now().AddDate(0, 0, 7)).BeginningOfDay()
	wantPolice := now.New(time.Now().AddDate(0, 0, 8)).BeginningOfDay()
	assert.True(t, appointments[0].Date.Equal(wantHospital))
	assert.True(t, appointments[1].Date.Equal(wantPolice))
}

func TestApproveAndAssignWithoutPoliceCenter(t *testing.T) {
	db := openTestDB(t)
	seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 5)
	user := seedUser(t, db, "asha", "Delhi")

	appointments, err := ApproveAndAssign(db, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	// The hospital booking made before the failure is reported back
	require.Len(t, appointments, 1)
	assert.Equal(t, models.CenterHospital, appointments[0].CenterType)
}

func TestCompleteAppointmentLifecycle(t *testing.T) {
	db := openTestDB(t)
	seedCenter(t, db, "AIIMS Delhi", models.CenterHospital, "Delhi", 5)
	user := seedUser(t, db, "asha", "Delhi")

	booked, err := AllotAppointment(db, user.ID, models.CenterHospital, testDate)
	require.NoError(t, err)

	completed, err := CompleteAppointment(db, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, completed.Status)

	// One-way: completing twice is a conflict
	_, err = CompleteAppointment(db, booked.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = CompleteAppointment(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
