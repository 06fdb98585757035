package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftdesk/internal/dto"
	"shiftdesk/internal/model"
	"shiftdesk/internal/service"
)

func newShiftFixture() (*memStore, service.ShiftService) {
	s := newMemStore()
	return s, service.NewShiftService(&memShiftRepo{s}, nil)
}

func TestShiftCreateNormalizesTimes(t *testing.T) {
	_, svc := newShiftFixture()

	resp, err := svc.Create(context.Background(), dto.CreateShiftRequest{
		Name:             model.ShiftFirst,
		StartTime:        "09:00",
		EndTime:          "16:00",
		DurationHours:    mustDecimal("7"),
		DefaultPaidHours: mustDecimal("6.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", resp.StartTime)
	assert.Equal(t, "16:00:00", resp.EndTime)
	assert.Equal(t, "7.00", resp.DurationHours)
	assert.Equal(t, "6.50", resp.DefaultPaidHours)
	assert.Equal(t, "First Shift (09:00–16:00)", resp.DisplayName)
}

func TestShiftCreateInvalidTime(t *testing.T) {
	_, svc := newShiftFixture()

	_, err := svc.Create(context.Background(), dto.CreateShiftRequest{
		Name:          model.ShiftFirst,
		StartTime:     "9 o'clock",
		EndTime:       "16:00",
		DurationHours: mustDecimal("7"),
	})
	assert.ErrorIs(t, err, service.ErrInvalidTime)
}

func TestShiftCreatePaidExceedsDuration(t *testing.T) {
	_, svc := newShiftFixture()

	_, err := svc.Create(context.Background(), dto.CreateShiftRequest{
		Name:             model.ShiftFirst,
		StartTime:        "09:00",
		EndTime:          "16:00",
		DurationHours:    mustDecimal("7"),
		DefaultPaidHours: mustDecimal("7.5"),
	})
	assert.ErrorIs(t, err, service.ErrPaidExceedsDuration)
}

func TestShiftUpdate(t *testing.T) {
	store, svc := newShiftFixture()
	sh := store.addShift(model.ShiftSecond, "16:00:00", "22:30:00", "6.5", "6")

	paid := mustDecimal("5.5")
	resp, err := svc.Update(context.Background(), sh.ID, dto.UpdateShiftRequest{
		DefaultPaidHours: &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, "5.50", resp.DefaultPaidHours)
	assert.Equal(t, "6.50", resp.DurationHours)

	bad := mustDecimal("9")
	_, err = svc.Update(context.Background(), sh.ID, dto.UpdateShiftRequest{
		DefaultPaidHours: &bad,
	})
	assert.ErrorIs(t, err, service.ErrPaidExceedsDuration)
}

func TestShiftList(t *testing.T) {
	store, svc := newShiftFixture()
	store.addShift(model.ShiftFirst, "09:00:00", "16:00:00", "7", "6.5")
	store.addShift(model.ShiftOff, "00:00:00", "00:00:00", "0", "0")

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestShiftGetMissing(t *testing.T) {
	_, svc := newShiftFixture()

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestShiftDelete(t *testing.T) {
	store, svc := newShiftFixture()
	sh := store.addShift(model.ShiftFirst, "09:00:00", "16:00:00", "7", "6.5")

	require.NoError(t, svc.Delete(context.Background(), sh.ID))
	assert.Empty(t, store.shifts)
}
