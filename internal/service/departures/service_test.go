package departures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
)

var date = time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)

func newTestService() (*Service, *mockReader, *mockStore, *recordingDispatcher) {
	reader := new(mockReader)
	store := new(mockStore)
	dispatcher := &recordingDispatcher{}
	return NewService(reader, store, dispatcher, logger.NewNop()), reader, store, dispatcher
}

func departure() *domain.Departure {
	return &domain.Departure{ID: 5, TourID: 1, Date: date, Type: domain.DepartureTypePublic, Status: domain.DepartureStatusOpen, MaxPax: 8, CurrentPax: 3}
}

func TestGetByID_RecomputesOccupancy(t *testing.T) {
	s, reader, _, _ := newTestService()
	dep := departure()
	reader.On("Departure", mock.Anything, int64(5)).Return(dep, nil)
	reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{
		{ID: 1, DepartureID: 5, Pax: 6, Status: domain.StatusConfirmed, Type: domain.DepartureTypePublic},
		{ID: 2, DepartureID: 5, Pax: 2, Status: domain.StatusCancelled, Type: domain.DepartureTypePublic},
	}, nil)

	resp, err := s.GetByID(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 6, resp.Departure.CurrentPax)
	assert.Equal(t, 2, resp.Departure.AvailableSpace)
	assert.Equal(t, "2026-11-20", resp.Departure.Date)
	assert.Len(t, resp.Bookings, 2)
}

func TestList(t *testing.T) {
	s, reader, _, _ := newTestService()
	reader.On("Departures", mock.Anything, int64(1), date).Return([]*domain.Departure{departure()}, nil)

	resp, err := s.List(context.Background(), 1, date)
	require.NoError(t, err)
	require.Len(t, resp.Departures, 1)
	assert.Equal(t, 5, resp.Departures[0].AvailableSpace)

	_, err = s.List(context.Background(), 0, date)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_EmptyDeparture(t *testing.T) {
	s, reader, store, dispatcher := newTestService()
	dep := departure()
	reader.On("Departure", mock.Anything, int64(5)).Return(dep, nil)
	reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{
		{ID: 2, DepartureID: 5, Pax: 2, Status: domain.StatusCancelled},
	}, nil)
	store.On("DeleteDeparture", mock.Anything, int64(5)).Return(nil)

	require.NoError(t, s.Delete(context.Background(), 5, true))

	require.Len(t, dispatcher.commands, 1)
	assert.Equal(t, engine.CommandDeleteDeparture, dispatcher.commands[0].Name)
	assert.Contains(t, dispatcher.keys, "departures:tour:1:2026-11-20")
	store.AssertExpectations(t)
}

func TestDelete_OccupiedDeparture(t *testing.T) {
	s, reader, store, dispatcher := newTestService()
	dep := departure()
	reader.On("Departure", mock.Anything, int64(5)).Return(dep, nil)
	reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{
		{ID: 1, DepartureID: 5, Pax: 1, Status: domain.StatusPending},
	}, nil)

	err := s.Delete(context.Background(), 5, true)
	assert.ErrorIs(t, err, domain.ErrTerminalState)
	assert.Empty(t, dispatcher.commands)
	store.AssertNotCalled(t, "DeleteDeparture", mock.Anything, mock.Anything)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	s, reader, _, _ := newTestService()

	err := s.Delete(context.Background(), 5, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	reader.AssertNotCalled(t, "Departure", mock.Anything, mock.Anything)
}
