package split_departure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
)

var date = time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)

func newTestUseCase() (*UseCase, *mockReader, *mockStore, *recordingDispatcher) {
	reader := new(mockReader)
	store := new(mockStore)
	dispatcher := &recordingDispatcher{}
	return NewUseCase(reader, store, dispatcher, logger.NewNop()), reader, store, dispatcher
}

// Общий выезд maxPax=10 с бронированиями A (3 pax) и B (4 pax)
func sharedDeparture() *domain.Departure {
	return &domain.Departure{ID: 5, TourID: 1, Date: date, Type: domain.DepartureTypePublic, Status: domain.DepartureStatusOpen, MaxPax: 10, CurrentPax: 7}
}

func sharedBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, DepartureID: 5, Pax: 3, Status: domain.StatusConfirmed},
		{ID: 2, DepartureID: 5, Pax: 4, Status: domain.StatusPaid},
	}
}

func splitResult() *reservationstore.SplitResult {
	source := sharedDeparture()
	source.CurrentPax = 3
	created := &domain.Departure{ID: 9, TourID: 1, Date: date, Type: domain.DepartureTypePublic, Status: domain.DepartureStatusOpen, MaxPax: 10, CurrentPax: 4}
	return &reservationstore.SplitResult{
		Source:  source,
		Created: created,
		Booking: &domain.Booking{ID: 2, DepartureID: 9, Pax: 4, Status: domain.StatusPaid, Type: domain.DepartureTypePublic},
	}
}

func TestExecute_SplitScenario(t *testing.T) {
	uc, reader, store, dispatcher := newTestUseCase()
	dep := sharedDeparture()
	reader.On("Departure", mock.Anything, int64(5)).Return(dep, nil)
	reader.On("DepartureBookings", mock.Anything, dep).Return(sharedBookings(), nil)
	store.On("SplitDeparture", mock.Anything, int64(5), int64(2)).Return(splitResult(), nil)

	resp, err := uc.Execute(context.Background(), &Request{DepartureID: 5, BookingID: 2})
	require.NoError(t, err)

	assert.True(t, resp.Verified)
	assert.Empty(t, resp.Mismatches)
	assert.Equal(t, 3, resp.Source.CurrentPax)
	assert.Equal(t, int64(9), resp.Booking.DepartureID)
	assert.Equal(t, 10, resp.Created.MaxPax)

	require.Len(t, dispatcher.commands, 1)
	cmd := dispatcher.commands[0]
	assert.Equal(t, engine.CommandSplitDeparture, cmd.Name)
	assert.Equal(t, engine.TargetDeparture, cmd.TargetKind)
	assert.Equal(t, int64(5), cmd.TargetID)
	assert.Contains(t, dispatcher.keys, "departure:9")
	assert.Contains(t, dispatcher.keys, "booking:2")
}

func TestExecute_MismatchIsReportedNotFailed(t *testing.T) {
	uc, reader, store, _ := newTestUseCase()
	dep := sharedDeparture()
	reader.On("Departure", mock.Anything, int64(5)).Return(dep, nil)
	reader.On("DepartureBookings", mock.Anything, dep).Return(sharedBookings(), nil)

	result := splitResult()
	result.Source.CurrentPax = 7
	result.Created.MaxPax = 4
	store.On("SplitDeparture", mock.Anything, int64(5), int64(2)).Return(result, nil)

	resp, err := uc.Execute(context.Background(), &Request{DepartureID: 5, BookingID: 2})
	require.NoError(t, err)

	assert.False(t, resp.Verified)
	assert.Len(t, resp.Mismatches, 2)
}

func TestExecute_SoloBookingHasNothingToSplit(t *testing.T) {
	uc, reader, _, dispatcher := newTestUseCase()
	dep := sharedDeparture()
	reader.On("Departure", mock.Anything, int64(5)).Return(dep, nil)
	reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{
		{ID: 1, DepartureID: 5, Pax: 3, Status: domain.StatusCancelled},
		{ID: 2, DepartureID: 5, Pax: 4, Status: domain.StatusPaid},
	}, nil)

	_, err := uc.Execute(context.Background(), &Request{DepartureID: 5, BookingID: 2})
	assert.ErrorIs(t, err, ErrNothingToSplit)
	assert.Empty(t, dispatcher.commands)
}

func TestExecute_BookingMustBeActiveInDeparture(t *testing.T) {
	uc, reader, _, _ := newTestUseCase()
	dep := sharedDeparture()
	reader.On("Departure", mock.Anything, int64(5)).Return(dep, nil)
	reader.On("DepartureBookings", mock.Anything, dep).Return(sharedBookings(), nil)

	_, err := uc.Execute(context.Background(), &Request{DepartureID: 5, BookingID: 99})
	assert.ErrorIs(t, err, ErrBookingNotInDeparture)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{DepartureID: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
