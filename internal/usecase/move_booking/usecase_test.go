package move_booking

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

var (
	oldDate = time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)
	newDate = time.Date(2026, 11, 27, 0, 0, 0, 0, time.UTC)
)

type testDeps struct {
	reader     *mockReader
	store      *mockStore
	dispatcher *recordingDispatcher
	metrics    *stubMetrics
}

func newTestUseCase() (*UseCase, *testDeps) {
	deps := &testDeps{
		reader:     new(mockReader),
		store:      new(mockStore),
		dispatcher: &recordingDispatcher{},
		metrics:    &stubMetrics{},
	}
	uc := NewUseCase(deps.reader, deps.store, deps.dispatcher, deps.metrics, logger.NewNop())
	uc.timeProvider = &fixedTime{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	return uc, deps
}

func departure(depType domain.DepartureType) *domain.Departure {
	return &domain.Departure{ID: 5, TourID: 1, Date: oldDate, Type: depType, Status: domain.DepartureStatusOpen, MaxPax: 8, CurrentPax: 2}
}

func booking() *domain.Booking {
	return &domain.Booking{
		ID:            10,
		DepartureID:   5,
		Pax:           2,
		Currency:      domain.CurrencyCOP,
		OriginalPrice: 360000,
		FinalPrice:    360000,
		Status:        domain.StatusConfirmed,
	}
}

func newTour() *domain.Tour {
	return &domain.Tour{
		ID:     2,
		Active: true,
		PricingTiers: []domain.PricingTier{
			{MinPax: 1, MaxPax: 1, PriceCOP: 250000, PriceUSD: 6500},
			{MinPax: 2, MaxPax: 8, PriceCOP: 140000, PriceUSD: 3600},
		},
	}
}

func TestExecute_MovesToNewTourWithPriceFromTier(t *testing.T) {
	uc, deps := newTestUseCase()
	dep := departure(domain.DepartureTypePrivate)
	deps.reader.On("Booking", mock.Anything, int64(10)).Return(booking(), dep, nil)
	deps.reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{booking()}, nil)
	deps.reader.On("Tour", mock.Anything, int64(2)).Return(newTour(), nil)

	moved := booking()
	moved.DepartureID = 9
	moved.OriginalPrice = 280000
	moved.FinalPrice = 280000
	target := &domain.Departure{ID: 9, TourID: 2, Date: oldDate, Type: domain.DepartureTypePrivate}
	deps.store.On("MoveBooking", mock.Anything, int64(10), int64(2), oldDate).Return(&reservationstore.MoveResult{
		Booking:           moved,
		Departure:         target,
		PreviousDeparture: dep,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewTourID: 2})
	require.NoError(t, err)

	// 2 pax * 140000, а не удвоенная старая цена
	assert.Equal(t, int64(280000), resp.ExpectedPrice)
	assert.False(t, resp.PriceDrift)
	assert.Equal(t, int64(9), resp.Departure.ID)

	require.Len(t, deps.dispatcher.commands, 1)
	cmd := deps.dispatcher.commands[0]
	assert.Equal(t, engine.CommandMoveBooking, cmd.Name)
	assert.Equal(t, engine.TargetBooking, cmd.TargetKind)
	assert.Contains(t, cmd.Invalidates, "departures:tour:2:2026-11-20")
	assert.Contains(t, deps.dispatcher.keys, "departure:9")
	assert.Contains(t, deps.dispatcher.keys, "departure:5")
}

func TestExecute_DoubledPriceIsFlaggedAsDrift(t *testing.T) {
	uc, deps := newTestUseCase()
	dep := departure(domain.DepartureTypePrivate)
	deps.reader.On("Booking", mock.Anything, int64(10)).Return(booking(), dep, nil)
	deps.reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{booking()}, nil)
	deps.reader.On("Tour", mock.Anything, int64(2)).Return(newTour(), nil)

	moved := booking()
	moved.OriginalPrice = 560000
	deps.store.On("MoveBooking", mock.Anything, int64(10), int64(2), oldDate).Return(&reservationstore.MoveResult{
		Booking:           moved,
		Departure:         &domain.Departure{ID: 9, TourID: 2, Date: oldDate},
		PreviousDeparture: dep,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewTourID: 2})
	require.NoError(t, err)
	assert.True(t, resp.PriceDrift)
	assert.Equal(t, 1, deps.metrics.priceDrifts)
}

func TestExecute_SharedPublicDepartureIsNotEditable(t *testing.T) {
	uc, deps := newTestUseCase()
	dep := departure(domain.DepartureTypePublic)
	deps.reader.On("Booking", mock.Anything, int64(10)).Return(booking(), dep, nil)
	deps.reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{
		booking(),
		{ID: 11, DepartureID: 5, Pax: 3, Status: domain.StatusPending},
	}, nil)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewDate: newDate})
	assert.ErrorIs(t, err, ErrBookingNotEditable)
	assert.Empty(t, deps.dispatcher.commands)
}

func TestExecute_SoloPublicBookingMovesDate(t *testing.T) {
	uc, deps := newTestUseCase()
	dep := departure(domain.DepartureTypePublic)
	deps.reader.On("Booking", mock.Anything, int64(10)).Return(booking(), dep, nil)
	deps.reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{
		booking(),
		{ID: 11, DepartureID: 5, Pax: 3, Status: domain.StatusCancelled},
	}, nil)
	deps.reader.On("Tour", mock.Anything, int64(1)).Return(&domain.Tour{
		ID:           1,
		Active:       true,
		PricingTiers: []domain.PricingTier{{MinPax: 1, MaxPax: 8, PriceCOP: 180000}},
	}, nil)

	moved := booking()
	deps.store.On("MoveBooking", mock.Anything, int64(10), int64(1), newDate).Return(&reservationstore.MoveResult{
		Booking:           moved,
		Departure:         &domain.Departure{ID: 12, TourID: 1, Date: newDate},
		PreviousDeparture: dep,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewDate: newDate})
	require.NoError(t, err)
	assert.Equal(t, int64(360000), resp.ExpectedPrice)
	assert.False(t, resp.PriceDrift)
}

func TestExecute_NewTourWithoutTierFailsFast(t *testing.T) {
	uc, deps := newTestUseCase()
	dep := departure(domain.DepartureTypePrivate)
	b := booking()
	b.Pax = 9
	deps.reader.On("Booking", mock.Anything, int64(10)).Return(b, dep, nil)
	deps.reader.On("DepartureBookings", mock.Anything, dep).Return([]*domain.Booking{b}, nil)
	deps.reader.On("Tour", mock.Anything, int64(2)).Return(newTour(), nil)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewTourID: 2})
	assert.ErrorIs(t, err, domain.ErrTierNotFound)
	assert.Empty(t, deps.dispatcher.commands)
}

func TestExecute_Rejections(t *testing.T) {
	t.Run("cancelled booking", func(t *testing.T) {
		uc, deps := newTestUseCase()
		b := booking()
		b.Status = domain.StatusCancelled
		deps.reader.On("Booking", mock.Anything, int64(10)).Return(b, departure(domain.DepartureTypePrivate), nil)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewDate: newDate})
		assert.ErrorIs(t, err, domain.ErrTerminalState)
	})

	t.Run("same tour and date", func(t *testing.T) {
		uc, deps := newTestUseCase()
		deps.reader.On("Booking", mock.Anything, int64(10)).Return(booking(), departure(domain.DepartureTypePrivate), nil)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewTourID: 1, NewDate: oldDate})
		assert.ErrorIs(t, err, ErrNothingToChange)
	})

	t.Run("past date", func(t *testing.T) {
		uc, deps := newTestUseCase()
		deps.reader.On("Booking", mock.Anything, int64(10)).Return(booking(), departure(domain.DepartureTypePrivate), nil)

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10, NewDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("nothing requested", func(t *testing.T) {
		uc, _ := newTestUseCase()

		_, err := uc.Execute(context.Background(), &Request{BookingID: 10})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
