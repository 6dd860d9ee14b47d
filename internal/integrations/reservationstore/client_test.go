package reservationstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
	"github.com/m04kA/SMC-TourBookingService/pkg/reqctx"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, 3, time.Millisecond, logger.NewNop()), srv
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func testDeparture(id int64, depType string, currentPax int) Departure {
	return Departure{
		ID:         id,
		TourID:     1,
		Date:       "2026-11-20",
		Type:       depType,
		Status:     "open",
		MaxPax:     8,
		CurrentPax: currentPax,
	}
}

func TestClient_GetTour_ForwardsCredential(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tours/7", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, Tour{
			ID:           7,
			Name:         domain.LocalizedText{ES: "Cañón", EN: "Canyon"},
			PricingTiers: []domain.PricingTier{{MinPax: 1, MaxPax: 4, PriceCOP: 180000}},
			Active:       true,
		})
	})

	ctx := reqctx.WithCredential(context.Background(), "Bearer opaque-token")
	tour, err := client.GetTour(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), tour.ID)
	assert.Equal(t, "Canyon", tour.Name.EN)
	require.Len(t, tour.PricingTiers, 1)
	assert.Equal(t, int64(180000), tour.PricingTiers[0].PriceCOP)
}

func TestClient_ReadRetriesWhenUnavailable(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, testDeparture(5, "public", 6))
	})

	departure, err := client.GetDeparture(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, domain.DepartureTypePublic, departure.Type)
	assert.Equal(t, 6, departure.CurrentPax)
}

func TestClient_ReadGivesUpAfterRetries(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetBooking(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_ReadNotFoundIsNotRetried(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusNotFound, ErrorResponse{Code: CodeNotFound, Message: "booking not found"})
	})

	_, err := client.GetBooking(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_MutationIsNeverRetried(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.JoinBooking(context.Background(), 5, JoinBookingRequest{Pax: 2})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_MutationTimeoutIsOutcomeUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, 50*time.Millisecond, 3, time.Millisecond, logger.NewNop())

	_, err := client.UpdateBookingPax(context.Background(), 3, 4)
	assert.ErrorIs(t, err, ErrOutcomeUnknown)
}

func TestClient_GatewayTimeoutOnMutationIsOutcomeUnknown(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	})

	_, err := client.SplitDeparture(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrOutcomeUnknown)
}

func TestClient_UnreachableStoreIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, 2, time.Millisecond, logger.NewNop())

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{TourID: 1})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, errors.Is(err, ErrOutcomeUnknown))
}

func TestClient_CapacityRejectionCarriesAvailable(t *testing.T) {
	available := 2
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Code:      CodeCapacityExceeded,
			Message:   "not enough seats",
			Available: &available,
			Requested: 3,
		})
	})

	_, err := client.JoinBooking(context.Background(), 5, JoinBookingRequest{Pax: 3})
	require.Error(t, err)

	var capErr *domain.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 2, capErr.Available)
	assert.Equal(t, 3, capErr.Requested)
}

func TestClient_ErrorCodesMapToTaxonomy(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{CodeStaleState, domain.ErrStaleState},
		{CodeConversionBlocked, domain.ErrConversionBlocked},
		{CodeTerminalState, domain.ErrTerminalState},
		{CodeTierNotFound, domain.ErrTierNotFound},
		{CodeInvalidPriceCommand, domain.ErrInvalidPriceCommand},
		{CodeNotFound, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusConflict, ErrorResponse{Code: tt.code, Message: "rejected"})
			})

			_, err := client.ConvertBookingType(context.Background(), 1, domain.DepartureTypePrivate)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_JoinBookingProjectsDepartureType(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/departures/5/bookings", r.URL.Path)

		var req JoinBookingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Pax)

		writeJSON(w, http.StatusCreated, bookingStateResponse{
			Booking: Booking{
				ID:             11,
				DepartureID:    5,
				Pax:            2,
				Type:           "private",
				TypeAtCreation: "private",
				Currency:       "COP",
				OriginalPrice:  360000,
				FinalPrice:     360000,
				Status:         "pending",
			},
			Departure: testDeparture(5, "public", 8),
		})
	})

	state, err := client.JoinBooking(context.Background(), 5, JoinBookingRequest{Pax: 2})
	require.NoError(t, err)

	assert.Equal(t, domain.DepartureTypePublic, state.Booking.Type)
	assert.Equal(t, domain.DepartureTypePrivate, state.Booking.TypeAtCreation)
	assert.Equal(t, 8, state.Departure.CurrentPax)
	assert.Equal(t, int64(360000), state.Booking.OriginalPrice)
}

func TestClient_ListDeparturesQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/departures", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("tourId"))
		assert.Equal(t, "2026-11-20", r.URL.Query().Get("date"))
		writeJSON(w, http.StatusOK, []Departure{testDeparture(1, "private", 2), testDeparture(2, "public", 4)})
	})

	date := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)
	departures, err := client.ListDepartures(context.Background(), 3, date)
	require.NoError(t, err)
	require.Len(t, departures, 2)
	assert.Equal(t, domain.DepartureTypePrivate, departures[0].Type)
}

func TestClient_InvalidDepartureDate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		dep := testDeparture(1, "private", 0)
		dep.Date = "20/11/2026"
		writeJSON(w, http.StatusOK, dep)
	})

	_, err := client.GetDeparture(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_DeleteDeparture(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/departures/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteDeparture(context.Background(), 9))
}
