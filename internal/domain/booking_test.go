package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/pkg/ptr"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name      string
		from      BookingStatus
		to        BookingStatus
		confirmed bool
		wantErr   error
		anyErr    bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed},
		{name: "confirmed to paid", from: StatusConfirmed, to: StatusPaid},
		{name: "paid to cancelled confirmed", from: StatusPaid, to: StatusCancelled, confirmed: true},
		{name: "cancel without confirmation", from: StatusPending, to: StatusCancelled, wantErr: ErrConfirmationRequired},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, confirmed: true, wantErr: ErrTerminalState},
		{name: "cancelled to cancelled", from: StatusCancelled, to: StatusCancelled, confirmed: true, wantErr: ErrTerminalState},
		{name: "paid back to pending", from: StatusPaid, to: StatusPending, anyErr: true},
		{name: "unknown status", from: StatusPending, to: BookingStatus("archived"), anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStatusTransition(tt.from, tt.to, tt.confirmed)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestBooking_EnsureMutable(t *testing.T) {
	assert.NoError(t, (&Booking{Status: StatusPaid}).EnsureMutable())
	assert.ErrorIs(t, (&Booking{Status: StatusCancelled}).EnsureMutable(), ErrTerminalState)
}

func TestProjectTypes_FollowsDeparture(t *testing.T) {
	dep := &Departure{ID: 3, Type: DepartureTypePublic}
	own := &Booking{ID: 1, DepartureID: 3, Type: DepartureTypePrivate, TypeAtCreation: DepartureTypePrivate}
	foreign := &Booking{ID: 2, DepartureID: 4, Type: DepartureTypePrivate}

	ProjectTypes(dep, []*Booking{own, foreign, nil})

	assert.Equal(t, DepartureTypePublic, own.Type)
	assert.Equal(t, DepartureTypePrivate, own.TypeAtCreation)
	assert.Equal(t, DepartureTypePrivate, foreign.Type)
}

func TestValidateConversion(t *testing.T) {
	private := &Departure{ID: 1, Type: DepartureTypePrivate}
	public := &Departure{ID: 2, Type: DepartureTypePublic}
	other := []*Booking{{ID: 9, DepartureID: 2, Pax: 1, Status: StatusConfirmed}}

	assert.NoError(t, ValidateConversion(private, nil, DepartureTypePublic))
	assert.NoError(t, ValidateConversion(public, nil, DepartureTypePrivate))

	assert.ErrorIs(t, ValidateConversion(public, nil, DepartureTypePublic), ErrConversionBlocked)
	assert.ErrorIs(t, ValidateConversion(private, nil, DepartureTypePrivate), ErrConversionBlocked)
	assert.ErrorIs(t, ValidateConversion(public, other, DepartureTypePrivate), ErrConversionBlocked)
	assert.ErrorIs(t, ValidateConversion(public, nil, DepartureType("shared")), ErrConversionBlocked)
}

func TestRelatedBookingsAndDirectEdit(t *testing.T) {
	booking := &Booking{ID: 1, DepartureID: 5, Pax: 2, Status: StatusConfirmed}
	all := []*Booking{
		booking,
		{ID: 2, DepartureID: 5, Pax: 3, Status: StatusCancelled},
		{ID: 3, DepartureID: 6, Pax: 3, Status: StatusConfirmed},
	}

	related := RelatedBookings(booking, all)
	assert.Empty(t, related)

	public := &Departure{ID: 5, Type: DepartureTypePublic}
	assert.True(t, IsDirectlyEditable(public, related))

	all = append(all, &Booking{ID: 4, DepartureID: 5, Pax: 1, Status: StatusPending})
	related = RelatedBookings(booking, all)
	require.Len(t, related, 1)
	assert.False(t, IsDirectlyEditable(public, related))

	private := &Departure{ID: 5, Type: DepartureTypePrivate}
	assert.True(t, IsDirectlyEditable(private, related))
}

func TestPriceCommand(t *testing.T) {
	tests := []struct {
		name      string
		cmd       PriceCommand
		original  int64
		wantErr   bool
		wantFinal int64
	}{
		{name: "discount", cmd: PriceCommand{DiscountAmount: ptr.Ptr(int64(50000)), Reason: "returning customer"}, original: 360000, wantFinal: 310000},
		{name: "override above original", cmd: PriceCommand{NewFinalPrice: ptr.Ptr(int64(400000)), Reason: "private guide"}, original: 360000, wantFinal: 400000},
		{name: "override to zero", cmd: PriceCommand{NewFinalPrice: ptr.Ptr(int64(0)), Reason: "courtesy"}, original: 360000, wantFinal: 0},
		{name: "both set", cmd: PriceCommand{DiscountAmount: ptr.Ptr(int64(1)), NewFinalPrice: ptr.Ptr(int64(1)), Reason: "x"}, original: 10, wantErr: true},
		{name: "none set", cmd: PriceCommand{Reason: "x"}, original: 10, wantErr: true},
		{name: "missing reason", cmd: PriceCommand{DiscountAmount: ptr.Ptr(int64(1)), Reason: "  "}, original: 10, wantErr: true},
		{name: "negative discount", cmd: PriceCommand{DiscountAmount: ptr.Ptr(int64(-1)), Reason: "x"}, original: 10, wantErr: true},
		{name: "discount above original", cmd: PriceCommand{DiscountAmount: ptr.Ptr(int64(11)), Reason: "x"}, original: 10, wantErr: true},
		{name: "negative override", cmd: PriceCommand{NewFinalPrice: ptr.Ptr(int64(-5)), Reason: "x"}, original: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(tt.original)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPriceCommand)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFinal, tt.cmd.FinalPrice(tt.original))
		})
	}
}

func TestCustomer_Validate(t *testing.T) {
	valid := Customer{Name: "Ana Gómez", Email: "ana@example.com", Phone: "+57 300 000 0000"}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = " "
	assert.ErrorIs(t, noName.Validate(), ErrInvalidCustomer)

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.ErrorIs(t, badEmail.Validate(), ErrInvalidCustomer)

	noPhone := valid
	noPhone.Phone = ""
	assert.ErrorIs(t, noPhone.Validate(), ErrInvalidCustomer)
}
