package reservationstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/pkg/reqctx"
)

// Client клиент удаленного хранилища туров, выездов и бронирований
// Чтения повторяются при недоступности хранилища, изменяющие команды не повторяются никогда
type Client struct {
	baseURL      string
	httpClient   *http.Client
	readRetries  int
	retryBackoff time.Duration
	log          Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(baseURL string, timeout time.Duration, readRetries int, retryBackoff time.Duration, log Logger) *Client {
	if readRetries < 1 {
		readRetries = 1
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		readRetries:  readRetries,
		retryBackoff: retryBackoff,
		log:          log,
	}
}

// ============================================================
// Чтение
// ============================================================

// GetTour получает тур по ID
func (c *Client) GetTour(ctx context.Context, tourID int64) (*domain.Tour, error) {
	var tour Tour
	if err := c.read(ctx, fmt.Sprintf("/tours/%d", tourID), &tour); err != nil {
		return nil, err
	}
	return tour.toDomain(), nil
}

// ListTours получает каталог туров
func (c *Client) ListTours(ctx context.Context) ([]*domain.Tour, error) {
	var tours []Tour
	if err := c.read(ctx, "/tours", &tours); err != nil {
		return nil, err
	}

	result := make([]*domain.Tour, 0, len(tours))
	for _, t := range tours {
		result = append(result, t.toDomain())
	}
	return result, nil
}

// GetDeparture получает выезд по ID
func (c *Client) GetDeparture(ctx context.Context, departureID int64) (*domain.Departure, error) {
	var departure Departure
	if err := c.read(ctx, fmt.Sprintf("/departures/%d", departureID), &departure); err != nil {
		return nil, err
	}
	return departure.toDomain()
}

// ListDepartures получает выезды тура на дату
func (c *Client) ListDepartures(ctx context.Context, tourID int64, date time.Time) ([]*domain.Departure, error) {
	query := url.Values{}
	query.Set("tourId", strconv.FormatInt(tourID, 10))
	query.Set("date", date.Format(domain.DateFormat))

	var departures []Departure
	if err := c.read(ctx, "/departures?"+query.Encode(), &departures); err != nil {
		return nil, err
	}

	result := make([]*domain.Departure, 0, len(departures))
	for _, d := range departures {
		departure, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, departure)
	}
	return result, nil
}

// GetBooking получает бронирование по ID
// Тип бронирования нужно проецировать с выезда-владельца
func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	var booking Booking
	if err := c.read(ctx, fmt.Sprintf("/bookings/%d", bookingID), &booking); err != nil {
		return nil, err
	}
	return booking.toDomain(), nil
}

// ListDepartureBookings получает все бронирования выезда, включая отмененные
func (c *Client) ListDepartureBookings(ctx context.Context, departureID int64) ([]*domain.Booking, error) {
	var bookings []Booking
	if err := c.read(ctx, fmt.Sprintf("/departures/%d/bookings", departureID), &bookings); err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.toDomain())
	}
	return result, nil
}

// ============================================================
// Команды бронирований
// ============================================================

// CreateBooking создает бронирование (и новый выезд, если нужно)
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingState, error) {
	var resp bookingStateResponse
	if err := c.mutate(ctx, http.MethodPost, "/bookings", req, &resp); err != nil {
		return nil, err
	}
	return toBookingState(resp.Booking, resp.Departure)
}

// JoinBooking добавляет бронирование в существующий выезд
func (c *Client) JoinBooking(ctx context.Context, departureID int64, req JoinBookingRequest) (*BookingState, error) {
	var resp bookingStateResponse
	path := fmt.Sprintf("/departures/%d/bookings", departureID)
	if err := c.mutate(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return toBookingState(resp.Booking, resp.Departure)
}

// UpdateBookingStatus меняет статус бронирования
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) (*BookingState, error) {
	var resp bookingStateResponse
	path := fmt.Sprintf("/bookings/%d/status", bookingID)
	if err := c.mutate(ctx, http.MethodPatch, path, updateStatusRequest{Status: string(status)}, &resp); err != nil {
		return nil, err
	}
	return toBookingState(resp.Booking, resp.Departure)
}

// UpdateBookingPax меняет количество человек, хранилище пересчитывает цену
func (c *Client) UpdateBookingPax(ctx context.Context, bookingID int64, pax int) (*BookingState, error) {
	var resp bookingStateResponse
	path := fmt.Sprintf("/bookings/%d/pax", bookingID)
	if err := c.mutate(ctx, http.MethodPatch, path, updatePaxRequest{Pax: pax}, &resp); err != nil {
		return nil, err
	}
	return toBookingState(resp.Booking, resp.Departure)
}

// UpdateBookingDetails заменяет данные клиента
func (c *Client) UpdateBookingDetails(ctx context.Context, bookingID int64, customer domain.Customer) (*BookingState, error) {
	var resp bookingStateResponse
	path := fmt.Sprintf("/bookings/%d/details", bookingID)
	if err := c.mutate(ctx, http.MethodPut, path, CustomerFromDomain(customer), &resp); err != nil {
		return nil, err
	}
	return toBookingState(resp.Booking, resp.Departure)
}

// ApplyDiscount применяет скидку или переопределяет итоговую цену
func (c *Client) ApplyDiscount(ctx context.Context, bookingID int64, cmd domain.PriceCommand) (*BookingState, error) {
	body := applyDiscountRequest{
		DiscountAmount: cmd.DiscountAmount,
		NewFinalPrice:  cmd.NewFinalPrice,
		Reason:         cmd.Reason,
	}

	var resp bookingStateResponse
	path := fmt.Sprintf("/bookings/%d/discount", bookingID)
	if err := c.mutate(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return toBookingState(resp.Booking, resp.Departure)
}

// MoveBooking переносит бронирование на другой тур и/или дату
func (c *Client) MoveBooking(ctx context.Context, bookingID, newTourID int64, newDate time.Time) (*MoveResult, error) {
	body := moveBookingRequest{NewTourID: newTourID, NewDate: newDate.Format(domain.DateFormat)}

	var resp moveResponse
	path := fmt.Sprintf("/bookings/%d/move", bookingID)
	if err := c.mutate(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}

	state, err := toBookingState(resp.Booking, resp.Departure)
	if err != nil {
		return nil, err
	}
	previous, err := resp.PreviousDeparture.toDomain()
	if err != nil {
		return nil, err
	}

	return &MoveResult{Booking: state.Booking, Departure: state.Departure, PreviousDeparture: previous}, nil
}

// TransferBooking переводит бронирование в существующий общий выезд
func (c *Client) TransferBooking(ctx context.Context, bookingID, targetDepartureID int64) (*TransferResult, error) {
	var resp transferResponse
	path := fmt.Sprintf("/bookings/%d/transfer", bookingID)
	if err := c.mutate(ctx, http.MethodPost, path, transferBookingRequest{TargetDepartureID: targetDepartureID}, &resp); err != nil {
		return nil, err
	}

	state, err := toBookingState(resp.Booking, resp.Target)
	if err != nil {
		return nil, err
	}
	source, err := resp.Source.toDomain()
	if err != nil {
		return nil, err
	}

	return &TransferResult{Booking: state.Booking, Source: source, Target: state.Departure}, nil
}

// ConvertBookingType меняет тип выезда бронирования
func (c *Client) ConvertBookingType(ctx context.Context, bookingID int64, target domain.DepartureType) (*BookingState, error) {
	var resp bookingStateResponse
	path := fmt.Sprintf("/bookings/%d/convert", bookingID)
	if err := c.mutate(ctx, http.MethodPost, path, convertTypeRequest{TargetType: string(target)}, &resp); err != nil {
		return nil, err
	}
	return toBookingState(resp.Booking, resp.Departure)
}

// ============================================================
// Команды выездов и туров
// ============================================================

// UpdateDepartureDate меняет дату выезда вместе со всеми бронированиями
func (c *Client) UpdateDepartureDate(ctx context.Context, departureID int64, date time.Time) (*DepartureState, error) {
	var resp departureStateResponse
	path := fmt.Sprintf("/departures/%d/date", departureID)
	if err := c.mutate(ctx, http.MethodPatch, path, updateDepartureDateRequest{Date: date.Format(domain.DateFormat)}, &resp); err != nil {
		return nil, err
	}
	return toDepartureState(resp.Departure, resp.Bookings)
}

// UpdateDepartureTour меняет тур выезда, хранилище перепроверяет цены всех бронирований
func (c *Client) UpdateDepartureTour(ctx context.Context, departureID, tourID int64) (*DepartureState, error) {
	var resp departureStateResponse
	path := fmt.Sprintf("/departures/%d/tour", departureID)
	if err := c.mutate(ctx, http.MethodPatch, path, updateDepartureTourRequest{TourID: tourID}, &resp); err != nil {
		return nil, err
	}
	return toDepartureState(resp.Departure, resp.Bookings)
}

// SplitDeparture выделяет бронирование в новый выезд-клон
func (c *Client) SplitDeparture(ctx context.Context, departureID, bookingID int64) (*SplitResult, error) {
	var resp splitResponse
	path := fmt.Sprintf("/departures/%d/split", departureID)
	if err := c.mutate(ctx, http.MethodPost, path, splitDepartureRequest{BookingID: bookingID}, &resp); err != nil {
		return nil, err
	}

	source, err := resp.Source.toDomain()
	if err != nil {
		return nil, err
	}
	state, err := toBookingState(resp.Booking, resp.Created)
	if err != nil {
		return nil, err
	}

	return &SplitResult{Source: source, Created: state.Departure, Booking: state.Booking}, nil
}

// DeleteDeparture удаляет пустой выезд
func (c *Client) DeleteDeparture(ctx context.Context, departureID int64) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/departures/%d", departureID), nil, nil)
}

// UpdateTourPricing заменяет таблицу цен тура
func (c *Client) UpdateTourPricing(ctx context.Context, tourID int64, tiers []domain.PricingTier) (*domain.Tour, error) {
	var tour Tour
	path := fmt.Sprintf("/tours/%d/pricing", tourID)
	if err := c.mutate(ctx, http.MethodPut, path, updateTourPricingRequest{PricingTiers: tiers}, &tour); err != nil {
		return nil, err
	}
	return tour.toDomain(), nil
}

// ============================================================
// Транспорт
// ============================================================

// read выполняет GET с повторами и линейной задержкой при недоступности хранилища
func (c *Client) read(ctx context.Context, path string, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= c.readRetries; attempt++ {
		err := c.do(ctx, http.MethodGet, path, nil, out, false)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrUnavailable) {
			return err
		}

		lastErr = err
		if attempt == c.readRetries {
			break
		}

		c.log.Warn("Reservation store read %s failed (attempt %d/%d): %v", path, attempt, c.readRetries, err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-time.After(c.retryBackoff * time.Duration(attempt)):
		}
	}
	return lastErr
}

// mutate выполняет изменяющую команду ровно один раз
func (c *Client) mutate(ctx context.Context, method, path string, body, out interface{}) error {
	err := c.do(ctx, method, path, body, out, true)
	if errors.Is(err, ErrOutcomeUnknown) {
		c.log.Error("Reservation store command %s %s outcome unknown: %v", method, path, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, mutating bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if credential := reqctx.Credential(ctx); credential != "" {
		req.Header.Set("Authorization", credential)
	}
	if requestID := reqctx.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(method, path, err, mutating)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	default:
		return decodeError(resp, mutating)
	}

	if out == nil {
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// classifyTransportError разделяет "команда не отправлена" и "ответ не получен"
// Для изменяющих команд потерянный ответ означает неизвестный результат
func classifyTransportError(method, path string, err error, mutating bool) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}

	if mutating {
		return fmt.Errorf("%w: %s %s: %v", ErrOutcomeUnknown, method, path, err)
	}
	return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
}

// decodeError переводит ошибку хранилища в таксономию домена
func decodeError(resp *http.Response, mutating bool) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	_ = json.Unmarshal(body, &errResp)

	message := errResp.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	switch errResp.Code {
	case CodeCapacityExceeded:
		available := 0
		if errResp.Available != nil {
			available = *errResp.Available
		}
		return &domain.CapacityExceededError{Requested: errResp.Requested, Available: available}
	case CodeTierNotFound:
		return &domain.TierNotFoundError{Pax: errResp.Pax}
	case CodeStaleState:
		return fmt.Errorf("%w: %s", domain.ErrStaleState, message)
	case CodeConversionBlocked:
		return fmt.Errorf("%w: %s", domain.ErrConversionBlocked, message)
	case CodeTerminalState:
		return fmt.Errorf("%w: %s", domain.ErrTerminalState, message)
	case CodeInvalidPriceCommand:
		return fmt.Errorf("%w: %s", domain.ErrInvalidPriceCommand, message)
	case CodeNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, message)
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrStaleState, message)
	case http.StatusGatewayTimeout:
		if mutating {
			return fmt.Errorf("%w: %s", ErrOutcomeUnknown, message)
		}
		return fmt.Errorf("%w: %s", ErrUnavailable, message)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
