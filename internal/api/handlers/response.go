package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/engine"
	"github.com/m04kA/SMC-TourBookingService/internal/integrations/reservationstore"
)

const (
	msgInternalError        = "внутренняя ошибка сервера"
	msgCapacityExceeded     = "недостаточно мест в выезде"
	msgStaleState           = "состояние изменилось, обновите данные и повторите"
	msgConversionBlocked    = "смена типа бронирования недоступна"
	msgTerminalState        = "операция недоступна в текущем состоянии"
	msgTierNotFound         = "нет тарифа для указанного количества человек"
	msgInvalidPriceCommand  = "некорректная скидка или цена"
	msgInvalidPricingTable  = "некорректная таблица цен"
	msgInvalidCustomer      = "некорректные данные клиента"
	msgConfirmationRequired = "операция необратима и требует подтверждения"
	msgNotFound             = "не найдено"
	msgCommandInFlight      = "по этой сущности уже выполняется команда"
	msgOutcomeUnknown       = "результат операции неизвестен, обновите данные"
	msgStoreUnavailable     = "хранилище бронирований недоступно"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Available *int   `json:"available,omitempty"` // Только для отказа по вместимости
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondDomainError отправляет ответ для ошибок движка бронирований и возвращает HTTP статус
// Ошибки, специфичные для операции, обрабатываются в хендлере до вызова
func RespondDomainError(w http.ResponseWriter, err error) int {
	var capErr *domain.CapacityExceededError
	if errors.As(err, &capErr) {
		available := capErr.Available
		RespondJSON(w, http.StatusConflict, ErrorResponse{
			Code:      http.StatusConflict,
			Message:   msgCapacityExceeded,
			Available: &available,
		})
		return http.StatusConflict
	}

	status, message := classify(err)
	if status == http.StatusInternalServerError {
		RespondInternalError(w)
		return status
	}
	RespondError(w, status, message)
	return status
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrStaleState):
		return http.StatusConflict, msgStaleState
	case errors.Is(err, domain.ErrConversionBlocked):
		return http.StatusConflict, msgConversionBlocked
	case errors.Is(err, domain.ErrTerminalState):
		return http.StatusConflict, msgTerminalState
	case errors.Is(err, domain.ErrTierNotFound):
		return http.StatusUnprocessableEntity, msgTierNotFound
	case errors.Is(err, domain.ErrInvalidPriceCommand):
		return http.StatusBadRequest, msgInvalidPriceCommand
	case errors.Is(err, domain.ErrInvalidPricingTable):
		return http.StatusBadRequest, msgInvalidPricingTable
	case errors.Is(err, domain.ErrInvalidCustomer):
		return http.StatusBadRequest, msgInvalidCustomer
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, msgConfirmationRequired
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, engine.ErrCommandInFlight):
		return http.StatusTooManyRequests, msgCommandInFlight
	case errors.Is(err, reservationstore.ErrOutcomeUnknown):
		return http.StatusGatewayTimeout, msgOutcomeUnknown
	case errors.Is(err, reservationstore.ErrUnavailable), errors.Is(err, engine.ErrGuardUnavailable):
		return http.StatusServiceUnavailable, msgStoreUnavailable
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// PathID извлекает положительный int64 параметр пути
func PathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %s", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return id, nil
}
