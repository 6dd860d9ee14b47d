package list_unknown_commands

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	msgInvalidLimit = "некорректный limit"
)

type Handler struct {
	journal JournalReader
	logger  Logger
}

func NewHandler(journal JournalReader, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/commands/unknown?limit=
// Команды, отправленные в хранилище без полученного ответа: их состояние нужно сверить вручную
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := uint64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 || parsed > maxLimit {
			h.logger.Warn("GET /commands/unknown - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	entries, err := h.journal.ListUnknown(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /commands/unknown - Failed to list commands: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /commands/unknown - Commands retrieved: count=%d", len(entries))
	handlers.RespondJSON(w, http.StatusOK, FromJournalEntries(entries))
}
