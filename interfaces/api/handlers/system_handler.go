package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"todolist-api/domain/dto"
	"todolist-api/pkg/datetime"
	"todolist-api/pkg/utils"
)

type SystemHandler struct {
	formatter *datetime.Formatter
	locale    string
}

func NewSystemHandler(formatter *datetime.Formatter, locale string) *SystemHandler {
	return &SystemHandler{formatter: formatter, locale: locale}
}

// Timezone reports the clock every rendered date is computed with
func (h *SystemHandler) Timezone(c *fiber.Ctx) error {
	clock := h.formatter.Clock()
	now := clock.Now()

	return utils.SuccessResponse(c, dto.TimezoneResponse{
		Timezone:     clock.Location().String(),
		Locale:       h.locale,
		Now:          h.formatter.DateTime(now),
		Today:        h.formatter.Date(clock.Today()),
		UTCOffset:    now.Format("-07:00"),
		ServerUTCNow: now.UTC().Format(time.RFC3339),
	}, "Configuração de fuso horário")
}
