package flows

import (
	"gopkg.in/telebot.v3"

	"revsync-bot/internal/app/service"
	"revsync-bot/internal/delivery/telegram/state"
	"revsync-bot/internal/domain"
	"revsync-bot/pkg/calendar"
)

// Deps — всё, что нужно диалогам.
type Deps struct {
	Entry      *service.ShiftEntryService
	Recon      *service.ReconcileService
	Deductions *service.DeductionSyncService
	Journal    domain.RunJournal
	Async      *service.AsyncService
	Calendar   *calendar.CalendarController
	States     *state.Store
	Outlets    []string
	Positions  []string
	IsAdmin    func(telebot.Context) bool
}
