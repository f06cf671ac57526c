package telegram

import (
	"gopkg.in/telebot.v3"

	"revsync-bot/internal/app/service"
	"revsync-bot/internal/delivery/telegram/flows"
	"revsync-bot/internal/delivery/telegram/keyboards"
	"revsync-bot/internal/delivery/telegram/router"
	"revsync-bot/internal/delivery/telegram/state"
	"revsync-bot/internal/domain"
	"revsync-bot/pkg/calendar"
)

type Handler struct {
	Bot        *telebot.Bot
	Entry      *service.ShiftEntryService
	Recon      *service.ReconcileService
	Deductions *service.DeductionSyncService
	Journal    domain.RunJournal
	Async      *service.AsyncService
	Calendar   *calendar.CalendarController
	AdminIDs   []int64
	Outlets    []string
	Positions  []string

	states *state.Store
}

func (h *Handler) Register() {
	h.states = state.NewStore()

	d := flows.Deps{
		Entry:      h.Entry,
		Recon:      h.Recon,
		Deductions: h.Deductions,
		Journal:    h.Journal,
		Async:      h.Async,
		Calendar:   h.Calendar,
		States:     h.states,
		Outlets:    h.Outlets,
		Positions:  h.Positions,
		IsAdmin:    h.isAdmin,
	}

	r := router.New()
	r.CalDelegate = h.Calendar.HandleCallback
	flows.RegisterShift(r, d)
	flows.RegisterPoster(r, d)
	flows.RegisterDeductions(r, d)
	r.Attach(h.Bot)

	h.Bot.Handle("/start", func(c telebot.Context) error {
		h.states.Delete(c.Chat().ID)
		title, markup := keyboards.MainMenu(h.isAdmin(c))
		return c.Send(title, markup)
	})

	h.Bot.Handle(telebot.OnText, func(c telebot.Context) error {
		return flows.HandleText(c, d)
	})
}

func (h *Handler) isAdmin(c telebot.Context) bool {
	id := c.Sender().ID
	for _, admin := range h.AdminIDs {
		if admin == id {
			return true
		}
	}
	return false
}
