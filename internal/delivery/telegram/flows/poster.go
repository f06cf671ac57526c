package flows

import (
	"context"
	"strings"

	"gopkg.in/telebot.v3"

	"revsync-bot/internal/delivery/telegram/keyboards"
	"revsync-bot/internal/delivery/telegram/router"
	"revsync-bot/internal/delivery/telegram/state"
	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// RegisterPoster — админский диалог импорта выручки за период.
func RegisterPoster(r *router.CallbackRouter, d Deps) {
	r.Register("adm_poster", func(c telebot.Context, _ string) error {
		if !d.IsAdmin(c) {
			return c.Send("Ви не адміністратор.")
		}
		d.States.Set(c.Chat().ID, state.State{Role: state.RoleAdmin, Step: state.StepStartInput})
		return c.Send("Введіть початкову дату періода (РРРР-ММ-ДД).")
	})

	r.Register("adm_start_ok", func(c telebot.Context, _ string) error {
		st, ok := d.States.Get(c.Chat().ID)
		if !ok || st.Role != state.RoleAdmin {
			return nil
		}
		st.Step = state.StepEndInput
		d.States.Set(c.Chat().ID, st)
		return c.Send("Введіть кінцеву дату періода (РРРР-ММ-ДД).")
	})

	r.Register("adm_start_edit", func(c telebot.Context, _ string) error {
		st, ok := d.States.Get(c.Chat().ID)
		if !ok || st.Role != state.RoleAdmin {
			return nil
		}
		st.Step = state.StepStartInput
		d.States.Set(c.Chat().ID, st)
		return c.Send("Введіть нову початкову дату (РРРР-ММ-ДД).")
	})

	r.Register("adm_end_ok", func(c telebot.Context, _ string) error {
		st, ok := d.States.Get(c.Chat().ID)
		if !ok || st.Role != state.RoleAdmin {
			return nil
		}
		msg := "Період:\n" + st.StartDate + " — " + st.EndDate + "\n\nПередати інформацію з Poster?"
		return c.Send(msg, keyboards.SendPoster())
	})

	r.Register("adm_end_edit", func(c telebot.Context, _ string) error {
		st, ok := d.States.Get(c.Chat().ID)
		if !ok || st.Role != state.RoleAdmin {
			return nil
		}
		st.Step = state.StepEndInput
		d.States.Set(c.Chat().ID, st)
		return c.Send("Введіть нову кінцеву дату (РРРР-ММ-ДД).")
	})

	r.Register("adm_cancel", func(c telebot.Context, _ string) error {
		d.States.Delete(c.Chat().ID)
		return c.Send("Операція відмінена.")
	})

	r.Register("adm_send", func(c telebot.Context, _ string) error {
		st, ok := d.States.Get(c.Chat().ID)
		if !ok || st.Role != state.RoleAdmin {
			return nil
		}
		start, err := dateutil.ParseISO(st.StartDate)
		if err != nil {
			return c.Send("Невірний період. Почніть заново.")
		}
		end, err := dateutil.ParseISO(st.EndDate)
		if err != nil {
			return c.Send("Невірний період. Почніть заново.")
		}

		_ = c.Send("Отримую дані та відправляю в Airtable...")
		res, err := d.Async.SubmitAsync(func() (any, error) {
			return d.Recon.Run(context.Background(), start, end)
		})
		if err != nil {
			return c.Send("Помилка імпорту: " + err.Error())
		}
		d.States.Delete(c.Chat().ID)
		report := res.(*domain.ReconcileReport)
		if err := c.Send(FormatReconcileReport(report)); err != nil {
			return err
		}
		return c.Send("Дані успішно передані в Airtable.")
	})
}

// HandleText обрабатывает текстовый ввод дат админом.
func HandleText(c telebot.Context, d Deps) error {
	st, ok := d.States.Get(c.Chat().ID)
	if !ok || st.Role != state.RoleAdmin {
		return nil
	}

	text := strings.TrimSpace(c.Text())
	switch st.Step {
	case state.StepStartInput:
		if _, err := dateutil.ParseISO(text); err != nil {
			return c.Send("Невірний формат. Введіть дату як РРРР-ММ-ДД.")
		}
		st.StartDate = text
		st.Step = state.StepStartConfirm
		d.States.Set(c.Chat().ID, st)
		return c.Send("Початкова дата: "+text, keyboards.Confirm("adm_start_ok", "adm_start_edit"))
	case state.StepEndInput:
		end, err := dateutil.ParseISO(text)
		if err != nil {
			return c.Send("Невірний формат. Введіть дату як РРРР-ММ-ДД.")
		}
		if start, err := dateutil.ParseISO(st.StartDate); err == nil && end.Before(start) {
			return c.Send("Кінцева дата не може бути раніше початкової.")
		}
		st.EndDate = text
		st.Step = state.StepEndConfirm
		d.States.Set(c.Chat().ID, st)
		return c.Send("Кінцева дата: "+text, keyboards.Confirm("adm_end_ok", "adm_end_edit"))
	}
	return nil
}
