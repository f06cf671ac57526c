package flows

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/telebot.v3"

	"revsync-bot/internal/delivery/telegram/keyboards"
	"revsync-bot/internal/delivery/telegram/middleware"
	"revsync-bot/internal/delivery/telegram/router"
	"revsync-bot/internal/delivery/telegram/state"
	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// RegisterShift — диалог сотрудника: дата → заклад → посада → запись.
func RegisterShift(r *router.CallbackRouter, d Deps) {
	r.Register("emp_fill", func(c telebot.Context, _ string) error {
		d.States.Set(c.Chat().ID, state.State{Role: state.RoleEmployee, Step: state.StepShiftOutlet})
		d.Calendar.OnDate = func(date time.Time, c telebot.Context) error {
			id := c.Chat().ID
			st, ok := d.States.Get(id)
			if !ok || st.Role != state.RoleEmployee {
				return nil
			}
			st.Date = date
			d.States.Set(id, st)
			return middleware.EditOrSend(c, "Виберіть заклад:", keyboards.Choices("emp_outlet", d.Outlets))
		}
		return d.Calendar.ShowCalendar(c)
	})

	r.Register("emp_outlet", func(c telebot.Context, payload string) error {
		id := c.Chat().ID
		st, ok := d.States.Get(id)
		if !ok || st.Role != state.RoleEmployee {
			return nil
		}
		st.Outlet = payload
		st.Step = state.StepShiftPosition
		d.States.Set(id, st)
		return middleware.EditOrSend(c, "Виберіть посаду:", keyboards.Choices("emp_pos", d.Positions))
	})

	r.Register("emp_pos", func(c telebot.Context, payload string) error {
		id := c.Chat().ID
		st, ok := d.States.Get(id)
		if !ok || st.Role != state.RoleEmployee {
			return nil
		}
		st.Position = payload
		tgID := c.Sender().ID

		res, err := d.Async.SubmitAsync(func() (any, error) {
			return d.Entry.AddShift(context.Background(), tgID, st.Date, st.Outlet, st.Position)
		})
		if err != nil {
			return c.Send("Помилка при збереженні: " + err.Error())
		}
		d.States.Delete(id)
		recID := res.(domain.RecordID)
		msg := fmt.Sprintf("Зміна збережена:\nДата: %s\nЗаклад: %s\nПосада: %s",
			dateutil.FormatISO(st.Date), st.Outlet, st.Position)
		return c.Send(msg, keyboards.AfterShift(string(recID)))
	})

	r.Register("emp_del", func(c telebot.Context, payload string) error {
		if payload == "" {
			return nil
		}
		if _, err := d.Async.SubmitAsync(func() (any, error) {
			return nil, d.Entry.DeleteShift(context.Background(), domain.RecordID(payload))
		}); err != nil {
			return c.Send("Не вдалося видалити запис.")
		}
		return c.Send("Запис видалений.")
	})
}
