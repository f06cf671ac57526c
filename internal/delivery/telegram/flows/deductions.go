package flows

import (
	"context"
	"errors"

	"gopkg.in/telebot.v3"

	"revsync-bot/internal/delivery/telegram/router"
	"revsync-bot/internal/domain"
)

// RegisterDeductions — синхронизация отчислений и история запусков.
func RegisterDeductions(r *router.CallbackRouter, d Deps) {
	r.Register("adm_sync", func(c telebot.Context, _ string) error {
		if !d.IsAdmin(c) {
			return c.Send("Ви не адміністратор.")
		}
		if d.Deductions.Busy() {
			return c.Send("⏳ Синхронізація вже виконується. Спробуй трохи пізніше.")
		}

		_ = c.Send("🔄 Запускаю синхронізацію «Відрахування → Нарахування»...")
		res, err := d.Async.SubmitAsync(func() (any, error) {
			return d.Deductions.Sync(context.Background())
		})
		if errors.Is(err, domain.ErrSyncBusy) {
			return c.Send("⏳ Синхронізація вже виконується. Спробуй трохи пізніше.")
		}
		if err != nil {
			return c.Send("❌ Помилка синхронізації: " + err.Error())
		}
		report := res.(*domain.SyncReport)
		return c.Send(FormatSyncReport(report))
	})

	r.Register("adm_history", func(c telebot.Context, _ string) error {
		if !d.IsAdmin(c) {
			return c.Send("Ви не адміністратор.")
		}
		res, err := d.Async.SubmitAsync(func() (any, error) {
			return d.Journal.Last(context.Background(), 10)
		})
		if err != nil {
			return c.Send("Не вдалося отримати історію: " + err.Error())
		}
		entries := res.([]domain.RunEntry)
		if len(entries) == 0 {
			return c.Send("Запусків ще не було.")
		}
		return c.Send(FormatHistory(entries))
	})
}
