package flows

import (
	"fmt"
	"strings"

	"revsync-bot/internal/domain"
)

func FormatReconcileReport(r *domain.ReconcileReport) string {
	return fmt.Sprintf(
		"Еквайринг: створено %d\n"+
			"Нарахування: оновлено %d\n"+
			"— Виручка: %d\n"+
			"— Виручка Вхід: %d\n"+
			"Без правила ЗП: %d",
		r.AcquiringCreated, r.ShiftsUpdated, r.TotalWrites, r.EntranceWrites, r.UnknownPayType)
}

func FormatSyncReport(s *domain.SyncReport) string {
	msg := fmt.Sprintf(
		"✅ Готово!\n\n"+
			"Відрахування: %d\n"+
			"Пропущено (немає Працівник/Заклад/Дата): %d\n"+
			"Унікальних ключів: %d\n\n"+
			"Нарахування: %d\n"+
			"Пропущено (немає Працівник/Заклад/Дата): %d\n\n"+
			"План оновлень: %d\n"+
			"Оновлено: %d\n"+
			"Батчів: %d\n\n"+
			"⚠️ Відрахування НЕ були додані: %d",
		s.DeductionsTotal, s.DeductionsSkipped, s.Keys,
		s.AccrualsTotal, s.AccrualsSkipped,
		s.UpdatesPlanned, s.Updated, s.Batches,
		s.NotAddedCount)
	if len(s.NotAddedSample) > 0 {
		msg += "\n\n" + strings.Join(s.NotAddedSample, "\n")
	}
	return msg
}

func FormatHistory(entries []domain.RunEntry) string {
	var b strings.Builder
	b.WriteString("Останні запуски:\n")
	for _, e := range entries {
		status := "✅"
		if !e.OK {
			status = "❌"
		}
		kind := "POSTER"
		if e.Kind == domain.RunKindDeductions {
			kind = "Відрахування"
		}
		fmt.Fprintf(&b, "%s %s %s — %s\n", status, e.StartedAt.Format("2006-01-02 15:04"), kind, e.Summary)
	}
	return b.String()
}
