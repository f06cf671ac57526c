package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// ReconcileService переносит выручку Poster в хранилище:
// эквайринг создаётся всегда, выручка пишется только в начисления
// с подходящим типом ЗП.
type ReconcileService struct {
	Fetcher        domain.RevenueFetcher
	Shifts         domain.ShiftRepo
	Acquiring      domain.AcquiringRepo
	Resolver       domain.Resolver
	Journal        domain.RunJournal
	EntranceOutlet string
}

func (s *ReconcileService) Run(ctx context.Context, start, end time.Time) (*domain.ReconcileReport, error) {
	// валидируем диапазон до любых внешних вызовов
	if _, err := dateutil.DatesBetween(start, end); err != nil {
		return nil, err
	}
	startedAt := time.Now()
	report, err := s.run(ctx, start, end)
	s.journal(ctx, startedAt, report, err)
	return report, err
}

func (s *ReconcileService) run(ctx context.Context, start, end time.Time) (*domain.ReconcileReport, error) {
	days, err := s.Fetcher.FetchRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &domain.ReconcileReport{}

	// эквайринг — всегда создаём, без сверки с уже записанным
	acquiring := make([]domain.AcquiringRecord, 0, len(days))
	for _, d := range days {
		acquiring = append(acquiring, domain.AcquiringRecord{
			Date:        d.Date,
			OutletID:    d.OutletID,
			CardRevenue: d.CardRevenue,
		})
	}
	if len(acquiring) > 0 {
		created, err := s.Acquiring.CreateAll(ctx, acquiring)
		if err != nil {
			return nil, err
		}
		report.AcquiringCreated = created
	}

	entranceID, err := s.Resolver.OutletID(ctx, s.EntranceOutlet)
	if err != nil {
		return nil, err
	}

	shifts, err := s.Shifts.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	updates := s.apply(days, shifts, entranceID, report)
	if len(updates) > 0 {
		if _, err := s.Shifts.UpdateRevenues(ctx, updates); err != nil {
			return report, err
		}
	}
	report.ShiftsUpdated = len(updates)

	log.Printf("[recon] еквайринг=%d виручка=%d вхід=%d без правила=%d",
		report.AcquiringCreated, report.TotalWrites, report.EntranceWrites, report.UnknownPayType)
	return report, nil
}

func (s *ReconcileService) apply(days []domain.RevenueDay, shifts []domain.ShiftRecord, entranceID domain.RecordID, report *domain.ReconcileReport) []domain.ShiftRevenueUpdate {
	totalByKey := make(map[domain.DayOutletKey]float64, len(days))
	entranceByKey := make(map[domain.DayOutletKey]float64)
	for _, d := range days {
		if d.OutletID == "" {
			continue
		}
		k := domain.DayOutletKey{Date: dateutil.FormatISO(d.Date), Outlet: d.OutletID}
		totalByKey[k] = d.TotalRevenue
		if d.OutletID == entranceID && d.EntranceRevenue != nil {
			entranceByKey[k] = *d.EntranceRevenue
		}
	}

	var updates []domain.ShiftRevenueUpdate
	for _, sh := range shifts {
		k, ok := sh.DayOutlet()
		if !ok {
			continue
		}
		switch {
		case sh.PayType == domain.PayTypeEntrance:
			// «вхід» на чужом закладе — рассогласование данных, не пишем
			if sh.OutletID != entranceID {
				continue
			}
			// нет записи за день — входов не было, пишем ноль
			updates = append(updates, domain.ShiftRevenueUpdate{
				ID:    sh.ID,
				Field: domain.FieldEntranceRevenue,
				Value: entranceByKey[k],
			})
			report.EntranceWrites++
		case domain.PayTypeUsesTotal(sh.PayType):
			total, ok := totalByKey[k]
			if !ok {
				// выручку за день не получали — не затираем нулём
				continue
			}
			updates = append(updates, domain.ShiftRevenueUpdate{
				ID:    sh.ID,
				Field: domain.FieldTotalRevenue,
				Value: total,
			})
			report.TotalWrites++
		default:
			report.UnknownPayType++
		}
	}
	return updates
}

func (s *ReconcileService) journal(ctx context.Context, startedAt time.Time, report *domain.ReconcileReport, runErr error) {
	if s.Journal == nil {
		return
	}
	e := domain.RunEntry{
		Kind:       domain.RunKindPoster,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		OK:         runErr == nil,
	}
	if runErr != nil {
		e.Summary = runErr.Error()
	} else {
		e.Summary = fmt.Sprintf("еквайринг=%d, оновлено=%d (виручка=%d, вхід=%d)",
			report.AcquiringCreated, report.ShiftsUpdated, report.TotalWrites, report.EntranceWrites)
	}
	if err := s.Journal.Append(ctx, e); err != nil {
		log.Printf("[journal] не вдалося записати запуск: %v", err)
	}
}
