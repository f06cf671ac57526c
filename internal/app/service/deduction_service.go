package service

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"revsync-bot/internal/domain"
)

const notAddedSampleLimit = 20

const (
	reasonMissingFields = "немає Працівник/Заклад/Дата"
	reasonNoAccrual     = "немає відповідного запису у «Нарахування» (Працівник+Заклад+Дата)"
)

// DeductionSyncService привязывает «Відрахування» к «Нарахування»
// по ключу (працівник, заклад, дата). Привязка — объединение множеств:
// существующие ссылки никогда не убираются, повторный запуск без новых
// отчислений не пишет ничего.
type DeductionSyncService struct {
	Deductions domain.DeductionRepo
	Shifts     domain.ShiftRepo
	Journal    domain.RunJournal

	running atomic.Bool
}

// Busy — идёт ли синхронизация прямо сейчас. Только для сообщений
// пользователю; настоящая гарантия — CompareAndSwap внутри Sync.
func (s *DeductionSyncService) Busy() bool {
	return s.running.Load()
}

func (s *DeductionSyncService) Sync(ctx context.Context) (*domain.SyncReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrSyncBusy
	}
	defer s.running.Store(false)

	startedAt := time.Now()
	report, err := s.sync(ctx)
	s.journal(ctx, startedAt, report, err)
	return report, err
}

func (s *DeductionSyncService) sync(ctx context.Context) (*domain.SyncReport, error) {
	report := &domain.SyncReport{}

	deductions, err := s.Deductions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	report.DeductionsTotal = len(deductions)

	neededLinks := make(map[domain.ShiftKey][]domain.RecordID)
	var invalid []domain.NotAddedItem
	for _, d := range deductions {
		k, ok := d.Key()
		if !ok {
			report.DeductionsSkipped++
			invalid = append(invalid, domain.NotAddedItem{ID: d.ID, Reason: reasonMissingFields})
			continue
		}
		neededLinks[k] = append(neededLinks[k], d.ID)
	}
	report.Keys = len(neededLinks)

	shifts, err := s.Shifts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	report.AccrualsTotal = len(shifts)

	accrualKeys := make(map[domain.ShiftKey]struct{})
	// отчисления, уже привязанные хоть к одному начислению: их нельзя
	// показывать как «не добавленные», даже если ключ больше не сходится
	alreadyLinked := make(map[domain.RecordID]struct{})
	for _, sh := range shifts {
		k, ok := sh.Key()
		if !ok {
			report.AccrualsSkipped++
			continue
		}
		accrualKeys[k] = struct{}{}
		for _, id := range sh.DeductionLinks {
			alreadyLinked[id] = struct{}{}
		}
	}

	var updates []domain.ShiftLinkUpdate
	for _, sh := range shifts {
		k, ok := sh.Key()
		if !ok {
			continue
		}
		needed := neededLinks[k]
		if len(needed) == 0 {
			continue
		}

		links := append([]domain.RecordID(nil), sh.DeductionLinks...)
		set := make(map[domain.RecordID]struct{}, len(links))
		for _, id := range links {
			set[id] = struct{}{}
		}
		changed := false
		for _, id := range needed {
			if _, ok := set[id]; !ok {
				set[id] = struct{}{}
				links = append(links, id)
				changed = true
			}
		}
		if changed {
			updates = append(updates, domain.ShiftLinkUpdate{ID: sh.ID, Links: links})
		}
	}
	report.UpdatesPlanned = len(updates)

	if len(updates) > 0 {
		batches, err := s.Shifts.UpdateDeductionLinks(ctx, updates)
		report.Batches = batches
		if err != nil {
			return report, err
		}
		report.Updated = len(updates)
	}

	notAdded := append([]domain.NotAddedItem(nil), invalid...)
	for _, d := range deductions {
		k, ok := d.Key()
		if !ok {
			continue
		}
		if _, ok := accrualKeys[k]; !ok {
			notAdded = append(notAdded, domain.NotAddedItem{ID: d.ID, Reason: reasonNoAccrual, Key: k.String()})
		}
	}

	var filtered []domain.NotAddedItem
	for _, x := range notAdded {
		if _, ok := alreadyLinked[x.ID]; ok {
			continue
		}
		filtered = append(filtered, x)
	}
	report.NotAddedCount = len(filtered)
	for i, x := range filtered {
		if i == notAddedSampleLimit {
			break
		}
		report.NotAddedSample = append(report.NotAddedSample, x.Format())
	}

	log.Printf("[deductions] planned=%d updated=%d notAdded=%d",
		report.UpdatesPlanned, report.Updated, report.NotAddedCount)
	return report, nil
}

func (s *DeductionSyncService) journal(ctx context.Context, startedAt time.Time, report *domain.SyncReport, runErr error) {
	if s.Journal == nil {
		return
	}
	e := domain.RunEntry{
		Kind:       domain.RunKindDeductions,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		OK:         runErr == nil,
	}
	if runErr != nil {
		e.Summary = runErr.Error()
	} else {
		e.Summary = fmt.Sprintf("відрахувань=%d, оновлено=%d, не додано=%d",
			report.DeductionsTotal, report.Updated, report.NotAddedCount)
	}
	if err := s.Journal.Append(ctx, e); err != nil {
		log.Printf("[journal] не вдалося записати запуск: %v", err)
	}
}
