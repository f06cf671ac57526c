package service

import (
	"context"
	"sync"
	"time"

	"revsync-bot/internal/domain"
)

type fakeFetcher struct {
	days []domain.RevenueDay
	err  error

	calls int
}

func (f *fakeFetcher) FetchRange(ctx context.Context, start, end time.Time) ([]domain.RevenueDay, error) {
	f.calls++
	return f.days, f.err
}

type fakeShiftRepo struct {
	mu sync.Mutex

	shifts []domain.ShiftRecord

	revenueUpdates []domain.ShiftRevenueUpdate
	linkUpdates    []domain.ShiftLinkUpdate
	updateErr      error
	batches        int

	listAllErr error

	// перед ListAll: тест «занято» держит синхронизацию внутри сервиса
	listAllGate chan struct{}
}

func (f *fakeShiftRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.ShiftRecord, error) {
	return f.shifts, nil
}

func (f *fakeShiftRepo) ListAll(ctx context.Context) ([]domain.ShiftRecord, error) {
	if f.listAllGate != nil {
		<-f.listAllGate
	}
	if f.listAllErr != nil {
		return nil, f.listAllErr
	}
	return f.shifts, nil
}

func (f *fakeShiftRepo) Create(ctx context.Context, s domain.NewShift) (domain.RecordID, error) {
	return "recNew", nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id domain.RecordID) error {
	return nil
}

func (f *fakeShiftRepo) UpdateRevenues(ctx context.Context, updates []domain.ShiftRevenueUpdate) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.revenueUpdates = append(f.revenueUpdates, updates...)
	if f.batches > 0 {
		return f.batches, nil
	}
	return 1, nil
}

func (f *fakeShiftRepo) UpdateDeductionLinks(ctx context.Context, updates []domain.ShiftLinkUpdate) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.linkUpdates = append(f.linkUpdates, updates...)
	// применяем к своему состоянию, чтобы проверять повторные запуски
	byID := make(map[domain.RecordID][]domain.RecordID, len(updates))
	for _, u := range updates {
		byID[u.ID] = u.Links
	}
	for i := range f.shifts {
		if links, ok := byID[f.shifts[i].ID]; ok {
			f.shifts[i].DeductionLinks = links
		}
	}
	if f.batches > 0 {
		return f.batches, nil
	}
	return 1, nil
}

type fakeDeductionRepo struct {
	deductions []domain.DeductionRecord
	err        error
}

func (f *fakeDeductionRepo) ListAll(ctx context.Context) ([]domain.DeductionRecord, error) {
	return f.deductions, f.err
}

type fakeAcquiringRepo struct {
	created []domain.AcquiringRecord
	err     error
}

func (f *fakeAcquiringRepo) CreateAll(ctx context.Context, recs []domain.AcquiringRecord) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, recs...)
	return len(recs), nil
}

type fakeResolver struct {
	outlets   map[string]domain.RecordID
	positions map[string]domain.RecordID
	employees map[int64]domain.RecordID
}

func (f *fakeResolver) OutletID(ctx context.Context, name string) (domain.RecordID, error) {
	return f.outlets[name], nil
}

func (f *fakeResolver) PositionID(ctx context.Context, name string) (domain.RecordID, error) {
	return f.positions[name], nil
}

func (f *fakeResolver) EmployeeByTelegramID(ctx context.Context, tgID int64) (domain.RecordID, error) {
	return f.employees[tgID], nil
}

func (f *fakeResolver) Invalidate() {}

type fakeJournal struct {
	mu      sync.Mutex
	entries []domain.RunEntry
}

func (f *fakeJournal) Append(ctx context.Context, e domain.RunEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeJournal) Last(ctx context.Context, n int) ([]domain.RunEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n > len(f.entries) {
		n = len(f.entries)
	}
	out := make([]domain.RunEntry, 0, n)
	for i := len(f.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.entries[i])
	}
	return out, nil
}

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(v float64) *float64 { return &v }
