package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revsync-bot/internal/domain"
)

const (
	outletSE  = domain.RecordID("recOutletSE")
	outletDzh = domain.RecordID("recOutletDzh")
)

func newReconcileService(fetcher *fakeFetcher, shifts *fakeShiftRepo, acq *fakeAcquiringRepo) *ReconcileService {
	return &ReconcileService{
		Fetcher:   fetcher,
		Shifts:    shifts,
		Acquiring: acq,
		Resolver: &fakeResolver{outlets: map[string]domain.RecordID{
			"Джерельна": outletDzh,
		}},
		Journal:        &fakeJournal{},
		EntranceOutlet: "Джерельна",
	}
}

func TestReconcileWritesTotalRevenueForPercentShifts(t *testing.T) {
	fetcher := &fakeFetcher{days: []domain.RevenueDay{
		{Date: day("2025-06-01"), Outlet: "Староєврейська", OutletID: outletSE, TotalRevenue: 1000, CardRevenue: 300},
	}}
	shifts := &fakeShiftRepo{shifts: []domain.ShiftRecord{
		{ID: "rec1", Date: day("2025-06-01"), OutletID: outletSE, PayType: "%"},
		{ID: "rec2", Date: day("2025-06-01"), OutletID: outletSE, PayType: "Ставка + %"},
	}}
	acq := &fakeAcquiringRepo{}

	svc := newReconcileService(fetcher, shifts, acq)
	report, err := svc.Run(context.Background(), day("2025-06-01"), day("2025-06-01"))
	require.NoError(t, err)

	require.Len(t, shifts.revenueUpdates, 2)
	for _, u := range shifts.revenueUpdates {
		assert.Equal(t, domain.FieldTotalRevenue, u.Field)
		assert.Equal(t, 1000.0, u.Value)
	}
	assert.Equal(t, 2, report.TotalWrites)
	assert.Equal(t, 2, report.ShiftsUpdated)

	// эквайринг создан из карточной суммы
	require.Len(t, acq.created, 1)
	assert.Equal(t, 300.0, acq.created[0].CardRevenue)
	assert.Equal(t, 1, report.AcquiringCreated)
}

func TestReconcileEntranceOnlyOnEntranceOutlet(t *testing.T) {
	fetcher := &fakeFetcher{days: []domain.RevenueDay{
		{Date: day("2025-06-01"), Outlet: "Джерельна", OutletID: outletDzh, TotalRevenue: 500, EntranceRevenue: ptr(80)},
	}}
	shifts := &fakeShiftRepo{shifts: []domain.ShiftRecord{
		{ID: "recA", Date: day("2025-06-01"), OutletID: outletDzh, PayType: "Ставка + % вхід"},
		// тот же тип ЗП, но чужой заклад: запись не трогаем
		{ID: "recB", Date: day("2025-06-01"), OutletID: outletSE, PayType: "Ставка + % вхід"},
	}}

	svc := newReconcileService(fetcher, shifts, &fakeAcquiringRepo{})
	report, err := svc.Run(context.Background(), day("2025-06-01"), day("2025-06-01"))
	require.NoError(t, err)

	require.Len(t, shifts.revenueUpdates, 1)
	assert.Equal(t, domain.RecordID("recA"), shifts.revenueUpdates[0].ID)
	assert.Equal(t, domain.FieldEntranceRevenue, shifts.revenueUpdates[0].Field)
	assert.Equal(t, 80.0, shifts.revenueUpdates[0].Value)
	assert.Equal(t, 1, report.EntranceWrites)
}

func TestReconcileEntranceDefaultsToZero(t *testing.T) {
	// день без входов: запись за день есть, EntranceRevenue нет
	fetcher := &fakeFetcher{days: []domain.RevenueDay{
		{Date: day("2025-06-01"), Outlet: "Джерельна", OutletID: outletDzh, TotalRevenue: 500},
	}}
	shifts := &fakeShiftRepo{shifts: []domain.ShiftRecord{
		{ID: "recA", Date: day("2025-06-01"), OutletID: outletDzh, PayType: "Ставка + % вхід"},
	}}

	svc := newReconcileService(fetcher, shifts, &fakeAcquiringRepo{})
	_, err := svc.Run(context.Background(), day("2025-06-01"), day("2025-06-01"))
	require.NoError(t, err)

	require.Len(t, shifts.revenueUpdates, 1)
	assert.Equal(t, 0.0, shifts.revenueUpdates[0].Value)
}

func TestReconcileSkipsTotalWhenDayMissing(t *testing.T) {
	// выручки за день заклада нет: ноль не пишем, запись не трогаем
	fetcher := &fakeFetcher{days: []domain.RevenueDay{
		{Date: day("2025-06-02"), Outlet: "Староєврейська", OutletID: outletSE, TotalRevenue: 700},
	}}
	shifts := &fakeShiftRepo{shifts: []domain.ShiftRecord{
		{ID: "rec1", Date: day("2025-06-01"), OutletID: outletSE, PayType: "%"},
	}}

	svc := newReconcileService(fetcher, shifts, &fakeAcquiringRepo{})
	report, err := svc.Run(context.Background(), day("2025-06-01"), day("2025-06-02"))
	require.NoError(t, err)

	assert.Empty(t, shifts.revenueUpdates)
	assert.Equal(t, 0, report.ShiftsUpdated)
}

func TestReconcileCountsUnknownPayType(t *testing.T) {
	fetcher := &fakeFetcher{days: []domain.RevenueDay{
		{Date: day("2025-06-01"), Outlet: "Староєврейська", OutletID: outletSE, TotalRevenue: 1000},
	}}
	shifts := &fakeShiftRepo{shifts: []domain.ShiftRecord{
		{ID: "rec1", Date: day("2025-06-01"), OutletID: outletSE, PayType: "Ставка"},
		{ID: "rec2", Date: day("2025-06-01"), OutletID: outletSE, PayType: "%"},
	}}

	svc := newReconcileService(fetcher, shifts, &fakeAcquiringRepo{})
	report, err := svc.Run(context.Background(), day("2025-06-01"), day("2025-06-01"))
	require.NoError(t, err)

	assert.Equal(t, 1, report.UnknownPayType)
	assert.Equal(t, 1, report.TotalWrites)
}

func TestReconcileAcquiringAppendsEveryRun(t *testing.T) {
	fetcher := &fakeFetcher{days: []domain.RevenueDay{
		{Date: day("2025-06-01"), Outlet: "Староєврейська", OutletID: outletSE, TotalRevenue: 1000, CardRevenue: 300},
	}}
	acq := &fakeAcquiringRepo{}
	svc := newReconcileService(fetcher, &fakeShiftRepo{}, acq)

	for i := 0; i < 2; i++ {
		_, err := svc.Run(context.Background(), day("2025-06-01"), day("2025-06-01"))
		require.NoError(t, err)
	}
	// журнал только растёт, дубликаты между запусками допустимы
	assert.Len(t, acq.created, 2)
}

func TestReconcileRejectsBadRangeBeforeFetch(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newReconcileService(fetcher, &fakeShiftRepo{}, &fakeAcquiringRepo{})

	_, err := svc.Run(context.Background(), day("2025-06-10"), day("2025-06-01"))
	require.Error(t, err)
	assert.Zero(t, fetcher.calls)
}
