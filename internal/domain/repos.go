package domain

import (
	"context"
	"time"
)

// RevenueField — поле начисления, в которое пишется выручка.
type RevenueField int

const (
	FieldTotalRevenue RevenueField = iota
	FieldEntranceRevenue
)

type ShiftRevenueUpdate struct {
	ID    RecordID
	Field RevenueField
	Value float64
}

type ShiftLinkUpdate struct {
	ID    RecordID
	Links []RecordID
}

type NewShift struct {
	Date       time.Time
	OutletID   RecordID
	PositionID RecordID
	EmployeeID RecordID
}

type ShiftRepo interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]ShiftRecord, error)
	ListAll(ctx context.Context) ([]ShiftRecord, error)
	Create(ctx context.Context, s NewShift) (RecordID, error)
	Delete(ctx context.Context, id RecordID) error
	// UpdateRevenues и UpdateDeductionLinks пишут пачками и возвращают
	// число отправленных пачек; при ошибке пачки остаток не отправляется.
	UpdateRevenues(ctx context.Context, updates []ShiftRevenueUpdate) (batches int, err error)
	UpdateDeductionLinks(ctx context.Context, updates []ShiftLinkUpdate) (batches int, err error)
}

type DeductionRepo interface {
	ListAll(ctx context.Context) ([]DeductionRecord, error)
}

type AcquiringRepo interface {
	CreateAll(ctx context.Context, recs []AcquiringRecord) (created int, err error)
}

// Resolver переводит человекочитаемые названия в идентификаторы записей.
type Resolver interface {
	OutletID(ctx context.Context, name string) (RecordID, error)
	PositionID(ctx context.Context, name string) (RecordID, error)
	EmployeeByTelegramID(ctx context.Context, tgID int64) (RecordID, error)
	Invalidate()
}

// RevenueFetcher отдаёт дневную выручку за диапазон дат по всем закладам.
type RevenueFetcher interface {
	FetchRange(ctx context.Context, start, end time.Time) ([]RevenueDay, error)
}

const (
	RunKindPoster     = "poster"
	RunKindDeductions = "deductions"
)

// RunEntry — строка локального журнала запусков.
type RunEntry struct {
	ID         int64
	Kind       string
	StartedAt  time.Time
	FinishedAt time.Time
	OK         bool
	Summary    string
}

type RunJournal interface {
	Append(ctx context.Context, e RunEntry) error
	Last(ctx context.Context, n int) ([]RunEntry, error)
}
