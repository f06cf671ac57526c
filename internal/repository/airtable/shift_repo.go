package airtable

import (
	"context"
	"fmt"
	"time"

	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// ShiftRepo работает с таблицей «Нарахування».
type ShiftRepo struct {
	Client *Client
}

func NewShiftRepo(c *Client) *ShiftRepo {
	return &ShiftRepo{Client: c}
}

func (r *ShiftRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.ShiftRecord, error) {
	formula := fmt.Sprintf(
		`AND({%s} >= DATETIME_PARSE("%s"),{%s} <= DATETIME_PARSE("%s"))`,
		FieldDate, dateutil.FormatISO(from), FieldDate, dateutil.FormatISO(to),
	)
	recs, err := r.Client.List(ctx, TableShifts, ListOptions{
		FilterByFormula: formula,
		Fields:          []string{FieldDate, FieldOutlet, FieldPayType},
	})
	if err != nil {
		return nil, err
	}
	return shiftsFromRecords(recs), nil
}

func (r *ShiftRepo) ListAll(ctx context.Context) ([]domain.ShiftRecord, error) {
	recs, err := r.Client.List(ctx, TableShifts, ListOptions{
		Fields: []string{FieldEmployee, FieldOutlet, FieldDate, FieldDeductionLinks},
	})
	if err != nil {
		return nil, err
	}
	return shiftsFromRecords(recs), nil
}

func shiftsFromRecords(recs []Record) []domain.ShiftRecord {
	shifts := make([]domain.ShiftRecord, 0, len(recs))
	for _, rec := range recs {
		s := domain.ShiftRecord{
			ID:             domain.RecordID(rec.ID),
			OutletID:       firstLink(rec.Fields[FieldOutlet]),
			EmployeeID:     firstLink(rec.Fields[FieldEmployee]),
			PositionID:     firstLink(rec.Fields[FieldPosition]),
			PayType:        firstString(rec.Fields[FieldPayType]),
			DeductionLinks: linkIDs(rec.Fields[FieldDeductionLinks]),
		}
		if d, ok := dateField(rec.Fields[FieldDate]); ok {
			s.Date = d
		}
		shifts = append(shifts, s)
	}
	return shifts
}

func (r *ShiftRepo) Create(ctx context.Context, s domain.NewShift) (domain.RecordID, error) {
	ids, err := r.Client.Create(ctx, TableShifts, []map[string]any{{
		FieldDate:     dateutil.FormatISO(s.Date),
		FieldOutlet:   []string{string(s.OutletID)},
		FieldPosition: []string{string(s.PositionID)},
		FieldEmployee: []string{string(s.EmployeeID)},
	}})
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("airtable: запись не создана")
	}
	return domain.RecordID(ids[0]), nil
}

func (r *ShiftRepo) Delete(ctx context.Context, id domain.RecordID) error {
	return r.Client.Delete(ctx, TableShifts, string(id))
}

func (r *ShiftRepo) UpdateRevenues(ctx context.Context, updates []domain.ShiftRevenueUpdate) (int, error) {
	recs := make([]Record, 0, len(updates))
	for _, u := range updates {
		field := FieldRevenue
		if u.Field == domain.FieldEntranceRevenue {
			field = FieldEntranceRevenue
		}
		recs = append(recs, Record{ID: string(u.ID), Fields: map[string]any{field: u.Value}})
	}
	return r.Client.Update(ctx, TableShifts, recs)
}

func (r *ShiftRepo) UpdateDeductionLinks(ctx context.Context, updates []domain.ShiftLinkUpdate) (int, error) {
	recs := make([]Record, 0, len(updates))
	for _, u := range updates {
		links := make([]string, 0, len(u.Links))
		for _, id := range u.Links {
			links = append(links, string(id))
		}
		recs = append(recs, Record{ID: string(u.ID), Fields: map[string]any{FieldDeductionLinks: links}})
	}
	return r.Client.Update(ctx, TableShifts, recs)
}
