package airtable

import (
	"context"

	"revsync-bot/internal/domain"
)

// DeductionRepo читает таблицу «Відрахування». Движок её не меняет.
type DeductionRepo struct {
	Client *Client
}

func NewDeductionRepo(c *Client) *DeductionRepo {
	return &DeductionRepo{Client: c}
}

func (r *DeductionRepo) ListAll(ctx context.Context) ([]domain.DeductionRecord, error) {
	recs, err := r.Client.List(ctx, TableDeductions, ListOptions{
		Fields: []string{FieldEmployee, FieldOutlet, FieldDate},
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.DeductionRecord, 0, len(recs))
	for _, rec := range recs {
		d := domain.DeductionRecord{
			ID:         domain.RecordID(rec.ID),
			EmployeeID: firstLink(rec.Fields[FieldEmployee]),
			OutletID:   firstLink(rec.Fields[FieldOutlet]),
		}
		if t, ok := dateField(rec.Fields[FieldDate]); ok {
			d.Date = t
		}
		out = append(out, d)
	}
	return out, nil
}
