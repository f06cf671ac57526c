package airtable

import (
	"context"

	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// AcquiringRepo пишет в таблицу «Еквайринг» — журнал только на добавление.
type AcquiringRepo struct {
	Client *Client
}

func NewAcquiringRepo(c *Client) *AcquiringRepo {
	return &AcquiringRepo{Client: c}
}

func (r *AcquiringRepo) CreateAll(ctx context.Context, recs []domain.AcquiringRecord) (int, error) {
	fields := make([]map[string]any, 0, len(recs))
	for _, a := range recs {
		fields = append(fields, map[string]any{
			FieldDate:           dateutil.FormatISO(a.Date),
			FieldOutlet:         []string{string(a.OutletID)},
			FieldAcquiringValue: a.CardRevenue,
		})
	}
	ids, err := r.Client.Create(ctx, TableAcquiring, fields)
	return len(ids), err
}
