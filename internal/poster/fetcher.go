package poster

import (
	"context"
	"fmt"
	"time"

	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// Outlet — заклад с реквизитами Poster.
type Outlet struct {
	Name    string
	Account string
	Token   string
}

// Fetcher собирает дневную выручку по всем закладам через API Poster.
// Любая ошибка запроса фатальна для всего диапазона — частичных
// результатов не бывает.
type Fetcher struct {
	Client   *Client
	Resolver domain.Resolver
	Outlets  []Outlet

	EntranceOutlet       string
	EntranceCategoryID   string
	EntranceCategoryName string
}

func (f *Fetcher) FetchRange(ctx context.Context, start, end time.Time) ([]domain.RevenueDay, error) {
	days, err := dateutil.DatesBetween(start, end)
	if err != nil {
		return nil, err
	}

	var out []domain.RevenueDay
	for _, outlet := range f.Outlets {
		if outlet.Token == "" {
			return nil, fmt.Errorf("нема Poster токена для закладу: %s", outlet.Name)
		}
		if outlet.Account == "" {
			return nil, fmt.Errorf("нема Poster account для закладу: %s", outlet.Name)
		}
		outletID, err := f.Resolver.OutletID(ctx, outlet.Name)
		if err != nil {
			return nil, err
		}

		payments, err := f.Client.PaymentsByDay(ctx, outlet.Account, outlet.Token,
			dateutil.FormatISO(start), dateutil.FormatISO(end))
		if err != nil {
			return nil, err
		}

		byDate := make(map[string]PaymentDay, len(payments))
		for _, p := range payments {
			if p.Date == "" {
				continue
			}
			byDate[p.Date] = p
		}

		for _, day := range days {
			iso := dateutil.FormatISO(day)
			p, ok := byDate[iso]
			if !ok {
				continue
			}
			rd := domain.RevenueDay{
				Date:         day,
				Outlet:       outlet.Name,
				OutletID:     outletID,
				TotalRevenue: p.TotalRevenue,
				CardRevenue:  p.CardRevenue,
			}
			if outlet.Name == f.EntranceOutlet {
				ent, err := f.Client.EntranceRevenue(ctx, outlet.Account, outlet.Token, iso,
					f.EntranceCategoryID, f.EntranceCategoryName)
				if err != nil {
					return nil, err
				}
				rd.EntranceRevenue = &ent
			}
			out = append(out, rd)
		}
	}
	return out, nil
}
