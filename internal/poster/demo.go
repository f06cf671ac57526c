package poster

import (
	"context"
	"math"
	"time"

	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// DemoFetcher генерирует детерминированную «выручку» без похода в Poster.
// Одинаковый день и заклад всегда дают одинаковые числа.
type DemoFetcher struct {
	Resolver       domain.Resolver
	Outlets        []Outlet
	EntranceOutlet string
}

func (f *DemoFetcher) FetchRange(ctx context.Context, start, end time.Time) ([]domain.RevenueDay, error) {
	days, err := dateutil.DatesBetween(start, end)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]domain.RecordID, len(f.Outlets))
	for _, o := range f.Outlets {
		id, err := f.Resolver.OutletID(ctx, o.Name)
		if err != nil {
			return nil, err
		}
		ids[o.Name] = id
	}

	var out []domain.RevenueDay
	for _, day := range days {
		iso := dateutil.FormatISO(day)
		for _, o := range f.Outlets {
			rand := seededRand(hashSeed(iso + "|" + o.Name))
			total := round2(1200 + rand()*4800)
			card := round2(total * (0.25 + rand()*0.45))
			rd := domain.RevenueDay{
				Date:         day,
				Outlet:       o.Name,
				OutletID:     ids[o.Name],
				TotalRevenue: total,
				CardRevenue:  card,
			}
			if o.Name == f.EntranceOutlet {
				ent := round2(total * 0.08)
				rd.EntranceRevenue = &ent
			}
			out = append(out, rd)
		}
	}
	return out, nil
}

// xorshift32 — хватает для демо-данных, важна только воспроизводимость
func seededRand(seed uint32) func() float64 {
	x := seed
	return func() float64 {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		return float64(x) / 4294967296
	}
}

// FNV-1a
func hashSeed(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func round2(n float64) float64 {
	return math.Round(n*100) / 100
}
