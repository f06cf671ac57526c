package poster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revsync-bot/internal/domain"
)

type staticResolver map[string]domain.RecordID

func (r staticResolver) OutletID(ctx context.Context, name string) (domain.RecordID, error) {
	return r[name], nil
}
func (r staticResolver) PositionID(ctx context.Context, name string) (domain.RecordID, error) {
	return "", nil
}
func (r staticResolver) EmployeeByTelegramID(ctx context.Context, tgID int64) (domain.RecordID, error) {
	return "", nil
}
func (r staticResolver) Invalidate() {}

func TestDemoFetcherIsDeterministic(t *testing.T) {
	f := &DemoFetcher{
		Resolver:       staticResolver{"Джерельна": "recDzh", "Дорошенка": "recDo"},
		Outlets:        []Outlet{{Name: "Джерельна"}, {Name: "Дорошенка"}},
		EntranceOutlet: "Джерельна",
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	first, err := f.FetchRange(context.Background(), start, end)
	require.NoError(t, err)
	second, err := f.FetchRange(context.Background(), start, end)
	require.NoError(t, err)

	// 2 дня × 2 заклада
	require.Len(t, first, 4)
	for i := range first {
		assert.Equal(t, first[i].TotalRevenue, second[i].TotalRevenue)
		assert.Equal(t, first[i].CardRevenue, second[i].CardRevenue)
	}
}

func TestDemoFetcherRanges(t *testing.T) {
	f := &DemoFetcher{
		Resolver:       staticResolver{"Джерельна": "recDzh"},
		Outlets:        []Outlet{{Name: "Джерельна"}},
		EntranceOutlet: "Джерельна",
	}

	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out, err := f.FetchRange(context.Background(), d, d)
	require.NoError(t, err)
	require.Len(t, out, 1)

	rd := out[0]
	assert.Equal(t, domain.RecordID("recDzh"), rd.OutletID)
	assert.GreaterOrEqual(t, rd.TotalRevenue, 1200.0)
	assert.LessOrEqual(t, rd.TotalRevenue, 6000.0)
	assert.Less(t, rd.CardRevenue, rd.TotalRevenue)
	require.NotNil(t, rd.EntranceRevenue)
	assert.InDelta(t, rd.TotalRevenue*0.08, *rd.EntranceRevenue, 0.01)
}

func TestDemoFetcherEntranceOnlyForEntranceOutlet(t *testing.T) {
	f := &DemoFetcher{
		Resolver:       staticResolver{"Дорошенка": "recDo"},
		Outlets:        []Outlet{{Name: "Дорошенка"}},
		EntranceOutlet: "Джерельна",
	}

	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out, err := f.FetchRange(context.Background(), d, d)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].EntranceRevenue)
}
