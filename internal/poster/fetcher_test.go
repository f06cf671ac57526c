package poster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revsync-bot/internal/domain"
)

func TestFetcherRequiresCredentials(t *testing.T) {
	f := &Fetcher{
		Client:   NewClient(),
		Resolver: staticResolver{},
		Outlets:  []Outlet{{Name: "Джерельна", Account: "acc"}},
	}

	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.FetchRange(context.Background(), d, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "нема Poster токена")

	f.Outlets = []Outlet{{Name: "Джерельна", Token: "tok"}}
	_, err = f.FetchRange(context.Background(), d, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "нема Poster account")
}

func TestFetcherBuildsDaysWithEntrance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/dash.getPaymentsReport":
			w.Write([]byte(`{"response":{"days":[
				{"date":"2025-06-01","payed_sum_sum":"100000","payed_card_sum":"40000"}
			]}}`))
		case "/api/dash.getCategoriesSales":
			w.Write([]byte(`{"response":[
				{"category_id":"18","category_name":"БРАСЛЕТИ - ВХОДИ","revenue":"8000"}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL
	f := &Fetcher{
		Client:             c,
		Resolver:           staticResolver{"Джерельна": "recDzh"},
		Outlets:            []Outlet{{Name: "Джерельна", Account: "acc", Token: "tok"}},
		EntranceOutlet:     "Джерельна",
		EntranceCategoryID: "18",
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	out, err := f.FetchRange(context.Background(), start, end)
	require.NoError(t, err)

	// отчёт прислал только один день из двух
	require.Len(t, out, 1)
	rd := out[0]
	assert.Equal(t, domain.RecordID("recDzh"), rd.OutletID)
	assert.Equal(t, 1000.0, rd.TotalRevenue)
	assert.Equal(t, 400.0, rd.CardRevenue)
	require.NotNil(t, rd.EntranceRevenue)
	assert.Equal(t, 80.0, *rd.EntranceRevenue)
}
