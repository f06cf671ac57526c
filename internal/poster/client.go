package poster

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client ходит в отчётное API Poster. Деньги приходят в минорных
// единицах и делятся на 100 сразу при разборе.
type Client struct {
	HTTP *http.Client
	// BaseURL переопределяет адрес API (для тестов); по умолчанию
	// адрес строится из аккаунта заклада.
	BaseURL string
}

func NewClient() *Client {
	return &Client{HTTP: &http.Client{Timeout: 20 * time.Second}}
}

// PaymentDay — дневная выручка из dash.getPaymentsReport.
type PaymentDay struct {
	Date         string
	TotalRevenue float64
	CardRevenue  float64
}

// flexNumber терпит числа, присланные строками; мусор считается нулём.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = flexNumber(f)
	return nil
}

// flexString терпит и строковые, и числовые идентификаторы.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = flexString(t)
	case float64:
		*s = flexString(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		*s = ""
	}
	return nil
}

type apiError struct {
	Message string `json:"message"`
}

func (e *apiError) text() string {
	if e.Message == "" {
		return "Unknown error"
	}
	return e.Message
}

type paymentsResponse struct {
	Error    *apiError `json:"error"`
	Response *struct {
		Days []paymentDayRaw `json:"days"`
	} `json:"response"`
}

type paymentDayRaw struct {
	Date      string      `json:"date"`
	PayedCard flexNumber  `json:"payed_card_sum"`
	PayedSum  *flexNumber `json:"payed_sum_sum"`
	TotalSum  *flexNumber `json:"total_sum"`
	Sum       *flexNumber `json:"sum"`
}

type categoriesResponse struct {
	Error    *apiError     `json:"error"`
	Response []categoryRow `json:"response"`
}

type categoryRow struct {
	CategoryID   flexString `json:"category_id"`
	CategoryName string     `json:"category_name"`
	Revenue      flexNumber `json:"revenue"`
}

func (c *Client) apiURL(account, method string) string {
	if c.BaseURL != "" {
		return c.BaseURL + "/api/" + method
	}
	return "https://" + account + ".joinposter.com/api/" + method
}

func (c *Client) get(ctx context.Context, rawURL, account string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("poster: не-JSON відповідь для %s", account)
	}
	return nil
}

// PaymentsByDay — отчёт по дням за диапазон дат включительно.
func (c *Client) PaymentsByDay(ctx context.Context, account, token, dateFrom, dateTo string) ([]PaymentDay, error) {
	q := url.Values{}
	q.Set("token", token)
	q.Set("date_from", dateFrom)
	q.Set("date_to", dateTo)

	var resp paymentsResponse
	if err := c.get(ctx, c.apiURL(account, "dash.getPaymentsReport")+"?"+q.Encode(), account, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("poster: помилка для %s: %s", account, resp.Error.text())
	}
	if resp.Response == nil || resp.Response.Days == nil {
		return nil, fmt.Errorf("poster: несподіваний формат відповіді для %s", account)
	}

	days := make([]PaymentDay, 0, len(resp.Response.Days))
	for _, d := range resp.Response.Days {
		var total float64
		switch {
		case d.PayedSum != nil:
			total = float64(*d.PayedSum)
		case d.TotalSum != nil:
			total = float64(*d.TotalSum)
		case d.Sum != nil:
			total = float64(*d.Sum)
		}
		days = append(days, PaymentDay{
			Date:         d.Date,
			TotalRevenue: total / 100,
			CardRevenue:  float64(d.PayedCard) / 100,
		})
	}
	return days, nil
}

// EntranceRevenue суммирует выручку категории входов за один день.
// Категория ищется по id или по нормализованному названию.
func (c *Client) EntranceRevenue(ctx context.Context, account, token, date, categoryID, categoryName string) (float64, error) {
	q := url.Values{}
	q.Set("token", token)
	q.Set("date_from", date)
	q.Set("date_to", date)

	var resp categoriesResponse
	if err := c.get(ctx, c.apiURL(account, "dash.getCategoriesSales")+"?"+q.Encode(), account, &resp); err != nil {
		return 0, err
	}
	if resp.Error != nil {
		return 0, fmt.Errorf("poster: помилка для %s (categories): %s", account, resp.Error.text())
	}
	if resp.Response == nil {
		return 0, fmt.Errorf("poster: несподіваний формат категорій для %s", account)
	}

	targetID := strings.TrimSpace(categoryID)
	targetName := normText(categoryName)

	var revenue float64
	for _, r := range resp.Response {
		id := strings.TrimSpace(string(r.CategoryID))
		name := normText(r.CategoryName)
		if (targetID != "" && id == targetID) || (targetName != "" && name == targetName) {
			revenue += float64(r.Revenue) / 100
		}
	}
	log.Printf("[poster] entrance %s %s revenue=%.2f", account, date, revenue)
	return revenue, nil
}

func normText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
