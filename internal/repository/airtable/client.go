package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.airtable.com/v0"

	// лимит хранилища на одну операцию create/update
	maxBatchSize = 10
)

// Client — REST-клиент хранилища записей. Записи создаются и обновляются
// пачками не больше maxBatchSize, пачки уходят строго последовательно,
// чтобы не упереться в rate limit.
type Client struct {
	BaseURL string
	APIKey  string
	BaseID  string
	HTTP    *http.Client
}

func NewClient(apiKey, baseID string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		APIKey:  apiKey,
		BaseID:  baseID,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type Record struct {
	ID     string         `json:"id,omitempty"`
	Fields map[string]any `json:"fields"`
}

type ListOptions struct {
	FilterByFormula string
	Fields          []string
	MaxRecords      int
}

// APIError — ошибка, пришедшая из хранилища.
type APIError struct {
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("airtable: %d %s: %s", e.Status, e.Type, e.Message)
}

type errorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type recordsPage struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

type recordsBody struct {
	Records []Record `json:"records"`
}

func (c *Client) tableURL(table string) string {
	return c.BaseURL + "/" + url.PathEscape(c.BaseID) + "/" + url.PathEscape(table)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil {
			apiErr.Type = env.Error.Type
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// List выгружает записи таблицы с постраничным обходом.
func (c *Client) List(ctx context.Context, table string, opt ListOptions) ([]Record, error) {
	var all []Record
	offset := ""
	for {
		q := url.Values{}
		if opt.FilterByFormula != "" {
			q.Set("filterByFormula", opt.FilterByFormula)
		}
		for _, f := range opt.Fields {
			q.Add("fields[]", f)
		}
		if opt.MaxRecords > 0 {
			q.Set("maxRecords", strconv.Itoa(opt.MaxRecords))
		}
		if offset != "" {
			q.Set("offset", offset)
		}
		u := c.tableURL(table)
		if len(q) > 0 {
			u += "?" + q.Encode()
		}
		var page recordsPage
		if err := c.do(ctx, http.MethodGet, u, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Records...)
		if page.Offset == "" {
			return all, nil
		}
		offset = page.Offset
	}
}

// Create создаёт записи пачками и возвращает их идентификаторы.
// Ошибка пачки останавливает отправку, уже созданные записи остаются.
func (c *Client) Create(ctx context.Context, table string, fields []map[string]any) ([]string, error) {
	ids := make([]string, 0, len(fields))
	for i := 0; i < len(fields); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(fields) {
			end = len(fields)
		}
		body := recordsBody{Records: make([]Record, 0, end-i)}
		for _, f := range fields[i:end] {
			body.Records = append(body.Records, Record{Fields: f})
		}
		var resp recordsBody
		if err := c.do(ctx, http.MethodPost, c.tableURL(table), body, &resp); err != nil {
			return ids, err
		}
		for _, r := range resp.Records {
			ids = append(ids, r.ID)
		}
	}
	return ids, nil
}

// Update обновляет записи пачками, возвращает число отправленных пачек.
func (c *Client) Update(ctx context.Context, table string, recs []Record) (int, error) {
	batches := 0
	for i := 0; i < len(recs); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(recs) {
			end = len(recs)
		}
		body := recordsBody{Records: recs[i:end]}
		if err := c.do(ctx, http.MethodPatch, c.tableURL(table), body, nil); err != nil {
			return batches, err
		}
		batches++
	}
	return batches, nil
}

func (c *Client) Delete(ctx context.Context, table, id string) error {
	return c.do(ctx, http.MethodDelete, c.tableURL(table)+"/"+url.PathEscape(id), nil, nil)
}
