package airtable

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"revsync-bot/internal/domain"
)

// ErrNotFound — в таблице нет записи с таким значением.
var ErrNotFound = errors.New("запис не знайдено")

const resolverCacheLimit = 256

// Resolver переводит названия закладов/посад и Telegram ID сотрудников
// в идентификаторы записей. Кэш ограничен по размеру и сбрасывается
// явно через Invalidate, а не живёт неявно на весь процесс.
type Resolver struct {
	Client *Client

	mu    sync.Mutex
	cache map[string]domain.RecordID
}

func NewResolver(c *Client) *Resolver {
	return &Resolver{Client: c, cache: make(map[string]domain.RecordID)}
}

func (r *Resolver) lookup(ctx context.Context, table, field, value string) (domain.RecordID, error) {
	key := table + ":" + field + ":" + value
	r.mu.Lock()
	id, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return id, nil
	}

	escaped := strings.ReplaceAll(value, `"`, `\"`)
	formula := fmt.Sprintf(`{%s} = "%s"`, field, escaped)
	recs, err := r.Client.List(ctx, table, ListOptions{FilterByFormula: formula, MaxRecords: 1})
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", fmt.Errorf(`не знайдено %q у таблиці %q по полю %q: %w`, value, table, field, ErrNotFound)
	}
	id = domain.RecordID(recs[0].ID)

	r.mu.Lock()
	if len(r.cache) >= resolverCacheLimit {
		// переполнение — начинаем заново, справочники маленькие
		r.cache = make(map[string]domain.RecordID)
	}
	r.cache[key] = id
	r.mu.Unlock()
	return id, nil
}

func (r *Resolver) OutletID(ctx context.Context, name string) (domain.RecordID, error) {
	return r.lookup(ctx, TableOutlets, FieldOutletName, name)
}

func (r *Resolver) PositionID(ctx context.Context, name string) (domain.RecordID, error) {
	return r.lookup(ctx, TablePositions, FieldPositionName, name)
}

func (r *Resolver) EmployeeByTelegramID(ctx context.Context, tgID int64) (domain.RecordID, error) {
	id, err := r.lookup(ctx, TableEmployees, FieldEmployeeTg, strconv.FormatInt(tgID, 10))
	if errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf(`твого профілю немає в %q — попроси адміна додати тебе (поле %q = %d)`,
			TableEmployees, FieldEmployeeTg, tgID)
	}
	return id, err
}

func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[string]domain.RecordID)
	r.mu.Unlock()
}
