package airtable

import (
	"strings"
	"time"

	"revsync-bot/internal/domain"
	"revsync-bot/pkg/dateutil"
)

// firstString достаёт текст из поля: строка, первый элемент массива
// или lookup-объект с полем name.
func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		if len(t) > 0 {
			return firstString(t[0])
		}
	case map[string]any:
		if name, ok := t["name"].(string); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// linkIDs читает linked-поле — массив идентификаторов записей.
func linkIDs(v any) []domain.RecordID {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var ids []domain.RecordID
	for _, x := range arr {
		if s, ok := x.(string); ok && s != "" {
			ids = append(ids, domain.RecordID(s))
		}
	}
	return ids
}

func firstLink(v any) domain.RecordID {
	ids := linkIDs(v)
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

func dateField(v any) (time.Time, bool) {
	s := firstString(v)
	if s == "" {
		return time.Time{}, false
	}
	return dateutil.DayOnly(s)
}
