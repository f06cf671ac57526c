package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrNoToken    = errors.New("TELEGRAM_TOKEN не задан в окружении")
	ErrNoAirtable = errors.New("AIRTABLE_API_KEY или AIRTABLE_BASE_ID не заданы в окружении")
)

// OutletConfig — заклад и его доступ к Poster.
type OutletConfig struct {
	Name          string
	PosterAccount string
	PosterToken   string
}

type Config struct {
	TelegramToken string
	AdminIDs      []int64

	AirtableAPIKey string
	AirtableBaseID string

	// "real" ходит в Poster API, "demo" генерирует данные локально.
	PosterMode string
	Outlets    []OutletConfig
	Positions  []string

	EntranceOutlet       string
	EntranceCategoryID   string
	EntranceCategoryName string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, ErrNoToken
	}

	apiKey := os.Getenv("AIRTABLE_API_KEY")
	baseID := os.Getenv("AIRTABLE_BASE_ID")
	if apiKey == "" || baseID == "" {
		return nil, ErrNoAirtable
	}

	mode := os.Getenv("POSTER_MODE")
	if mode == "" {
		mode = "demo"
	}

	cfg := &Config{
		TelegramToken: token,
		AdminIDs:      parseAdminIDs(os.Getenv("ADMIN_IDS")),

		AirtableAPIKey: apiKey,
		AirtableBaseID: baseID,

		PosterMode: mode,
		Outlets: []OutletConfig{
			{Name: "Староєврейська", PosterAccount: "grebu4e", PosterToken: os.Getenv("POSTER_SE")},
			{Name: "Дорошенка", PosterAccount: "grebuche-iabko-kriva-lipa", PosterToken: os.Getenv("POSTER_DO")},
			{Name: "Джерельна", PosterAccount: "rayon-gy", PosterToken: os.Getenv("POSTER_DZH")},
		},
		Positions: []string{
			"Бармен",
			"Старший бармен",
			"Офіціант",
			"Кухар",
			"Адміністратор",
			"Технічний працівник",
		},

		EntranceOutlet:       "Джерельна",
		EntranceCategoryID:   "18",
		EntranceCategoryName: "БРАСЛЕТИ - ВХОДИ",
	}
	return cfg, nil
}

func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
