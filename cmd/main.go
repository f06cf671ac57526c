package main

import (
	"database/sql"
	"log"
	"time"

	"revsync-bot/config"
	"revsync-bot/internal/app/service"
	"revsync-bot/internal/delivery/telegram"
	"revsync-bot/internal/domain"
	"revsync-bot/internal/poster"
	"revsync-bot/internal/repository/airtable"
	"revsync-bot/internal/repository/sqlite"
	"revsync-bot/pkg/calendar"
	"revsync-bot/pkg/workerpool"

	"gopkg.in/telebot.v3"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	log.Println("Запуск Revenue Sync Bot...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфига: %v", err)
	}

	db, err := sql.Open("sqlite3", "revsync-bot.db")
	if err != nil {
		log.Fatalf("Ошибка подключения к базе: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatalf("Ошибка миграции: %v", err)
	}

	// Инициализация worker pool
	pool := workerpool.NewWorkerPool(4, 32)
	defer pool.Close()

	at := airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID)
	resolver := airtable.NewResolver(at)
	shiftRepo := airtable.NewShiftRepo(at)
	deductionRepo := airtable.NewDeductionRepo(at)
	acquiringRepo := airtable.NewAcquiringRepo(at)
	journal := sqlite.NewRunJournalRepo(db)

	outlets := make([]poster.Outlet, 0, len(cfg.Outlets))
	outletNames := make([]string, 0, len(cfg.Outlets))
	for _, o := range cfg.Outlets {
		outlets = append(outlets, poster.Outlet{Name: o.Name, Account: o.PosterAccount, Token: o.PosterToken})
		outletNames = append(outletNames, o.Name)
	}

	var fetcher domain.RevenueFetcher
	if cfg.PosterMode == "real" {
		fetcher = &poster.Fetcher{
			Client:               poster.NewClient(),
			Resolver:             resolver,
			Outlets:              outlets,
			EntranceOutlet:       cfg.EntranceOutlet,
			EntranceCategoryID:   cfg.EntranceCategoryID,
			EntranceCategoryName: cfg.EntranceCategoryName,
		}
	} else {
		log.Println("POSTER_MODE=demo: данные генерируются локально")
		fetcher = &poster.DemoFetcher{
			Resolver:       resolver,
			Outlets:        outlets,
			EntranceOutlet: cfg.EntranceOutlet,
		}
	}

	recon := &service.ReconcileService{
		Fetcher:        fetcher,
		Shifts:         shiftRepo,
		Acquiring:      acquiringRepo,
		Resolver:       resolver,
		Journal:        journal,
		EntranceOutlet: cfg.EntranceOutlet,
	}
	deductions := &service.DeductionSyncService{
		Deductions: deductionRepo,
		Shifts:     shiftRepo,
		Journal:    journal,
	}
	entry := &service.ShiftEntryService{Shifts: shiftRepo, Resolver: resolver}

	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Fatalf("Ошибка запуска бота: %v", err)
	}

	calendarController := &calendar.CalendarController{Bot: bot}
	handler := &telegram.Handler{
		Bot:        bot,
		Entry:      entry,
		Recon:      recon,
		Deductions: deductions,
		Journal:    journal,
		Async:      service.NewAsyncService(pool),
		Calendar:   calendarController,
		AdminIDs:   cfg.AdminIDs,
		Outlets:    outletNames,
		Positions:  cfg.Positions,
	}
	handler.Register()

	log.Println("Бот запущен!")
	bot.Start()
}
