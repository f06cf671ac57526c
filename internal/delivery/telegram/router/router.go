package router

import (
	"log"
	"strings"

	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter разбирает callback-данные вида "ключ|payload"
// и ведёт к зарегистрированному хендлеру. Календарные cal_* коды
// делегируются отдельно.
type CallbackRouter struct {
	handlers    map[string]HandlerFunc
	CalDelegate func(c telebot.Context) error
}

func New() *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc)}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		raw := strings.TrimPrefix(c.Data(), "\f")
		key := raw
		payload := ""
		if i := strings.IndexByte(raw, '|'); i >= 0 {
			key = raw[:i]
			if len(raw) > i+1 {
				payload = raw[i+1:]
			}
		}
		log.Printf("[callback] key=%q", key)
		// Отвечаем на callback, чтобы Telegram убрал часики
		_ = c.Respond()

		if strings.HasPrefix(key, "cal_") {
			if r.CalDelegate != nil {
				return r.CalDelegate(c)
			}
			return nil
		}
		if h, ok := r.handlers[key]; ok {
			return h(c, payload)
		}
		return nil
	})
}
