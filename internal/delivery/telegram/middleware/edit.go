package middleware

import (
	"gopkg.in/telebot.v3"
)

// EditOrSend правит сообщение под коллбэком, а если не вышло — шлёт новое.
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if markup != nil {
		if err := c.Edit(text, markup); err != nil {
			return c.Send(text, markup)
		}
		return nil
	}
	if err := c.Edit(text); err != nil {
		return c.Send(text)
	}
	return nil
}
