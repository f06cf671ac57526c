package keyboards

import (
	"gopkg.in/telebot.v3"
)

// MainMenu — главное меню; админ видит дополнительные пункты.
func MainMenu(admin bool) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	rows := []telebot.Row{
		{markup.Data("Заповнити зміну", "emp_fill")},
	}
	if admin {
		rows = append(rows,
			telebot.Row{markup.Data("Передати інформацію з POSTER", "adm_poster")},
			telebot.Row{markup.Data("🔁 Синхр. Відрахування → Нарахування", "adm_sync")},
			telebot.Row{markup.Data("📜 Історія запусків", "adm_history")},
		)
	}
	markup.Inline(rows...)
	return "Головне меню:", markup
}

// Choices — по кнопке на строку, payload = сам вариант.
func Choices(key string, options []string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(options))
	for _, o := range options {
		rows = append(rows, telebot.Row{markup.Data(o, key, o)})
	}
	markup.Inline(rows...)
	return markup
}

// Confirm — подтверждение введённой даты.
func Confirm(okKey, editKey string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		telebot.Row{markup.Data("✅ Підтвердити", okKey)},
		telebot.Row{markup.Data("✏️ Змінити", editKey)},
		telebot.Row{markup.Data("❌ Скасувати", "adm_cancel")},
	)
	return markup
}

// SendPoster — финальное подтверждение импорта.
func SendPoster() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		telebot.Row{markup.Data("🚀 Передати інформацію", "adm_send")},
		telebot.Row{markup.Data("❌ Скасувати", "adm_cancel")},
	)
	return markup
}

// AfterShift — кнопки после сохранения смены.
func AfterShift(recordID string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		telebot.Row{markup.Data("Видалити", "emp_del", recordID)},
		telebot.Row{markup.Data("Створити нову", "emp_fill")},
	)
	return markup
}
