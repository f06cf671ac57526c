package calendar

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// CalendarController — инлайн-календарь выбора даты с переключением месяцев.
// OnDate подставляется диалогом, которому нужна дата.
type CalendarController struct {
	Bot    *telebot.Bot
	OnDate func(time.Time, telebot.Context) error
}

func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now()
	return SendCalendar(c, now.Year(), int(now.Month()))
}

// SendCalendar строит и отправляет календарь за указанный месяц
func SendCalendar(c telebot.Context, year, month int) error {
	markup := &telebot.ReplyMarkup{}
	days := daysInMonth(year, month)
	var rows []telebot.Row
	week := telebot.Row{}
	for d := 1; d <= days; d++ {
		btn := markup.Data(strconv.Itoa(d), "cal_day", strconv.Itoa(d)+"-"+strconv.Itoa(month)+"-"+strconv.Itoa(year))
		week = append(week, btn)
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	prev := markup.Data("<", "cal_prev", strconv.Itoa(month-1)+"-"+strconv.Itoa(year))
	next := markup.Data(">", "cal_next", strconv.Itoa(month+1)+"-"+strconv.Itoa(year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)
	ukMonths := map[time.Month]string{
		time.January:   "Січень",
		time.February:  "Лютий",
		time.March:     "Березень",
		time.April:     "Квітень",
		time.May:       "Травень",
		time.June:      "Червень",
		time.July:      "Липень",
		time.August:    "Серпень",
		time.September: "Вересень",
		time.October:   "Жовтень",
		time.November:  "Листопад",
		time.December:  "Грудень",
	}
	monthName := time.Month(month).String()
	if uk, ok := ukMonths[time.Month(month)]; ok {
		monthName = uk
	}
	title := "Виберіть дату: " + monthName + " " + strconv.Itoa(year)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// HandleCallback обрабатывает cal_* коллбэки; вызывается из роутера.
func (cc *CalendarController) HandleCallback(c telebot.Context) error {
	raw := strings.TrimPrefix(c.Data(), "\f")
	split := strings.SplitN(raw, "|", 2)
	if len(split) != 2 {
		return nil
	}
	payload := split[1]
	switch split[0] {
	case "cal_day":
		parts := strings.Split(payload, "-")
		if len(parts) != 3 {
			return c.Send("Помилка дати")
		}
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if cc.OnDate != nil {
			return cc.OnDate(date, c)
		}
		return nil
	case "cal_prev":
		parts := strings.Split(payload, "-")
		if len(parts) != 2 {
			return c.Send("Помилка місяця")
		}
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		if month < 1 {
			month = 12
			year--
		}
		return SendCalendar(c, year, month)
	case "cal_next":
		parts := strings.Split(payload, "-")
		if len(parts) != 2 {
			return c.Send("Помилка місяця")
		}
		month, _ := strconv.Atoi(parts[0])
		year, _ := strconv.Atoi(parts[1])
		if month > 12 {
			month = 1
			year++
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
