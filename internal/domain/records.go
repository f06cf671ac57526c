package domain

import (
	"time"

	"revsync-bot/pkg/dateutil"
)

// RecordID — непрозрачный идентификатор записи во внешнем хранилище.
type RecordID string

// ShiftRecord — строка начисления: один сотрудник, один заклад, одна дата.
// Создаётся сотрудником через бот; движок обновляет только поля выручки
// и набор ссылок на отчисления.
type ShiftRecord struct {
	ID              RecordID
	Date            time.Time
	OutletID        RecordID
	EmployeeID      RecordID
	PositionID      RecordID
	PayType         string
	TotalRevenue    *float64
	EntranceRevenue *float64
	DeductionLinks  []RecordID
}

// DayOutlet возвращает ключ сопоставления с дневной выручкой.
func (s ShiftRecord) DayOutlet() (DayOutletKey, bool) {
	if s.Date.IsZero() || s.OutletID == "" {
		return DayOutletKey{}, false
	}
	return DayOutletKey{Date: dateutil.FormatISO(s.Date), Outlet: s.OutletID}, true
}

// Key возвращает ключ привязки отчислений; требует все три поля.
func (s ShiftRecord) Key() (ShiftKey, bool) {
	if s.EmployeeID == "" || s.OutletID == "" || s.Date.IsZero() {
		return ShiftKey{}, false
	}
	return ShiftKey{Employee: s.EmployeeID, Outlet: s.OutletID, Date: dateutil.FormatISO(s.Date)}, true
}

// DeductionRecord — отчисление. Движок его не меняет и не удаляет,
// только привязывает к начислению с тем же ключом.
type DeductionRecord struct {
	ID         RecordID
	EmployeeID RecordID
	OutletID   RecordID
	Date       time.Time
}

func (d DeductionRecord) Key() (ShiftKey, bool) {
	if d.EmployeeID == "" || d.OutletID == "" || d.Date.IsZero() {
		return ShiftKey{}, false
	}
	return ShiftKey{Employee: d.EmployeeID, Outlet: d.OutletID, Date: dateutil.FormatISO(d.Date)}, true
}

// AcquiringRecord — строка журнала эквайринга. Только создаётся,
// дубликаты между запусками допустимы.
type AcquiringRecord struct {
	Date        time.Time
	OutletID    RecordID
	CardRevenue float64
}

// RevenueDay — дневная выручка одного заклада из Poster.
// EntranceRevenue заполняется только для заклада с входами.
type RevenueDay struct {
	Date            time.Time
	Outlet          string
	OutletID        RecordID
	TotalRevenue    float64
	CardRevenue     float64
	EntranceRevenue *float64
}
