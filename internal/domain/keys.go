package domain

import "fmt"

// Составные ключи — структуры со структурным равенством,
// чтобы не зависеть от разделителя в склеенной строке.

// DayOutletKey идентифицирует дневную выручку одного заклада.
type DayOutletKey struct {
	Date   string // YYYY-MM-DD
	Outlet RecordID
}

// ShiftKey группирует отчисления и начисления одного сотрудника
// в одном закладе за один день.
type ShiftKey struct {
	Employee RecordID
	Outlet   RecordID
	Date     string // YYYY-MM-DD
}

// String — представление для отчётов, как в выгрузках бота.
func (k ShiftKey) String() string {
	return fmt.Sprintf("%s__%s__%s", k.Employee, k.Outlet, k.Date)
}
