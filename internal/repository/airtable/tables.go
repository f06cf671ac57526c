package airtable

// Таблицы и поля базы. Названия обязаны совпадать с реальной базой 1-в-1.
const (
	TableShifts     = "Нарахування"
	TableAcquiring  = "Еквайринг"
	TableDeductions = "Відрахування"
	TableOutlets    = "Заклади"
	TablePositions  = "Посади"
	TableEmployees  = "Працівники"

	FieldDate            = "Дата"
	FieldOutlet          = "Заклад"
	FieldPosition        = "Посада"
	FieldEmployee        = "Працівник"
	FieldRevenue         = "Виручка"
	FieldEntranceRevenue = "Виручка Вхід"
	FieldPayType         = "ЗП для бота"
	FieldDeductionLinks  = "Відрахування(Вибрати)"
	FieldAcquiringValue  = "Еквайринг Poster (API)"

	FieldOutletName   = "Назва закладу"
	FieldPositionName = "Скорочена назва"
	FieldEmployeeTg   = "Telegram ID"
)
