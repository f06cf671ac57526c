package domain

// Классификация оплаты смены — поле «ЗП для бота» в начислении.

// PayTypeEntrance получает «Виручку Вхід» (только заклад с входами).
const PayTypeEntrance = "Ставка + % вхід"

// процентные типы получают общую «Виручку»
var payTypesTotal = map[string]struct{}{
	"%":          {},
	"Ставка + %": {},
}

func PayTypeUsesTotal(payType string) bool {
	_, ok := payTypesTotal[payType]
	return ok
}
