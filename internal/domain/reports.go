package domain

// ReconcileReport — итог переноса выручки Poster в хранилище.
type ReconcileReport struct {
	AcquiringCreated int
	ShiftsUpdated    int
	TotalWrites      int
	EntranceWrites   int
	// Начисления, чей тип ЗП не подпадает ни под одно правило.
	// Их молча пропускаем, но количество показываем.
	UnknownPayType int
}

// SyncReport — итог синхронизации «Відрахування → Нарахування».
type SyncReport struct {
	DeductionsTotal   int
	DeductionsSkipped int
	Keys              int
	AccrualsTotal     int
	AccrualsSkipped   int
	UpdatesPlanned    int
	Updated           int
	Batches           int
	NotAddedCount     int
	NotAddedSample    []string
}

// NotAddedItem — отчисление, которое не удалось привязать.
type NotAddedItem struct {
	ID     RecordID
	Reason string
	Key    string
}

func (x NotAddedItem) Format() string {
	s := "• " + string(x.ID)
	if x.Reason != "" {
		s += " — " + x.Reason
	}
	if x.Key != "" {
		s += " (key: " + x.Key + ")"
	}
	return s
}
