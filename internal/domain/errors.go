package domain

import "errors"

// ErrSyncBusy возвращается, если синхронизация отчислений уже идёт.
// Повторный запуск не ставится в очередь — пользователь пробует позже.
var ErrSyncBusy = errors.New("синхронізація вже виконується")
