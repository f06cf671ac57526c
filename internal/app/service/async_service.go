package service

import (
	"revsync-bot/pkg/workerpool"
)

// AsyncService выполняет долгие операции (походы в Airtable и Poster)
// вне хендлера бота.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

func (a *AsyncService) SubmitAsync(fn func() (any, error)) (any, error) {
	return a.Pool.SubmitWait(fn)
}
