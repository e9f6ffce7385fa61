package service

import "errors"

// Таксономия ошибок ядра диспетчеризации.
// ErrNoResponder - не ошибка сама по себе, а ветка WAITING конечного автомата:
// она гасится локально и никогда не всплывает к подателю заявки.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrNoResponder = errors.New("no responder available in zone")
	ErrPersistence = errors.New("persistence failure")
	ErrConcurrency = errors.New("concurrency violation")
)
