// internal/app/errors.go
package app

import "errors"

var (
	// ErrNotMounted возвращается при попытке размонтировать движок, который не смонтирован.
	ErrNotMounted = errors.New("engine is not mounted")
	// ErrAlreadyMounted возвращается при повторном монтировании.
	ErrAlreadyMounted = errors.New("engine is already mounted")
	// ErrStopped возвращается Run, если планировщик не запущен.
	ErrStopped = errors.New("frame scheduler is stopped")
)
