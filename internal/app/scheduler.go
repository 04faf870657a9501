// internal/app/scheduler.go
package app

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go-animated-bg/internal/config"
)

// SchedulerState — состояние планировщика кадров
type SchedulerState int

const (
	Stopped SchedulerState = iota
	Running
)

func (s SchedulerState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// FrameFunc выполняет один кадр: обновление и отрисовку. step — шаг
// симуляции в опорных кадрах 60 Гц.
type FrameFunc func(step float64)

// FrameScheduler крутит цикл кадров. Кадры никогда не перекрываются:
// следующий начинается только после возврата предыдущего.
//
// Кадры можно вести снаружи (Step из Update хоста) или изнутри (Run с
// тикером). Stop отменяет ожидающий кадр в обоих случаях.
type FrameScheduler struct {
	frame   FrameFunc
	running atomic.Bool
	frames  atomic.Uint64

	mu   sync.Mutex
	stop chan struct{}
}

// NewFrameScheduler создаёт остановленный планировщик.
func NewFrameScheduler(frame FrameFunc) *FrameScheduler {
	return &FrameScheduler{frame: frame}
}

// Start переводит Stopped → Running. Возвращает false, если уже запущен.
func (fs *FrameScheduler) Start() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if !fs.running.CompareAndSwap(false, true) {
		return false
	}
	fs.stop = make(chan struct{})
	return true
}

// Stop переводит Running → Stopped и отменяет ожидающий кадр.
func (fs *FrameScheduler) Stop() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if !fs.running.CompareAndSwap(true, false) {
		return false
	}
	close(fs.stop)
	return true
}

// State — текущее состояние.
func (fs *FrameScheduler) State() SchedulerState {
	if fs.running.Load() {
		return Running
	}
	return Stopped
}

// Frames — число выполненных кадров.
func (fs *FrameScheduler) Frames() uint64 { return fs.frames.Load() }

// Step выполняет один кадр, если планировщик запущен.
func (fs *FrameScheduler) Step(step float64) bool {
	if !fs.running.Load() || fs.frame == nil {
		return false
	}
	fs.frame(step)
	fs.frames.Add(1)
	return true
}

// Run сам ведёт кадры, пока не отменён ctx, не вызван Stop или не выполнено
// maxFrames кадров (0 — без ограничения). При interval <= 0 кадры идут
// подряд с шагом 1, иначе шаг равен interval в опорных кадрах.
func (fs *FrameScheduler) Run(ctx context.Context, interval time.Duration, maxFrames int) error {
	fs.mu.Lock()
	stop := fs.stop
	fs.mu.Unlock()
	if !fs.running.Load() || stop == nil {
		return ErrStopped
	}

	step := 1.0
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
		step = StepFor(interval.Seconds())
	}

	for done := 0; maxFrames <= 0 || done < maxFrames; done++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-stop:
				return nil
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-stop:
				return nil
			default:
			}
		}
		if !fs.Step(step) {
			return nil
		}
	}
	return nil
}

// StepFor переводит прошедшее время в шаг симуляции, ограниченный
// config.MaxStep, чтобы после паузы не было скачка.
func StepFor(elapsedSeconds float64) float64 {
	if !(elapsedSeconds > 0) {
		return 0
	}
	return math.Min(elapsedSeconds*config.ReferenceTPS, config.MaxStep)
}
