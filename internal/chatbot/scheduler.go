package chatbot

import "time"

// Scheduler 在 delay 之后执行 fn。
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// TimerScheduler 使用 time.AfterFunc 调度回调，fn 在独立的 goroutine 中执行。
type TimerScheduler struct{}

// Schedule implements Scheduler.
func (TimerScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
