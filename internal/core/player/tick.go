package player

import (
	"sync"
	"time"
)

// TickSource 周期触发回调的调度源。
// Stop 返回后保证回调不会再被触发，包括已经在途的那一次。
type TickSource interface {
	Start(fn func())
	Stop()
}

// WallTicker 基于 time.Ticker 的调度源
type WallTicker struct {
	interval time.Duration
	quit     chan struct{}
	wg       sync.WaitGroup
}

func NewWallTicker(interval time.Duration) *WallTicker {
	return &WallTicker{interval: interval}
}

func (t *WallTicker) Start(fn func()) {
	t.quit = make(chan struct{})
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.quit:
				return
			case <-ticker.C:
				// 关闭与触发同时到达时以关闭为准
				select {
				case <-t.quit:
					return
				default:
				}
				fn()
			}
		}
	}()
}

// Stop 关闭调度源并等待循环协程退出
func (t *WallTicker) Stop() {
	if t.quit == nil {
		return
	}
	close(t.quit)
	t.wg.Wait()
	t.quit = nil
}

// ManualTicker 手动触发的调度源，用于确定性测试
type ManualTicker struct {
	mu sync.Mutex
	fn func()
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

func (t *ManualTicker) Start(fn func()) {
	t.mu.Lock()
	t.fn = fn
	t.mu.Unlock()
}

func (t *ManualTicker) Stop() {
	t.mu.Lock()
	t.fn = nil
	t.mu.Unlock()
}

// Fire 触发一次回调，未启动时什么都不做
func (t *ManualTicker) Fire() {
	t.mu.Lock()
	fn := t.fn
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}
