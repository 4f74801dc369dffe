package player

import (
	"sync"
	"testing"
)

// 交接前后用手动节拍源逐秒对账，一秒都不能多记或丢失
func TestHandoffTransfersProgressExactly(t *testing.T) {
	primary, pSecond, _ := newManualDriver("primary")
	floating, fSecond, _ := newManualDriver("floating")

	p := NewPlayer(primary)
	loadScript(p, "[time 01:00]正文。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}

	for range 3 {
		pSecond.Fire()
	}
	if err := p.Handoff(floating); err != nil {
		t.Fatal(err)
	}

	// 原驱动方的节拍源已被同步撤掉，再触发也不走表
	pSecond.Fire()
	pSecond.Fire()
	if got := p.Snapshot().Elapsed; got != 3 {
		t.Fatalf("old driver must be fully cancelled, elapsed=%d", got)
	}

	for range 2 {
		fSecond.Fire()
	}
	snap := p.Snapshot()
	if snap.Elapsed != 5 {
		t.Fatalf("expect elapsed 5 after handoff, got %d", snap.Elapsed)
	}
	if snap.Driver != "floating" {
		t.Fatalf("expect driver floating, got %s", snap.Driver)
	}
}

// 交还后主驱动方拿到一模一样的进度继续走
func TestHandbackRestoresPrimary(t *testing.T) {
	primary, pSecond, _ := newManualDriver("primary")
	floating, fSecond, _ := newManualDriver("floating")

	p := NewPlayer(primary)
	loadScript(p, "[time 00:30]一。[time 00:30]二。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	for range 10 {
		pSecond.Fire()
	}
	if err := p.Handoff(floating); err != nil {
		t.Fatal(err)
	}
	for range 25 {
		fSecond.Fire()
	}

	before := p.State()
	if err := p.Handback(); err != nil {
		t.Fatal(err)
	}
	after := p.State()
	if before != after {
		t.Fatalf("handback must not disturb progress: %+v vs %+v", before, after)
	}
	if p.DriverName() != "primary" {
		t.Fatalf("expect primary driver, got %s", p.DriverName())
	}

	// 浮动端的节拍源已撤掉
	fSecond.Fire()
	pSecond.Fire()
	if got := p.Snapshot().Elapsed; got != 36 {
		t.Fatalf("only the primary ticker may advance, elapsed=%d", got)
	}
}

// 暂停状态下交接，只换驱动方不起节拍
func TestHandoffWhilePaused(t *testing.T) {
	primary, pSecond, _ := newManualDriver("primary")
	floating, fSecond, _ := newManualDriver("floating")

	p := NewPlayer(primary)
	loadScript(p, "[time 01:00]正文。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	for range 4 {
		pSecond.Fire()
	}
	if err := p.Pause(); err != nil {
		t.Fatal(err)
	}
	if err := p.Handoff(floating); err != nil {
		t.Fatal(err)
	}

	fSecond.Fire()
	if got := p.Snapshot().Elapsed; got != 4 {
		t.Fatalf("paused handoff must not start ticking, elapsed=%d", got)
	}

	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	fSecond.Fire()
	if got := p.Snapshot().Elapsed; got != 5 {
		t.Fatalf("floating driver should tick after resume, elapsed=%d", got)
	}
}

// 重复交给当前驱动方是空操作
func TestHandoffToCurrentDriver(t *testing.T) {
	primary, pSecond, _ := newManualDriver("primary")
	p := NewPlayer(primary)
	loadScript(p, "[time 00:30]正文。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	pSecond.Fire()
	if err := p.Handoff(primary); err != nil {
		t.Fatal(err)
	}
	pSecond.Fire()
	if got := p.Snapshot().Elapsed; got != 2 {
		t.Fatalf("no-op handoff must keep the ticker alive, elapsed=%d", got)
	}
}

// 生命周期事件逐个送达回调
func TestEventHook(t *testing.T) {
	primary, _, _ := newManualDriver("primary")
	floating, _, _ := newManualDriver("floating")

	var mu sync.Mutex
	var kinds []string
	var wg sync.WaitGroup
	wg.Add(4)
	p := NewPlayer(primary, WithEventHook(func(kind string, _ PlaybackState) {
		mu.Lock()
		kinds = append(kinds, kind)
		mu.Unlock()
		wg.Done()
	}))
	loadScript(p, "[time 00:30]正文。")

	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	if err := p.Pause(); err != nil {
		t.Fatal(err)
	}
	if err := p.Handoff(floating); err != nil {
		t.Fatal(err)
	}
	if err := p.Restart(); err != nil {
		t.Fatal(err)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	want := map[string]bool{EventPlay: true, EventPause: true, EventHandoff: true, EventRestart: true}
	for _, k := range kinds {
		delete(want, k)
	}
	if len(want) != 0 {
		t.Fatalf("missing events %v, got %v", want, kinds)
	}
}
