package player

import (
	"testing"

	"github.com/ThisIsNSH/CueCard/internal/core/script"
)

func newManualDriver(name string) (*Driver, *ManualTicker, *ManualTicker) {
	second := NewManualTicker()
	frame := NewManualTicker()
	return NewDriver(name, second, frame), second, frame
}

func loadScript(p *Player, text string) {
	p.Load(script.Parse(text))
}

func TestPlayWithoutSegments(t *testing.T) {
	d, _, _ := newManualDriver("primary")
	p := NewPlayer(d)
	if err := p.Play(); err == nil {
		t.Fatal("play without segments must be rejected")
	}
}

// 秒针推进后由绝对秒数重算段落与倒计时
func TestSecondTickAdvancesTimeline(t *testing.T) {
	d, second, _ := newManualDriver("primary")
	p := NewPlayer(d)
	loadScript(p, "[time 00:30]第一段。[time 01:00]第二段。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}

	for range 45 {
		second.Fire()
	}

	snap := p.Snapshot()
	if snap.Elapsed != 45 {
		t.Fatalf("expect elapsed 45, got %d", snap.Elapsed)
	}
	if snap.SegmentIndex != 1 {
		t.Fatalf("expect segment 1, got %d", snap.SegmentIndex)
	}
	// 第二段时长 60s，起点 30s，已进入 15s，剩余 45s
	if snap.CountdownText != "00:45" || snap.Overtime {
		t.Fatalf("expect countdown 00:45, got %q overtime=%v", snap.CountdownText, snap.Overtime)
	}
}

// 末段超时后倒计时转负继续走，不回绕不停止
func TestOvertimeKeepsCounting(t *testing.T) {
	d, second, _ := newManualDriver("primary")
	p := NewPlayer(d)
	loadScript(p, "[time 00:10]唯一一段。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}

	for range 75 {
		second.Fire()
	}

	snap := p.Snapshot()
	if snap.SegmentIndex != 0 {
		t.Fatalf("index must clamp to last segment, got %d", snap.SegmentIndex)
	}
	if snap.CountdownText != "-01:05" || !snap.Overtime {
		t.Fatalf("expect countdown -01:05, got %q overtime=%v", snap.CountdownText, snap.Overtime)
	}
}

// 不计时段落没有倒计时，时钟照走不自动停止
func TestUntimedSegmentHasNoCountdown(t *testing.T) {
	d, second, _ := newManualDriver("primary")
	p := NewPlayer(d)
	loadScript(p, "整篇没有计时标记。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}

	for range 120 {
		second.Fire()
	}
	snap := p.Snapshot()
	if snap.Elapsed != 120 || snap.Status != StatusRunning {
		t.Fatalf("untimed playback must keep running, got %+v", snap)
	}
	if snap.CountdownText != "" || snap.Overtime {
		t.Fatalf("untimed segment must not render a countdown, got %q", snap.CountdownText)
	}
}

func TestFrameTickScroll(t *testing.T) {
	d, second, frame := newManualDriver("primary")
	p := NewPlayer(d, WithBaseScrollRate(2))
	p.SetSpeedMultiplier(1.5)
	loadScript(p, "[time 00:30]第一段。[time 00:30]第二段。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}

	for range 4 {
		frame.Fire()
	}
	if got := p.Snapshot().ScrollOffset; got != 12 {
		t.Fatalf("expect scroll 12, got %v", got)
	}

	// 跨段时滚动清零
	for range 30 {
		second.Fire()
	}
	snap := p.Snapshot()
	if snap.SegmentIndex != 1 {
		t.Fatalf("expect segment 1, got %d", snap.SegmentIndex)
	}
	if snap.ScrollOffset != 0 {
		t.Fatalf("scroll must reset on segment change, got %v", snap.ScrollOffset)
	}
}

// 暂停只翻转播放标志，进度保留；恢复后继续累加
func TestPauseResume(t *testing.T) {
	d, second, _ := newManualDriver("primary")
	p := NewPlayer(d)
	loadScript(p, "[time 01:00]正文。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	for range 7 {
		second.Fire()
	}
	if err := p.Pause(); err != nil {
		t.Fatal(err)
	}

	// 节拍源已同步撤掉，迟到的触发不会再推进
	second.Fire()
	second.Fire()
	snap := p.Snapshot()
	if snap.Status != StatusPaused || snap.Elapsed != 7 {
		t.Fatalf("pause must freeze progress, got %+v", snap)
	}

	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	second.Fire()
	if got := p.Snapshot().Elapsed; got != 8 {
		t.Fatalf("resume must keep elapsed, got %d", got)
	}
}

// 停拍后残留的回调引用也不能推进状态
func TestStaleTickAfterPause(t *testing.T) {
	d, second, _ := newManualDriver("primary")
	p := NewPlayer(d)
	loadScript(p, "[time 01:00]正文。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	second.Fire()
	if err := p.Pause(); err != nil {
		t.Fatal(err)
	}

	// 直接调用回调，模拟已经在途的节拍
	p.secondTick()
	p.frameTick()
	snap := p.Snapshot()
	if snap.Elapsed != 1 || snap.ScrollOffset != 0 {
		t.Fatalf("stale tick must not mutate state, got %+v", snap)
	}
}

func TestRestart(t *testing.T) {
	d, second, frame := newManualDriver("primary")
	p := NewPlayer(d)
	loadScript(p, "[time 00:10]一。[time 00:10]二。")
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	for range 15 {
		second.Fire()
	}
	frame.Fire()
	if err := p.Restart(); err != nil {
		t.Fatal(err)
	}

	snap := p.Snapshot()
	if snap.Elapsed != 0 || snap.SegmentIndex != 0 || snap.ScrollOffset != 0 {
		t.Fatalf("restart must zero progress, got %+v", snap)
	}
	if snap.Status != StatusStopped {
		t.Fatalf("restart must return to stopped, got %s", snap.Status)
	}

	// 重开后可以再次播放，走表从零开始
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	second.Fire()
	if got := p.Snapshot(); got.Elapsed != 1 || got.SegmentIndex != 0 {
		t.Fatalf("play after restart should tick from zero, got %+v", got)
	}
}

func TestRenderTargetMirrors(t *testing.T) {
	d, second, _ := newManualDriver("primary")
	p := NewPlayer(d)
	loadScript(p, "[time 00:30]带 [note 重点] 的段落。")

	var last Snapshot
	p.Attach("t1", FuncTarget(func(s Snapshot) { last = s }))
	if err := p.Play(); err != nil {
		t.Fatal(err)
	}
	second.Fire()

	if last.Elapsed != 1 {
		t.Fatalf("target must receive the latest snapshot, got %+v", last)
	}
	if last.SegmentText != "带 重点 的段落。" {
		t.Fatalf("unexpected display text %q", last.SegmentText)
	}
	if len(last.NoteSpans) != 1 || last.NoteSpans[0].Content != "重点" {
		t.Fatalf("unexpected spans %+v", last.NoteSpans)
	}

	p.Detach("t1")
	second.Fire()
	if last.Elapsed != 1 {
		t.Fatal("detached target must stop receiving snapshots")
	}
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{-1, "-00:01"},
		{-65, "-01:05"},
	}
	for _, c := range cases {
		if got := FormatCountdown(c.in); got != c.want {
			t.Fatalf("FormatCountdown(%d)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestChanTargetDropsOldest(t *testing.T) {
	target := NewChanTarget(2)
	target.Update(Snapshot{Elapsed: 1})
	target.Update(Snapshot{Elapsed: 2})
	target.Update(Snapshot{Elapsed: 3})

	first := <-target.C()
	second := <-target.C()
	if first.Elapsed != 2 || second.Elapsed != 3 {
		t.Fatalf("expect oldest snapshot dropped, got %d %d", first.Elapsed, second.Elapsed)
	}
}
