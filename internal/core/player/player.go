package player

import (
	"sync"

	"github.com/ThisIsNSH/CueCard/internal/core/script"
	"github.com/ixugo/goddd/pkg/conc"
	"github.com/ixugo/goddd/pkg/reason"
)

const defaultBaseScrollRate = 1.0

// Driver 一组节拍源（秒针 + 帧针），代表一个驱动方。
// 整个系统同一时刻最多一个 Driver 在驱动播放器。
type Driver struct {
	name   string
	second TickSource
	frame  TickSource
}

// NewDriver second 以 1Hz 推进秒针，frame 按刷新频率推进滚动
func NewDriver(name string, second, frame TickSource) *Driver {
	return &Driver{name: name, second: second, frame: frame}
}

func (d *Driver) Name() string { return d.name }

type Option func(*Player)

// WithBaseScrollRate 每帧基础滚动量（像素）
func WithBaseScrollRate(rate float64) Option {
	return func(p *Player) {
		if rate > 0 {
			p.baseRate = rate
		}
	}
}

// WithEventHook 注入生命周期事件回调
func WithEventHook(fn func(kind string, state PlaybackState)) Option {
	return func(p *Player) {
		p.onEvent = fn
	}
}

// Player 播放时钟状态机。
// ctl 串行化控制操作（播放、暂停、重开、交接），
// mu 保护节拍回调读写的播放状态。控制操作在停掉节拍源时
// 不得持有 mu，否则会和等待 mu 的在途回调互相等死。
type Player struct {
	ctl sync.Mutex
	mu  sync.Mutex

	segments []script.Segment
	displays []string            // 预先算好的各段展示文本
	spans    [][]script.NoteSpan // 与 displays 对应的重点区间

	status  Status
	elapsed int
	index   int
	scroll  float64

	baseRate   float64
	multiplier float64

	primary *Driver
	driver  *Driver

	targets *conc.Map[string, RenderTarget]
	onEvent func(kind string, state PlaybackState)
}

// NewPlayer primary 为常驻的主驱动方，交还播放权时回到它
func NewPlayer(primary *Driver, opts ...Option) *Player {
	p := Player{
		status:     StatusStopped,
		baseRate:   defaultBaseScrollRate,
		multiplier: 1,
		primary:    primary,
		driver:     primary,
		targets:    conc.NewMap[string, RenderTarget](),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return &p
}

// Load 装载段落并回到停止态，正在播放时先停掉节拍源
func (p *Player) Load(segments []script.Segment) {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.haltDriver()

	displays := make([]string, len(segments))
	spans := make([][]script.NoteSpan, len(segments))
	for i, s := range segments {
		displays[i], spans[i] = script.Highlight(s.Text)
	}

	p.mu.Lock()
	p.segments = segments
	p.displays = displays
	p.spans = spans
	p.status = StatusStopped
	p.elapsed = 0
	p.index = 0
	p.scroll = 0
	p.publishLocked()
	p.mu.Unlock()
}

// Play 开始或恢复播放。没有任何段落时播放不可用。
func (p *Player) Play() error {
	p.ctl.Lock()
	defer p.ctl.Unlock()

	p.mu.Lock()
	if len(p.segments) == 0 {
		p.mu.Unlock()
		return reason.ErrBadRequest.Withf("no segments to play")
	}
	if p.status == StatusRunning {
		p.mu.Unlock()
		return nil
	}
	p.status = StatusRunning
	p.index = segmentIndexAt(p.segments, p.elapsed)
	p.publishLocked()
	state := p.stateLocked()
	p.mu.Unlock()

	p.driver.second.Start(p.secondTick)
	p.driver.frame.Start(p.frameTick)
	p.emit(EventPlay, state)
	return nil
}

// Pause 暂停。只翻转播放标志，进度原样保留。
func (p *Player) Pause() error {
	p.ctl.Lock()
	defer p.ctl.Unlock()

	p.mu.Lock()
	if p.status != StatusRunning {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	// 同步停掉节拍源，Stop 返回后不会再有回调进来
	p.driver.second.Stop()
	p.driver.frame.Stop()

	p.mu.Lock()
	p.status = StatusPaused
	p.publishLocked()
	state := p.stateLocked()
	p.mu.Unlock()

	p.emit(EventPause, state)
	return nil
}

// Restart 任意状态回到停止态，进度清零
func (p *Player) Restart() error {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.haltDriver()

	p.mu.Lock()
	p.status = StatusStopped
	p.elapsed = 0
	p.index = 0
	p.scroll = 0
	p.publishLocked()
	state := p.stateLocked()
	p.mu.Unlock()

	p.emit(EventRestart, state)
	return nil
}

// Handoff 把驱动权交给 to。先同步撤掉现任驱动方的节拍源，
// 再移交进度，避免两边各自走表把秒数记重。
func (p *Player) Handoff(to *Driver) error {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	if to == nil {
		return reason.ErrBadRequest.Withf("handoff target is nil")
	}
	if to == p.driver {
		return nil
	}

	running := p.haltDriver()

	p.mu.Lock()
	p.driver = to
	p.publishLocked()
	state := p.stateLocked()
	p.mu.Unlock()

	if running {
		to.second.Start(p.secondTick)
		to.frame.Start(p.frameTick)
	}

	p.emit(EventHandoff, state)
	return nil
}

// Handback 把驱动权交还常驻主驱动方
func (p *Player) Handback() error {
	return p.Handoff(p.primary)
}

// Close 停止播放并撤掉节拍源，进程退出前调用
func (p *Player) Close() {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.haltDriver()

	p.mu.Lock()
	p.status = StatusStopped
	state := p.stateLocked()
	p.mu.Unlock()
	p.emit(EventClosed, state)
}

// haltDriver 撤掉正在走表的节拍源，返回撤之前是否在播放。
// 必须在 ctl 内、且不持有 mu 时调用。
func (p *Player) haltDriver() bool {
	p.mu.Lock()
	running := p.status == StatusRunning
	p.mu.Unlock()
	if running {
		p.driver.second.Stop()
		p.driver.frame.Stop()
	}
	return running
}

// Attach 挂上渲染目标并立刻推一帧当前快照
func (p *Player) Attach(id string, target RenderTarget) {
	p.targets.Store(id, target)
	target.Update(p.Snapshot())
}

func (p *Player) Detach(id string) {
	p.targets.Delete(id)
}

// SetSpeedMultiplier 调整滚动速度倍率，下一帧生效
func (p *Player) SetSpeedMultiplier(m float64) {
	if m <= 0 {
		return
	}
	p.mu.Lock()
	p.multiplier = m
	p.mu.Unlock()
}

func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Player) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// DriverName 当前驱动方名称
func (p *Player) DriverName() string {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	return p.driver.Name()
}

// secondTick 秒针回调。先累加秒数，再由绝对秒数重算段落序号
// 与倒计时，不在派生值上做增量，走表漂移下一秒即自愈。
func (p *Player) secondTick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusRunning {
		return
	}
	p.elapsed++
	idx := segmentIndexAt(p.segments, p.elapsed)
	if idx != p.index {
		p.index = idx
		p.scroll = 0
	}
	p.publishLocked()
}

// frameTick 帧针回调，推进滚动偏移
func (p *Player) frameTick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status != StatusRunning {
		return
	}
	p.scroll += p.multiplier * p.baseRate
	p.publishLocked()
}

// segmentIndexAt 取起点不超过 elapsed 的最后一个段落，
// 到头后停在末段不回绕
func segmentIndexAt(segments []script.Segment, elapsed int) int {
	idx := 0
	for i, s := range segments {
		if s.StartAt <= elapsed {
			idx = i
		}
	}
	return idx
}

func (p *Player) snapshotLocked() Snapshot {
	s := Snapshot{
		Status:       p.status,
		IsPlaying:    p.status == StatusRunning,
		Elapsed:      p.elapsed,
		SegmentIndex: p.index,
		SegmentCount: len(p.segments),
		ScrollOffset: p.scroll,
		Driver:       p.driver.Name(),
	}
	if len(p.segments) == 0 {
		return s
	}
	seg := p.segments[p.index]
	s.SegmentText = p.displays[p.index]
	s.NoteSpans = p.spans[p.index]
	if seg.Duration != nil {
		remaining := *seg.Duration - (p.elapsed - seg.StartAt)
		s.CountdownText = FormatCountdown(remaining)
		s.Overtime = remaining < 0
	}
	return s
}

func (p *Player) stateLocked() PlaybackState {
	return PlaybackState{
		Status:       p.status,
		Elapsed:      p.elapsed,
		SegmentIndex: p.index,
		ScrollOffset: p.scroll,
	}
}

func (p *Player) publishLocked() {
	snap := p.snapshotLocked()
	p.targets.Range(func(_ string, t RenderTarget) bool {
		t.Update(snap)
		return true
	})
}

// emit 生命周期事件落库走旁路，不阻塞控制路径
func (p *Player) emit(kind string, state PlaybackState) {
	if p.onEvent == nil {
		return
	}
	go p.onEvent(kind, state)
}
