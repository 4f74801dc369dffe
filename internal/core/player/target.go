package player

// RenderTarget 渲染目标，只镜像快照，不自己计时。
// Update 在播放器锁内调用，实现必须立即返回，不允许阻塞。
type RenderTarget interface {
	Update(Snapshot)
}

// FuncTarget 函数适配器
type FuncTarget func(Snapshot)

func (f FuncTarget) Update(s Snapshot) { f(s) }

// ChanTarget 带缓冲通道的渲染目标，写满时丢弃最旧的快照，
// 消费方只关心最新状态，丢帧无损语义
type ChanTarget struct {
	ch chan Snapshot
}

func NewChanTarget(size int) *ChanTarget {
	if size <= 0 {
		size = 16
	}
	return &ChanTarget{ch: make(chan Snapshot, size)}
}

func (t *ChanTarget) Update(s Snapshot) {
	select {
	case t.ch <- s:
		return
	default:
	}
	select {
	case <-t.ch:
	default:
	}
	select {
	case t.ch <- s:
	default:
	}
}

// C 供消费方读取快照
func (t *ChanTarget) C() <-chan Snapshot { return t.ch }
