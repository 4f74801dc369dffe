package player

import (
	"fmt"

	"github.com/ThisIsNSH/CueCard/internal/core/script"
)

// Status 播放状态
type Status string

const (
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// 播放器生命周期事件
const (
	EventPlay    = "play"
	EventPause   = "pause"
	EventRestart = "restart"
	EventHandoff = "handoff"
	EventClosed  = "closed"
)

// Snapshot 某一时刻播放状态的不可变快照，渲染目标只负责照搬展示
type Snapshot struct {
	Status        Status            `json:"status"`
	IsPlaying     bool              `json:"is_playing"`
	Elapsed       int               `json:"elapsed"`       // 累计播放秒数
	SegmentIndex  int               `json:"segment_index"` // 当前段落序号
	SegmentCount  int               `json:"segment_count"`
	SegmentText   string            `json:"segment_text"` // 当前段落的展示文本
	NoteSpans     []script.NoteSpan `json:"note_spans"`
	CountdownText string            `json:"countdown_text"` // 空串表示当前段落不计时
	Overtime      bool              `json:"overtime"`
	ScrollOffset  float64           `json:"scroll_offset"`
	Driver        string            `json:"driver"` // 当前驱动方
}

// PlaybackState 交接时移交的播放进度
type PlaybackState struct {
	Status       Status  `json:"status"`
	Elapsed      int     `json:"elapsed"`
	SegmentIndex int     `json:"segment_index"`
	ScrollOffset float64 `json:"scroll_offset"`
}

// FormatCountdown 把剩余秒数渲染为 MM:SS，负值表示超时，带 "-" 前缀
func FormatCountdown(remaining int) string {
	sign := ""
	if remaining < 0 {
		sign = "-"
		remaining = -remaining
	}
	return fmt.Sprintf("%s%02d:%02d", sign, remaining/60, remaining%60)
}
