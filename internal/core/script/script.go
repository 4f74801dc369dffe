package script

import "strings"

// Segment 一段台词
// Duration 为 nil 表示该段不计时，倒计时与自动推进都会跳过它
type Segment struct {
	ID       int    `json:"id"`       // 段落序号，从 0 开始
	Text     string `json:"text"`     // 去除计时标记后的文本，保留 note 标记
	Duration *int   `json:"duration"` // 时长（秒），nil 表示不计时
	StartAt  int    `json:"start_at"` // 在时间轴上的起点（秒）
}

// TimelineSummary 时间轴概览
type TimelineSummary struct {
	HasTiming     bool `json:"has_timing"`     // 是否存在计时段落
	TotalDuration *int `json:"total_duration"` // 总时长，仅当所有段落都计时才有值
}

// Parse 从左到右扫描文本，按计时标记切分段落。
// 首个计时标记之前的文本是一个不计时段落；每个标记声明的时长
// 作用于它后面直到下一个标记（或文本末尾）的那段文本。
// 段落起点只累加此前已生效的计时段时长，不计时段落不占用时间轴。
// 空白段落（标记之间没有实际内容）直接丢弃，其声明的时长也不累加。
// 纯函数，重复解析同一文本结果一致。
func Parse(text string) []Segment {
	marks := timeMarkerRe.FindAllStringSubmatchIndex(text, -1)
	segments := make([]Segment, 0, len(marks)+1)
	startAt := 0

	flush := func(raw string, dur *int) {
		content := strings.TrimSpace(raw)
		if content == "" {
			return
		}
		segments = append(segments, Segment{
			ID:       len(segments),
			Text:     content,
			Duration: dur,
			StartAt:  startAt,
		})
		if dur != nil {
			startAt += *dur
		}
	}

	prev := 0
	var pending *int
	for _, m := range marks {
		flush(text[prev:m[0]], pending)
		d := markerSeconds(text[m[2]:m[3]], text[m[4]:m[5]])
		pending = &d
		prev = m[1]
	}
	flush(text[prev:], pending)
	return segments
}

// Summarize 汇总段落时间轴
func Summarize(segments []Segment) TimelineSummary {
	var out TimelineSummary
	total := 0
	allTimed := len(segments) > 0
	for _, s := range segments {
		if s.Duration == nil {
			allTimed = false
			continue
		}
		out.HasTiming = true
		total += *s.Duration
	}
	if allTimed {
		out.TotalDuration = &total
	}
	return out
}
