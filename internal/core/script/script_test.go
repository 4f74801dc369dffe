package script

import (
	"reflect"
	"testing"
)

func sec(n int) *int { return &n }

func TestParseTimedSegments(t *testing.T) {
	text := "[time 00:30] 开场白，欢迎各位。\n[time 01:00] 第一部分内容。"
	segments := Parse(text)
	if len(segments) != 2 {
		t.Fatalf("expect 2 segments, got %d", len(segments))
	}
	want := []Segment{
		{ID: 0, Text: "开场白，欢迎各位。", Duration: sec(30), StartAt: 0},
		{ID: 1, Text: "第一部分内容。", Duration: sec(60), StartAt: 30},
	}
	if !reflect.DeepEqual(segments, want) {
		t.Fatalf("segments mismatch\n got %+v\nwant %+v", segments, want)
	}
}

// 首个计时标记之前的文本是不计时段落，起点为 0，且不占用时间轴
func TestParseLeadingUntimed(t *testing.T) {
	segments := Parse("备注：检查麦克风。[time 00:45]正文开始。")
	if len(segments) != 2 {
		t.Fatalf("expect 2 segments, got %d", len(segments))
	}
	if segments[0].Duration != nil {
		t.Fatal("leading segment should be untimed")
	}
	if segments[0].StartAt != 0 || segments[1].StartAt != 0 {
		t.Fatalf("untimed segment must not consume the timeline: %d %d", segments[0].StartAt, segments[1].StartAt)
	}
	if *segments[1].Duration != 45 {
		t.Fatalf("expect 45s, got %d", *segments[1].Duration)
	}
}

func TestParseNoMarkers(t *testing.T) {
	segments := Parse("只有一段话，没有任何标记。")
	if len(segments) != 1 {
		t.Fatalf("expect 1 segment, got %d", len(segments))
	}
	if segments[0].Duration != nil || segments[0].StartAt != 0 {
		t.Fatalf("expect single untimed segment, got %+v", segments[0])
	}
}

func TestParseBlankInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		if got := Parse(text); len(got) != 0 {
			t.Fatalf("blank input %q should yield no segments, got %d", text, len(got))
		}
	}
}

// 不合语法的标记按普通文本保留，不报错
func TestParseMalformedMarkerStaysLiteral(t *testing.T) {
	for _, text := range []string{
		"[time 1:30] 分钟位只有一位。",
		"[time 00:3] 秒位只有一位。",
		"[time 0030] 缺冒号。",
		"[Time 00:30] 大小写不符。",
	} {
		segments := Parse(text)
		if len(segments) != 1 {
			t.Fatalf("%q: expect 1 segment, got %d", text, len(segments))
		}
		if segments[0].Duration != nil {
			t.Fatalf("%q: malformed marker must not declare duration", text)
		}
		if segments[0].Text != text {
			t.Fatalf("%q: marker text must stay literal, got %q", text, segments[0].Text)
		}
	}
}

// 相邻标记之间没有内容，空白段落连同其时长一起丢弃
func TestParseConsecutiveMarkers(t *testing.T) {
	segments := Parse("[time 00:30][time 00:40]只有这一段。")
	if len(segments) != 1 {
		t.Fatalf("expect 1 segment, got %d", len(segments))
	}
	if *segments[0].Duration != 40 || segments[0].StartAt != 0 {
		t.Fatalf("blank span duration must not accumulate: %+v", segments[0])
	}
}

func TestParseTrailingMarkerWithoutText(t *testing.T) {
	segments := Parse("[time 00:30]正文。[time 01:00]  ")
	if len(segments) != 1 {
		t.Fatalf("expect 1 segment, got %d", len(segments))
	}
	if segments[0].Text != "正文。" {
		t.Fatalf("unexpected text %q", segments[0].Text)
	}
}

func TestParseIdempotent(t *testing.T) {
	text := "开场。[time 00:30]第一段 [note 重点]。[time 02:05]第二段。"
	first := Parse(text)
	second := Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("parsing the same text twice must yield identical segments")
	}
}

func TestSummarize(t *testing.T) {
	allTimed := Parse("[time 00:30]a[time 01:00]b")
	s := Summarize(allTimed)
	if !s.HasTiming || s.TotalDuration == nil || *s.TotalDuration != 90 {
		t.Fatalf("expect total 90s, got %+v", s)
	}

	mixed := Parse("开场。[time 00:30]a")
	s = Summarize(mixed)
	if !s.HasTiming || s.TotalDuration != nil {
		t.Fatalf("mixed timeline must not declare a total, got %+v", s)
	}

	s = Summarize(nil)
	if s.HasTiming || s.TotalDuration != nil {
		t.Fatalf("empty timeline summary should be zero, got %+v", s)
	}
}
