package script

import "testing"

func TestHighlight(t *testing.T) {
	display, spans := Highlight("记得 [note 放慢语速] 再继续。")
	if display != "记得 放慢语速 再继续。" {
		t.Fatalf("unexpected display text %q", display)
	}
	if len(spans) != 1 {
		t.Fatalf("expect 1 span, got %d", len(spans))
	}
	got := spans[0]
	if got.Content != "放慢语速" {
		t.Fatalf("unexpected content %q", got.Content)
	}
	if display[got.Start:got.End] != got.Content {
		t.Fatalf("span [%d,%d) does not cover content in display text", got.Start, got.End)
	}
}

// 多处标记自左向右替换，区间按替换后的文本计算
func TestHighlightMultiple(t *testing.T) {
	display, spans := Highlight("[note 看镜头]中间文字[note 微笑]结尾")
	if display != "看镜头中间文字微笑结尾" {
		t.Fatalf("unexpected display text %q", display)
	}
	if len(spans) != 2 {
		t.Fatalf("expect 2 spans, got %d", len(spans))
	}
	for i, s := range spans {
		if display[s.Start:s.End] != s.Content {
			t.Fatalf("span %d [%d,%d) mismatch", i, s.Start, s.End)
		}
	}
}

func TestHighlightNoMarkers(t *testing.T) {
	display, spans := Highlight("没有标记的普通文本")
	if display != "没有标记的普通文本" || spans != nil {
		t.Fatalf("text without markers must pass through unchanged, got %q %v", display, spans)
	}
}

// 未闭合或语法不符的标记保持原样
func TestHighlightMalformed(t *testing.T) {
	display, spans := Highlight("[note 未闭合")
	if display != "[note 未闭合" || len(spans) != 0 {
		t.Fatalf("unclosed marker must stay literal, got %q", display)
	}
}

func TestHighlightEmptyContent(t *testing.T) {
	display, spans := Highlight("前[note ]后")
	if display != "前后" {
		t.Fatalf("unexpected display text %q", display)
	}
	if len(spans) != 1 || spans[0].Start != spans[0].End {
		t.Fatalf("empty note should produce an empty span, got %+v", spans)
	}
}
