package script

import "strings"

// NoteSpan 展示文本中一处提词重点的区间，[Start, End) 为字节偏移
type NoteSpan struct {
	Content string `json:"content"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// Highlight 把文本中的 [note 内容] 标记替换为其内容，
// 并返回每处内容在替换后文本中的区间。
// 匹配不重叠不嵌套，自左向右先到先得；区间偏移按替换后的文本计算。
func Highlight(text string) (string, []NoteSpan) {
	marks := noteMarkerRe.FindAllStringSubmatchIndex(text, -1)
	if len(marks) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	spans := make([]NoteSpan, 0, len(marks))
	prev := 0
	for _, m := range marks {
		b.WriteString(text[prev:m[0]])
		start := b.Len()
		content := text[m[2]:m[3]]
		b.WriteString(content)
		spans = append(spans, NoteSpan{Content: content, Start: start, End: b.Len()})
		prev = m[1]
	}
	b.WriteString(text[prev:])
	return b.String(), spans
}
