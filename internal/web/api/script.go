package api

import (
	"github.com/ThisIsNSH/CueCard/internal/core/script"
	"github.com/gin-gonic/gin"
	"github.com/ixugo/goddd/pkg/web"
)

// ScriptAPI 台词解析预览，无状态
type ScriptAPI struct{}

func NewScriptAPI() ScriptAPI {
	return ScriptAPI{}
}

func registerScriptAPI(r gin.IRouter, api ScriptAPI, handler ...gin.HandlerFunc) {
	group := r.Group("/script", handler...)
	group.POST("/parse", web.WrapH(api.parseScript))
}

type parseScriptInput struct {
	Text string `json:"text"`
}

// parsedSegment 解析结果中附带展示文本与重点区间
type parsedSegment struct {
	ID        int               `json:"id"`
	Text      string            `json:"text"`
	Display   string            `json:"display"`
	NoteSpans []script.NoteSpan `json:"note_spans"`
	Duration  *int              `json:"duration"`
	StartAt   int               `json:"start_at"`
}

type parseScriptOutput struct {
	Segments []parsedSegment        `json:"segments"`
	Summary  script.TimelineSummary `json:"summary"`
}

// parseScript 预览台词解析结果，不装载到播放器
func (a ScriptAPI) parseScript(_ *gin.Context, in *parseScriptInput) (parseScriptOutput, error) {
	segments := script.Parse(in.Text)
	out := parseScriptOutput{
		Segments: make([]parsedSegment, 0, len(segments)),
		Summary:  script.Summarize(segments),
	}
	for _, s := range segments {
		display, spans := script.Highlight(s.Text)
		out.Segments = append(out.Segments, parsedSegment{
			ID:        s.ID,
			Text:      s.Text,
			Display:   display,
			NoteSpans: spans,
			Duration:  s.Duration,
			StartAt:   s.StartAt,
		})
	}
	return out, nil
}
