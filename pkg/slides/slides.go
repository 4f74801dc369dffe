// Package slides 封装 Google Slides 只读接口，拉取演示文稿与演讲者备注
package slides

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://slides.googleapis.com/v1"

// 备注页中演讲者备注所在的占位符类型
const placeholderBody = "BODY"

type Config struct {
	URL     string // 留空使用官方地址
	Timeout time.Duration
}

type Engine struct {
	cfg Config
	cli *http.Client
}

func NewEngine() Engine {
	return Engine{
		cfg: Config{URL: defaultBaseURL},
		cli: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        30,
				MaxIdleConnsPerHost: 30,
				MaxConnsPerHost:     100,
			},
		},
	}
}

func (e Engine) SetConfig(cfg Config) Engine {
	if cfg.URL == "" {
		cfg.URL = defaultBaseURL
	}
	e.cfg = cfg
	if cfg.Timeout > 0 {
		e.cli.Timeout = cfg.Timeout
	}
	return e
}

// get 发送带 Bearer 令牌的 GET 请求
// 用法示例：e.get(ctx, "/presentations/xxx", token, &out)
func (e *Engine) get(ctx context.Context, path, token string, out any) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, e.cfg.URL+path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := e.cli.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slides api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetPresentation 拉取整个演示文稿，含各页的备注页
func (e *Engine) GetPresentation(ctx context.Context, presentationID, token string) (*Presentation, error) {
	var out Presentation
	if err := e.get(ctx, "/presentations/"+presentationID, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Presentation 接口返回结构的子集，只保留备注提取用到的字段
type Presentation struct {
	PresentationID string  `json:"presentationId"`
	Title          string  `json:"title"`
	Slides         []Slide `json:"slides"`
}

type Slide struct {
	ObjectID        string           `json:"objectId"`
	SlideProperties *SlideProperties `json:"slideProperties"`
}

type SlideProperties struct {
	NotesPage *NotesPage `json:"notesPage"`
}

type NotesPage struct {
	PageElements []PageElement `json:"pageElements"`
}

type PageElement struct {
	Shape *Shape `json:"shape"`
}

type Shape struct {
	Placeholder *Placeholder `json:"placeholder"`
	Text        *TextContent `json:"text"`
}

type Placeholder struct {
	Type string `json:"type"`
}

type TextContent struct {
	TextElements []TextElement `json:"textElements"`
}

type TextElement struct {
	TextRun *TextRun `json:"textRun"`
}

type TextRun struct {
	Content string `json:"content"`
}

// SpeakerNotes 从备注页的 BODY 占位符中拼出演讲者备注，首尾空白去掉
func (s Slide) SpeakerNotes() string {
	if s.SlideProperties == nil || s.SlideProperties.NotesPage == nil {
		return ""
	}
	var b strings.Builder
	for _, el := range s.SlideProperties.NotesPage.PageElements {
		shape := el.Shape
		if shape == nil || shape.Placeholder == nil || shape.Placeholder.Type != placeholderBody {
			continue
		}
		if shape.Text == nil {
			continue
		}
		for _, te := range shape.Text.TextElements {
			if te.TextRun != nil {
				b.WriteString(te.TextRun.Content)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
