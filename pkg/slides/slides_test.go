package slides

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const presentationFixture = `{
  "presentationId": "abc123",
  "title": "季度汇报",
  "slides": [
    {
      "objectId": "p1",
      "slideProperties": {
        "notesPage": {
          "pageElements": [
            {
              "shape": {
                "placeholder": {"type": "TITLE"},
                "text": {"textElements": [{"textRun": {"content": "标题占位符，不是备注"}}]}
              }
            },
            {
              "shape": {
                "placeholder": {"type": "BODY"},
                "text": {"textElements": [
                  {"textRun": {"content": "第一句。"}},
                  {"textRun": {"content": "第二句。\n"}}
                ]}
              }
            }
          ]
        }
      }
    },
    {"objectId": "p2"}
  ]
}`

func TestGetPresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/presentations/abc123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("unexpected authorization %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(presentationFixture))
	}))
	defer srv.Close()

	engine := NewEngine().SetConfig(Config{URL: srv.URL})
	p, err := engine.GetPresentation(context.Background(), "abc123", "token-1")
	if err != nil {
		t.Fatal(err)
	}
	if p.PresentationID != "abc123" || len(p.Slides) != 2 {
		t.Fatalf("unexpected presentation %+v", p)
	}

	// 备注只取 BODY 占位符，多个 textRun 依次拼接并去掉首尾空白
	if got := p.Slides[0].SpeakerNotes(); got != "第一句。第二句。" {
		t.Fatalf("unexpected notes %q", got)
	}
	// 没有备注页的幻灯片返回空串
	if got := p.Slides[1].SpeakerNotes(); got != "" {
		t.Fatalf("expect empty notes, got %q", got)
	}
}

func TestGetPresentationHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	engine := NewEngine().SetConfig(Config{URL: srv.URL})
	if _, err := engine.GetPresentation(context.Background(), "abc123", "bad"); err == nil {
		t.Fatal("expect error on non-200 status")
	}
}
