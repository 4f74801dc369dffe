package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ThisIsNSH/CueCard/internal/conf"
	"github.com/ThisIsNSH/CueCard/internal/core/bz"
	"github.com/ThisIsNSH/CueCard/internal/core/event"
	"github.com/ThisIsNSH/CueCard/internal/core/note"
	"github.com/ThisIsNSH/CueCard/internal/core/player"
	"github.com/ThisIsNSH/CueCard/internal/core/script"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/ixugo/goddd/pkg/web"
)

const (
	driverPrimary  = "primary"
	driverFloating = "floating"
)

// Drivers 常驻的两个驱动方，主窗口与悬浮窗
type Drivers struct {
	Primary  *player.Driver
	Floating *player.Driver
}

// NewDrivers 按配置的帧率创建节拍源
func NewDrivers(cfg *conf.Bootstrap) Drivers {
	frameInterval := time.Second / time.Duration(cfg.Player.FrameRate)
	return Drivers{
		Primary: player.NewDriver(driverPrimary,
			player.NewWallTicker(time.Second),
			player.NewWallTicker(frameInterval),
		),
		Floating: player.NewDriver(driverFloating,
			player.NewWallTicker(time.Second),
			player.NewWallTicker(frameInterval),
		),
	}
}

// NewPlayerCore 创建播放器，生命周期事件旁路落库。
// 每次进程启动分配一个会话 ID，串起同一场演讲的事件。
// 返回的清理函数在进程退出前撤掉节拍源。
func NewPlayerCore(cfg *conf.Bootstrap, drivers Drivers, eventCore event.Core, uni uniqueid.Core) (*player.Player, func()) {
	session := uni.UniqueID(bz.IDPrefixSession)
	var p *player.Player
	p = player.NewPlayer(drivers.Primary,
		player.WithBaseScrollRate(cfg.Player.BaseScrollRate),
		player.WithEventHook(func(kind string, state player.PlaybackState) {
			eventCore.Record(session, kind, p.DriverName(), string(state.Status), state.Elapsed, state.SegmentIndex)
		}),
	)
	return p, p.Close
}

// PlayerAPI 播放控制与快照推送
type PlayerAPI struct {
	player   *player.Player
	noteCore note.Core
	drivers  map[string]*player.Driver
	log      *slog.Logger
}

func NewPlayerAPI(p *player.Player, noteCore note.Core, drivers Drivers) PlayerAPI {
	return PlayerAPI{
		player:   p,
		noteCore: noteCore,
		drivers: map[string]*player.Driver{
			driverPrimary:  drivers.Primary,
			driverFloating: drivers.Floating,
		},
		log: slog.With("module", "player"),
	}
}

func registerPlayerAPI(r gin.IRouter, api PlayerAPI, handler ...gin.HandlerFunc) {
	// 快照与推流对悬浮窗开放，不要求登录
	r.GET("/player", web.WrapH(api.getSnapshot))
	r.GET("/player/events", api.streamEvents)

	group := r.Group("/player", handler...)
	group.POST("/load", web.WrapH(api.load))
	group.POST("/play", web.WrapH(api.play))
	group.POST("/pause", web.WrapH(api.pause))
	group.POST("/restart", web.WrapH(api.restart))
	group.POST("/handoff", web.WrapH(api.handoff))
	group.POST("/handback", web.WrapH(api.handback))
}

func (a PlayerAPI) getSnapshot(_ *gin.Context, _ *struct{}) (player.Snapshot, error) {
	return a.player.Snapshot(), nil
}

type loadPlayerInput struct {
	Text           string `json:"text"`
	PresentationID string `json:"presentation_id"`
	SlideID        string `json:"slide_id"`
}

// load 装载台词。正文留空时按演示文稿与幻灯片取已保存的备注。
func (a PlayerAPI) load(c *gin.Context, in *loadPlayerInput) (player.Snapshot, error) {
	text := in.Text
	if text == "" && in.PresentationID != "" && in.SlideID != "" {
		n, err := a.noteCore.GetSlideNotes(c.Request.Context(), in.PresentationID, in.SlideID)
		if err != nil {
			return player.Snapshot{}, err
		}
		text = n.Content
	}

	segments := script.Parse(text)
	if len(segments) == 0 {
		return player.Snapshot{}, reason.ErrBadRequest.Withf("script has no segments")
	}
	a.player.Load(segments)
	return a.player.Snapshot(), nil
}

func (a PlayerAPI) play(_ *gin.Context, _ *struct{}) (player.Snapshot, error) {
	if err := a.player.Play(); err != nil {
		return player.Snapshot{}, err
	}
	return a.player.Snapshot(), nil
}

func (a PlayerAPI) pause(_ *gin.Context, _ *struct{}) (player.Snapshot, error) {
	if err := a.player.Pause(); err != nil {
		return player.Snapshot{}, err
	}
	return a.player.Snapshot(), nil
}

func (a PlayerAPI) restart(_ *gin.Context, _ *struct{}) (player.Snapshot, error) {
	if err := a.player.Restart(); err != nil {
		return player.Snapshot{}, err
	}
	return a.player.Snapshot(), nil
}

type handoffInput struct {
	Target string `json:"target" binding:"required"` // primary / floating
}

// handoff 把驱动权交给指定窗口
func (a PlayerAPI) handoff(_ *gin.Context, in *handoffInput) (player.Snapshot, error) {
	driver, ok := a.drivers[normalizeDriverName(in.Target)]
	if !ok {
		return player.Snapshot{}, reason.ErrBadRequest.Withf("unknown driver %q", in.Target)
	}
	if err := a.player.Handoff(driver); err != nil {
		return player.Snapshot{}, err
	}
	return a.player.Snapshot(), nil
}

func (a PlayerAPI) handback(_ *gin.Context, _ *struct{}) (player.Snapshot, error) {
	if err := a.player.Handback(); err != nil {
		return player.Snapshot{}, err
	}
	return a.player.Snapshot(), nil
}

// streamEvents SSE 推送播放快照。悬浮窗断线时自动把驱动权
// 交还主窗口，避免没人走表。
func (a PlayerAPI) streamEvents(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	surface := c.DefaultQuery("surface", driverPrimary)
	id := surface + "-" + uuid.NewString()

	target := player.NewChanTarget(16)
	a.player.Attach(id, target)
	defer func() {
		a.player.Detach(id)
		if surface == driverFloating && a.player.DriverName() == driverFloating {
			if err := a.player.Handback(); err != nil {
				a.log.Warn("悬浮窗断线交还失败", "err", err)
			}
		}
	}()

	a.log.Info("render target attached", "id", id)
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			a.log.Info("render target detached", "id", id)
			return
		case snap := <-target.C():
			data, err := json.Marshal(snap)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: snapshot\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}

// normalizeDriverName 容错大小写与空白
func normalizeDriverName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
