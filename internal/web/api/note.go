package api

import (
	"log/slog"
	"time"

	"github.com/ThisIsNSH/CueCard/internal/conf"
	"github.com/ThisIsNSH/CueCard/internal/core/note"
	"github.com/ThisIsNSH/CueCard/internal/core/note/store/notecache"
	"github.com/ThisIsNSH/CueCard/internal/core/note/store/notedb"
	"github.com/ThisIsNSH/CueCard/pkg/slides"
	"github.com/gin-gonic/gin"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

// NoteAPI 为 http 提供业务方法
type NoteAPI struct {
	noteCore note.Core
	log      *slog.Logger
	limiter  func(identifier string) bool
}

// NewNoteStore 创建备注存储层，数据库外挂写透缓存
func NewNoteStore(db *gorm.DB) note.Storer {
	return notecache.NewCache(notedb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()))
}

// NewNoteCore 创建备注核心服务
func NewNoteCore(store note.Storer, uni uniqueid.Core, cfg *conf.Bootstrap) note.Core {
	engine := slides.NewEngine().SetConfig(slides.Config{
		URL:     cfg.Slides.BaseURL,
		Timeout: cfg.Slides.Timeout.Duration(),
	})
	return note.NewCore(store, uni, note.WithSlidesEngine(engine))
}

func NewNoteAPI(core note.Core) NoteAPI {
	return NoteAPI{
		noteCore: core,
		log:      slog.With("hook", "slides"),
		limiter:  web.IDRateLimiter(5, 10, 3*time.Minute),
	}
}

func registerNoteAPI(r gin.IRouter, api NoteAPI, handler ...gin.HandlerFunc) {
	// 浏览器扩展翻页上报，不要求登录
	r.POST("/slides", web.WrapH(api.onSlideChange))

	slidesGroup := r.Group("/slides", handler...)
	slidesGroup.POST("/prefetch", web.WrapH(api.prefetch))

	group := r.Group("/notes", handler...)
	group.GET("", web.WrapH(api.findNotes))
	group.GET("/:id", web.WrapH(api.getNote))
	group.DELETE("/:id", web.WrapH(api.delNote))
}

// slideChangeOutput 翻页上报响应体
type slideChangeOutput struct {
	Received bool   `json:"received"`
	Notes    string `json:"notes"` // 该幻灯片当前生效的备注
}

// onSlideChange 接收扩展上报的幻灯片切换，落库并回传备注
func (a NoteAPI) onSlideChange(c *gin.Context, in *note.SaveSlideNotesInput) (slideChangeOutput, error) {
	if !a.limiter(in.PresentationID) {
		return slideChangeOutput{Received: false}, nil
	}
	ctx := c.Request.Context()

	n, err := a.noteCore.SaveSlideNotes(ctx, in)
	if err != nil {
		return slideChangeOutput{}, err
	}
	a.log.InfoContext(ctx, "slide change",
		"presentation_id", in.PresentationID,
		"slide_id", in.SlideID,
		"slide_number", in.SlideNumber,
		"has_notes", n.Content != "",
	)
	return slideChangeOutput{Received: true, Notes: n.Content}, nil
}

// prefetch 一次拉取整篇演示文稿的备注
func (a NoteAPI) prefetch(c *gin.Context, in *note.PrefetchInput) (*note.PrefetchOutput, error) {
	return a.noteCore.PrefetchPresentation(c.Request.Context(), in)
}

// findNotes 分页查询备注列表
func (a NoteAPI) findNotes(c *gin.Context, in *note.FindNotesInput) (any, error) {
	items, total, err := a.noteCore.FindNotes(c.Request.Context(), in)
	return gin.H{"items": items, "total": total}, err
}

func (a NoteAPI) getNote(c *gin.Context, _ *struct{}) (*note.Note, error) {
	return a.noteCore.GetNote(c.Request.Context(), c.Param("id"))
}

func (a NoteAPI) delNote(c *gin.Context, _ *struct{}) (*note.Note, error) {
	return a.noteCore.DelNote(c.Request.Context(), c.Param("id"))
}
