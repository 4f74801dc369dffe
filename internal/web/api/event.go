package api

import (
	"github.com/ThisIsNSH/CueCard/internal/core/event"
	"github.com/ThisIsNSH/CueCard/internal/core/event/store/eventdb"
	"github.com/gin-gonic/gin"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

// NewEventCore 创建生命周期事件服务
func NewEventCore(db *gorm.DB, uni uniqueid.Core) event.Core {
	store := eventdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate())
	return event.NewCore(store, uni)
}

// EventAPI 生命周期事件查询
type EventAPI struct {
	eventCore event.Core
}

func NewEventAPI(core event.Core) EventAPI {
	return EventAPI{eventCore: core}
}

func registerEventAPI(r gin.IRouter, api EventAPI, handler ...gin.HandlerFunc) {
	group := r.Group("/events", handler...)
	group.GET("", web.WrapH(api.findEvents))
}

func (a EventAPI) findEvents(c *gin.Context, in *event.FindEventsInput) (any, error) {
	items, total, err := a.eventCore.FindEvents(c.Request.Context(), in)
	return gin.H{"items": items, "total": total}, err
}
