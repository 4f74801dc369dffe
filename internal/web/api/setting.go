package api

import (
	"context"
	"log/slog"

	"github.com/ThisIsNSH/CueCard/internal/core/player"
	"github.com/ThisIsNSH/CueCard/internal/core/setting"
	"github.com/ThisIsNSH/CueCard/internal/core/setting/store/settingdb"
	"github.com/gin-gonic/gin"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

// NewSettingCore 创建展示参数服务，参数变更实时推给播放器。
// 启动时把落库的倍率应用到播放器，重启后速度不回默认值。
func NewSettingCore(db *gorm.DB, p *player.Player) setting.Core {
	store := settingdb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate())
	core := setting.NewCore(store, setting.WithOnChange(func(s setting.Setting) {
		p.SetSpeedMultiplier(s.ScrollSpeedMultiplier)
	}))

	if s, err := core.GetSetting(context.Background()); err == nil {
		p.SetSpeedMultiplier(s.ScrollSpeedMultiplier)
	} else {
		slog.Error("读取展示参数失败", "err", err)
	}
	return core
}

// SettingAPI 展示参数查询与修改
type SettingAPI struct {
	settingCore setting.Core
}

func NewSettingAPI(core setting.Core) SettingAPI {
	return SettingAPI{settingCore: core}
}

func registerSettingAPI(r gin.IRouter, api SettingAPI, handler ...gin.HandlerFunc) {
	group := r.Group("/settings", handler...)
	group.GET("", web.WrapH(api.getSetting))
	group.PUT("", web.WrapH(api.editSetting))
}

func (a SettingAPI) getSetting(c *gin.Context, _ *struct{}) (*setting.Setting, error) {
	return a.settingCore.GetSetting(c.Request.Context())
}

func (a SettingAPI) editSetting(c *gin.Context, in *setting.EditSettingInput) (*setting.Setting, error) {
	return a.settingCore.EditSetting(c.Request.Context(), in)
}
