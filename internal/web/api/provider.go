package api

import (
	"net/http"

	"github.com/ThisIsNSH/CueCard/internal/conf"
	"github.com/ThisIsNSH/CueCard/internal/core/event"
	"github.com/ThisIsNSH/CueCard/internal/core/player"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/ixugo/goddd/domain/uniqueid"
	"github.com/ixugo/goddd/domain/uniqueid/store/uniqueiddb"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/web"
	"gorm.io/gorm"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(Usecase), "*"),
	NewHTTPHandler,
	NewUniqueID,
	NewNoteStore, NewNoteCore, NewNoteAPI,
	NewEventCore, NewEventAPI,
	NewSettingCore, NewSettingAPI,
	NewDrivers, NewPlayerCore, NewPlayerAPI,
	NewScriptAPI,
	NewUserAPI,
)

type Usecase struct {
	Conf     *conf.Bootstrap
	DB       *gorm.DB
	UniqueID uniqueid.Core
	Player   *player.Player

	EventCore event.Core

	ScriptAPI  ScriptAPI
	PlayerAPI  PlayerAPI
	NoteAPI    NoteAPI
	SettingAPI SettingAPI
	EventAPI   EventAPI
	UserAPI    UserAPI
}

// NewHTTPHandler 生成Gin框架路由内容
func NewHTTPHandler(uc *Usecase) http.Handler {
	cfg := uc.Conf.Server
	if cfg.HTTP.JwtSecret == "" {
		uc.Conf.Server.HTTP.JwtSecret = orm.GenerateRandomString(32)
	}
	if !uc.Conf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	g := gin.New()
	// 如果启用了 Pprof，设置 Pprof 监控
	if cfg.HTTP.PProf.Enabled {
		web.SetupPProf(g, &cfg.HTTP.PProf.AccessIps)
	}

	setupRouter(g, uc) // 设置路由处理函数
	return g           // 返回配置好的 Gin 实例作为 http.Handler
}

// NewUniqueID 唯一 id 生成器
func NewUniqueID(db *gorm.DB) uniqueid.Core {
	return uniqueid.NewCore(uniqueiddb.NewDB(db).AutoMigrate(orm.GetEnabledAutoMigrate()), 5)
}
