package statapi

import (
	"github.com/ThisIsNSH/CueCard/plugin/stat"
	"github.com/gin-gonic/gin"
	"github.com/ixugo/goddd/pkg/web"
)

// Register 注册运行状态查询接口
func Register(r gin.IRouter, handler ...gin.HandlerFunc) {
	group := r.Group("/app", handler...)
	group.GET("/stat", web.WrapH(getStat))
}

func getStat(_ *gin.Context, _ *struct{}) (gin.H, error) {
	return gin.H{"items": stat.Latest()}, nil
}
