package main

import (
	"context"
	"expvar"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ThisIsNSH/CueCard/internal/app"
	"github.com/ThisIsNSH/CueCard/internal/conf"
	"github.com/ThisIsNSH/CueCard/pkg/logger"
	"github.com/ixugo/goddd/pkg/system"
)

// 编译时通过 ldflags 注入
var (
	buildVersion = "dev"
	gitBranch    = "unknown"
	gitHash      = "unknown"
)

func main() {
	configPath := flag.String("conf", filepath.Join(system.Getwd(), "configs", "config.toml"), "配置文件路径")
	flag.Parse()

	expvar.NewString("git_branch").Set(gitBranch)
	expvar.NewString("git_hash").Set(gitHash)

	bc, err := conf.SetupConfig(*configPath)
	if err != nil {
		slog.Error("读取配置失败", "err", err)
		os.Exit(1)
	}
	bc.BuildVersion = buildVersion

	cleanLog, err := logger.SetupSlog(logger.Config{
		Dir:          bc.Log.Dir,
		Level:        bc.Log.Level,
		MaxAge:       bc.Log.MaxAge.Duration(),
		RotationTime: bc.Log.RotationTime.Duration(),
		Debug:        bc.Debug,
	})
	if err != nil {
		slog.Error("初始化日志失败", "err", err)
		os.Exit(1)
	}
	defer cleanLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, bc); err != nil {
		slog.Error("服务退出", "err", err)
		os.Exit(1)
	}
	slog.Info("bye")
}
