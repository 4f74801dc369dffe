// Package logger 把默认 slog 挂到 zap 内核上，文件按天滚动
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Dir          string
	Level        string // debug / info / warn / error
	MaxAge       time.Duration
	RotationTime time.Duration
	Debug        bool // 开启后同时输出彩色控制台日志
}

// SetupSlog 初始化全局日志，返回收尾函数
func SetupSlog(cfg Config) (func(), error) {
	level := parseLevel(cfg.Level)

	writer, err := rotatelogs.New(
		filepath.Join(cfg.Dir, "app.%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(cfg.Dir, "app.log")),
		rotatelogs.WithMaxAge(cfg.MaxAge),
		rotatelogs.WithRotationTime(cfg.RotationTime),
	)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(writer), level),
	}
	if cfg.Debug {
		consoleCfg := zap.NewDevelopmentEncoderConfig()
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(os.Stdout), level))
	}

	lg := zap.New(zapcore.NewTee(cores...))
	slog.SetDefault(slog.New(zapslog.NewHandler(lg.Core())))

	return func() {
		_ = lg.Sync()
		_ = writer.Close()
	}, nil
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
