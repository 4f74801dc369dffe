package conf

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Bootstrap 应用配置
type Bootstrap struct {
	ConfigPath   string `toml:"-"`
	BuildVersion string `toml:"-"`
	Debug        bool   `toml:"debug"`

	Server Server `toml:"server"`
	Data   Data   `toml:"data"`
	Player Player `toml:"player"`
	Slides Slides `toml:"slides"`
	Log    Log    `toml:"log"`
}

type Server struct {
	HTTP     HTTP   `toml:"http"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type HTTP struct {
	Port      int    `toml:"port"`
	JwtSecret string `toml:"jwt_secret"`
	PProf     PProf  `toml:"pprof"`
}

type PProf struct {
	Enabled   bool     `toml:"enabled"`
	AccessIps []string `toml:"access_ips"`
}

type Data struct {
	Database Database `toml:"database"`
}

type Database struct {
	Dsn             string   `toml:"dsn"`
	MaxIdleConns    int      `toml:"max_idle_conns"`
	MaxOpenConns    int      `toml:"max_open_conns"`
	ConnMaxLifetime Duration `toml:"conn_max_lifetime"`
	SlowThreshold   Duration `toml:"slow_threshold"`
}

// Player 播放时钟参数
type Player struct {
	FrameRate       int     `toml:"frame_rate"`        // 帧针频率（每秒）
	BaseScrollRate  float64 `toml:"base_scroll_rate"`  // 每帧基础滚动量（像素）
	EventRetainDays int     `toml:"event_retain_days"` // 生命周期事件保留天数，0 关闭清理
}

// Slides Google Slides 接口参数
type Slides struct {
	BaseURL string   `toml:"base_url"` // 留空使用官方地址
	Timeout Duration `toml:"timeout"`
}

type Log struct {
	Dir          string   `toml:"dir"`
	Level        string   `toml:"level"` // debug / info / warn / error
	MaxAge       Duration `toml:"max_age"`
	RotationTime Duration `toml:"rotation_time"`
}

// Duration 支持 "30s"、"5m" 这类写法的时长
type Duration time.Duration

func (d Duration) Duration() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// SetupConfig 读取配置文件，不存在时生成默认配置
func SetupConfig(path string) (*Bootstrap, error) {
	var c Bootstrap
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		c.setDefault()
		c.ConfigPath = path
		if err := WriteConfig(&c, path); err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.setDefault()
	c.ConfigPath = path
	return &c, nil
}

// WriteConfig 把当前配置持久化回文件
func WriteConfig(c *Bootstrap, path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// setDefault 填充未配置的字段
func (c *Bootstrap) setDefault() {
	if c.Server.HTTP.Port <= 0 {
		c.Server.HTTP.Port = 3642
	}
	if c.Data.Database.Dsn == "" {
		c.Data.Database.Dsn = filepath.Join("configs", "data.db")
	}
	if c.Data.Database.MaxIdleConns <= 0 {
		c.Data.Database.MaxIdleConns = 10
	}
	if c.Data.Database.MaxOpenConns <= 0 {
		c.Data.Database.MaxOpenConns = 50
	}
	if c.Data.Database.ConnMaxLifetime <= 0 {
		c.Data.Database.ConnMaxLifetime = Duration(6 * time.Hour)
	}
	if c.Data.Database.SlowThreshold <= 0 {
		c.Data.Database.SlowThreshold = Duration(200 * time.Millisecond)
	}
	if c.Player.FrameRate <= 0 {
		c.Player.FrameRate = 30
	}
	if c.Player.BaseScrollRate <= 0 {
		c.Player.BaseScrollRate = 1.0
	}
	if c.Player.EventRetainDays == 0 {
		c.Player.EventRetainDays = 30
	}
	if c.Slides.Timeout <= 0 {
		c.Slides.Timeout = Duration(10 * time.Second)
	}
	if c.Log.Dir == "" {
		c.Log.Dir = filepath.Join("configs", "logs")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = Duration(7 * 24 * time.Hour)
	}
	if c.Log.RotationTime <= 0 {
		c.Log.RotationTime = Duration(24 * time.Hour)
	}
}
