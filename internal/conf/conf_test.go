package conf

import (
	"path/filepath"
	"testing"
	"time"
)

// 配置文件不存在时生成默认配置并落盘
func TestSetupConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	c, err := SetupConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.HTTP.Port != 3642 {
		t.Fatalf("unexpected default port %d", c.Server.HTTP.Port)
	}
	if c.Player.FrameRate != 30 || c.Player.BaseScrollRate != 1.0 {
		t.Fatalf("unexpected player defaults %+v", c.Player)
	}

	// 再次读取应解析出同样的内容
	again, err := SetupConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Data.Database.Dsn != c.Data.Database.Dsn {
		t.Fatalf("reload mismatch: %q vs %q", again.Data.Database.Dsn, c.Data.Database.Dsn)
	}
}

func TestWriteConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	c, err := SetupConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	c.Server.Username = "speaker"
	c.Slides.Timeout = Duration(3 * time.Second)
	if err := WriteConfig(c, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := SetupConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Username != "speaker" {
		t.Fatalf("unexpected username %q", loaded.Server.Username)
	}
	if loaded.Slides.Timeout.Duration() != 3*time.Second {
		t.Fatalf("unexpected timeout %v", loaded.Slides.Timeout.Duration())
	}
}
