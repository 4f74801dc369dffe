package setting

import (
	"context"

	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
)

// 展示参数的取值范围与默认值
const (
	minOpacity    = 0.1
	maxOpacity    = 1.0
	minMultiplier = 0.1
	maxMultiplier = 5.0
	minFontSize   = 12
	maxFontSize   = 72

	defaultFontSize   = 28
	defaultMultiplier = 1.0
	defaultOpacity    = 0.95
	defaultTheme      = "dark"
)

// Setting 提词面板展示参数，全局单行
type Setting struct {
	ID                    int      `gorm:"primaryKey" json:"-"`
	FontSize              int      `json:"font_size"`
	ScrollSpeedMultiplier float64  `json:"scroll_speed_multiplier"`
	DisplayOpacity        float64  `json:"display_opacity"` // 浮动窗不透明度 0.1 ~ 1.0
	Theme                 string   `gorm:"size:16" json:"theme"`
	UpdatedAt             orm.Time `json:"updated_at"`
}

// Default 首次读取时落库的默认参数
func Default() Setting {
	return Setting{
		ID:                    1,
		FontSize:              defaultFontSize,
		ScrollSpeedMultiplier: defaultMultiplier,
		DisplayOpacity:        defaultOpacity,
		Theme:                 defaultTheme,
	}
}

// Storer data persistence
type Storer interface {
	Setting() SettingStorer
}

// SettingStorer Instantiation interface
type SettingStorer interface {
	Get(context.Context, *Setting) error
	Edit(context.Context, *Setting, func(*Setting)) error
}

// Core business domain
type Core struct {
	store    Storer
	onChange func(Setting)
}

type Option func(*Core)

// WithOnChange 参数变更后回调，用于把新倍率推给播放器
func WithOnChange(fn func(Setting)) Option {
	return func(c *Core) {
		c.onChange = fn
	}
}

// NewCore create business domain
func NewCore(store Storer, opts ...Option) Core {
	c := Core{store: store}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// EditSettingInput 部分更新，nil 字段保持原值
type EditSettingInput struct {
	FontSize              *int     `json:"font_size"`
	ScrollSpeedMultiplier *float64 `json:"scroll_speed_multiplier"`
	DisplayOpacity        *float64 `json:"display_opacity"`
	Theme                 *string  `json:"theme"`
}

// GetSetting 读取展示参数，首次读取写入默认值
func (c Core) GetSetting(ctx context.Context) (*Setting, error) {
	var out Setting
	if err := c.store.Setting().Get(ctx, &out); err != nil {
		return nil, reason.ErrDB.Withf(`Get err[%s]`, err.Error())
	}
	return &out, nil
}

// EditSetting 更新展示参数，越界的值收拢到边界
func (c Core) EditSetting(ctx context.Context, in *EditSettingInput) (*Setting, error) {
	var out Setting
	if err := c.store.Setting().Edit(ctx, &out, func(s *Setting) {
		if in.FontSize != nil {
			s.FontSize = clampInt(*in.FontSize, minFontSize, maxFontSize)
		}
		if in.ScrollSpeedMultiplier != nil {
			s.ScrollSpeedMultiplier = clamp(*in.ScrollSpeedMultiplier, minMultiplier, maxMultiplier)
		}
		if in.DisplayOpacity != nil {
			s.DisplayOpacity = clamp(*in.DisplayOpacity, minOpacity, maxOpacity)
		}
		if in.Theme != nil && *in.Theme != "" {
			s.Theme = *in.Theme
		}
	}); err != nil {
		return nil, reason.ErrDB.Withf(`Edit err[%s]`, err.Error())
	}

	if c.onChange != nil {
		c.onChange(out)
	}
	return &out, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
