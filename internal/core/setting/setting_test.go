package setting

import (
	"context"
	"testing"
)

type memStore struct {
	s Setting
}

func (m *memStore) Setting() SettingStorer { return m }

func (m *memStore) Get(_ context.Context, out *Setting) error {
	if m.s.ID == 0 {
		m.s = Default()
	}
	*out = m.s
	return nil
}

func (m *memStore) Edit(_ context.Context, out *Setting, changeFn func(*Setting)) error {
	if m.s.ID == 0 {
		m.s = Default()
	}
	changeFn(&m.s)
	*out = m.s
	return nil
}

func TestGetSettingDefaults(t *testing.T) {
	c := NewCore(&memStore{})
	s, err := c.GetSetting(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.FontSize != defaultFontSize || s.ScrollSpeedMultiplier != defaultMultiplier {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

// 越界参数收拢到边界，不报错
func TestEditSettingClamps(t *testing.T) {
	c := NewCore(&memStore{})
	opacity := 2.0
	multiplier := 0.01
	fontSize := 200
	s, err := c.EditSetting(context.Background(), &EditSettingInput{
		DisplayOpacity:        &opacity,
		ScrollSpeedMultiplier: &multiplier,
		FontSize:              &fontSize,
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.DisplayOpacity != maxOpacity {
		t.Fatalf("opacity must clamp to %v, got %v", maxOpacity, s.DisplayOpacity)
	}
	if s.ScrollSpeedMultiplier != minMultiplier {
		t.Fatalf("multiplier must clamp to %v, got %v", minMultiplier, s.ScrollSpeedMultiplier)
	}
	if s.FontSize != maxFontSize {
		t.Fatalf("font size must clamp to %d, got %d", maxFontSize, s.FontSize)
	}
}

// 未提供的字段保持原值，变更后回调拿到新参数
func TestEditSettingPartialAndHook(t *testing.T) {
	var pushed *Setting
	c := NewCore(&memStore{}, WithOnChange(func(s Setting) { pushed = &s }))

	multiplier := 2.5
	s, err := c.EditSetting(context.Background(), &EditSettingInput{ScrollSpeedMultiplier: &multiplier})
	if err != nil {
		t.Fatal(err)
	}
	if s.ScrollSpeedMultiplier != 2.5 {
		t.Fatalf("expect multiplier 2.5, got %v", s.ScrollSpeedMultiplier)
	}
	if s.FontSize != defaultFontSize || s.Theme != defaultTheme {
		t.Fatalf("untouched fields must keep defaults, got %+v", s)
	}
	if pushed == nil || pushed.ScrollSpeedMultiplier != 2.5 {
		t.Fatalf("change hook must receive the new setting, got %+v", pushed)
	}
}
