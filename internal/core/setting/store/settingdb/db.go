package settingdb

import (
	"context"

	"github.com/ThisIsNSH/CueCard/internal/core/setting"
	"gorm.io/gorm"
)

var _ setting.Storer = DB{}

type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) DB {
	return DB{db: db}
}

// AutoMigrate 按开关决定是否建表
func (d DB) AutoMigrate(enabled bool) DB {
	if !enabled {
		return d
	}
	if err := d.db.AutoMigrate(new(setting.Setting)); err != nil {
		panic(err)
	}
	return d
}

func (d DB) Setting() setting.SettingStorer {
	return Setting{db: d.db}
}

var _ setting.SettingStorer = Setting{}

type Setting struct {
	db *gorm.DB
}

// Get 单行配置，不存在时写入默认值
func (s Setting) Get(ctx context.Context, out *setting.Setting) error {
	def := setting.Default()
	return s.db.WithContext(ctx).Where("id = ?", def.ID).Attrs(def).FirstOrCreate(out).Error
}

// Edit 读改写在同一事务内完成
func (s Setting) Edit(ctx context.Context, out *setting.Setting, changeFn func(*setting.Setting)) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		def := setting.Default()
		if err := tx.Where("id = ?", def.ID).Attrs(def).FirstOrCreate(out).Error; err != nil {
			return err
		}
		changeFn(out)
		return tx.Save(out).Error
	})
}
