// Package notecache 备注写透缓存
// 幻灯片翻页查询走内存，与原库保持一致
package notecache

import (
	"github.com/ThisIsNSH/CueCard/internal/core/note"
	"github.com/ixugo/goddd/pkg/conc"
)

type Cache struct {
	Storer note.Storer
	notes  *conc.Map[string, *note.Note]
}

func NewCache(storer note.Storer) *Cache {
	return &Cache{
		Storer: storer,
		notes:  conc.NewMap[string, *note.Note](),
	}
}

func (c *Cache) Note() note.NoteStorer {
	return (*Note)(c)
}

// slideKey 缓存键，演示文稿与幻灯片联合定位
func slideKey(presentationID, slideID string) string {
	return presentationID + ":" + slideID
}
