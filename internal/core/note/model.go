package note

import "github.com/ixugo/goddd/pkg/orm"

// Note 某张幻灯片的演讲者备注
// 同一演示文稿内的幻灯片唯一，重复上报走更新
type Note struct {
	ID             string   `gorm:"primaryKey;size:32" json:"id"`
	PresentationID string   `gorm:"size:128;uniqueIndex:idx_notes_slide" json:"presentation_id"` // 演示文稿 ID
	SlideID        string   `gorm:"size:128;uniqueIndex:idx_notes_slide" json:"slide_id"`        // 幻灯片 ID
	SlideNumber    int      `json:"slide_number"`                                                // 页码，从 1 开始
	Title          string   `json:"title"`                                                       // 幻灯片标题
	Content        string   `json:"content"`                                                     // 备注正文，可内嵌 time/note 标记
	CreatedAt      orm.Time `json:"created_at"`
	UpdatedAt      orm.Time `json:"updated_at"`
}
