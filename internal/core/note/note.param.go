package note

import "github.com/ixugo/goddd/pkg/web"

// SaveSlideNotesInput 幻灯片切换上报
type SaveSlideNotesInput struct {
	PresentationID string `json:"presentation_id" binding:"required"` // 演示文稿 ID
	SlideID        string `json:"slide_id" binding:"required"`        // 幻灯片 ID
	SlideNumber    int    `json:"slide_number"`                       // 页码
	Title          string `json:"title"`                              // 幻灯片标题
	Content        string `json:"content"`                            // 备注正文，空串表示沿用已缓存内容
}

// FindNotesInput 备注列表查询参数
type FindNotesInput struct {
	web.PagerFilter
	PresentationID string `form:"presentation_id"` // 演示文稿 ID（可选）
}

// PrefetchInput 整篇预取参数
type PrefetchInput struct {
	PresentationID string `json:"presentation_id" binding:"required"` // 演示文稿 ID
	AccessToken    string `json:"access_token" binding:"required"`    // 调用方持有的 OAuth 访问令牌
}

// PrefetchOutput 预取结果
type PrefetchOutput struct {
	PresentationID string `json:"presentation_id"`
	Title          string `json:"title"`    // 演示文稿标题
	SlideCount     int    `json:"slide_count"`
	SavedCount     int    `json:"saved_count"` // 实际落库的备注条数
}
