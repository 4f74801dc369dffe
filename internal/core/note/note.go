package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThisIsNSH/CueCard/internal/core/bz"
	"github.com/ixugo/goddd/pkg/orm"
	"github.com/ixugo/goddd/pkg/reason"
	"github.com/jinzhu/copier"
)

// SaveSlideNotes 保存幻灯片备注，同一张幻灯片重复上报走更新。
// 上报内容为空时保留已有备注，只刷新页码与标题。
func (c Core) SaveSlideNotes(ctx context.Context, in *SaveSlideNotesInput) (*Note, error) {
	existing, err := c.store.Note().GetBySlide(ctx, in.PresentationID, in.SlideID)
	if err != nil {
		if !orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrDB.Withf(`GetBySlide pid[%s] sid[%s] err[%s]`, in.PresentationID, in.SlideID, err.Error())
		}
		var out Note
		if err := copier.Copy(&out, in); err != nil {
			slog.ErrorContext(ctx, "Copy", "err", err)
		}
		out.ID = c.uni.UniqueID(bz.IDPrefixNote)
		if err := c.store.Note().Add(ctx, &out); err != nil {
			return nil, reason.ErrDB.Withf(`Add err[%s]`, err.Error())
		}
		return &out, nil
	}

	if err := c.store.Note().Edit(ctx, existing, func(n *Note) {
		if in.SlideNumber > 0 {
			n.SlideNumber = in.SlideNumber
		}
		if in.Title != "" {
			n.Title = in.Title
		}
		if in.Content != "" {
			n.Content = in.Content
		}
	}, orm.Where("id=?", existing.ID)); err != nil {
		return nil, reason.ErrDB.Withf(`Edit id[%s] err[%s]`, existing.ID, err.Error())
	}
	return existing, nil
}

// GetSlideNotes 查询某张幻灯片的备注
func (c Core) GetSlideNotes(ctx context.Context, presentationID, slideID string) (*Note, error) {
	out, err := c.store.Note().GetBySlide(ctx, presentationID, slideID)
	if err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`GetBySlide pid[%s] sid[%s]`, presentationID, slideID)
		}
		return nil, reason.ErrDB.Withf(`GetBySlide err[%s]`, err.Error())
	}
	return out, nil
}

// GetNote Query a single object
func (c Core) GetNote(ctx context.Context, id string) (*Note, error) {
	out := Note{ID: id}
	if err := c.store.Note().Get(ctx, &out, orm.Where("id=?", id)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Get id[%v] err[%s]`, id, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Get id[%v] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// FindNotes 分页查询备注列表，支持按演示文稿筛选
func (c Core) FindNotes(ctx context.Context, in *FindNotesInput) ([]*Note, int64, error) {
	query := orm.NewQuery(2).OrderBy("slide_number ASC")
	if in.PresentationID != "" {
		query.Where("presentation_id = ?", in.PresentationID)
	}

	items := make([]*Note, 0, in.Limit())
	total, err := c.store.Note().Find(ctx, &items, in, query.Encode()...)
	if err != nil {
		return nil, 0, reason.ErrDB.Withf(`Find in[%+v] err[%s]`, in, err.Error())
	}
	return items, total, nil
}

// DelNote Delete object
func (c Core) DelNote(ctx context.Context, id string) (*Note, error) {
	var out Note
	if err := c.store.Note().Del(ctx, &out, orm.Where("id=?", id)); err != nil {
		if orm.IsErrRecordNotFound(err) {
			return nil, reason.ErrNotFound.Withf(`Del id[%v] err[%s]`, id, err.Error())
		}
		return nil, reason.ErrDB.Withf(`Del id[%v] err[%s]`, id, err.Error())
	}
	return &out, nil
}

// PrefetchPresentation 一次拉取整篇演示文稿，把每页备注落库，
// 翻页时即可直接命中缓存
func (c Core) PrefetchPresentation(ctx context.Context, in *PrefetchInput) (*PrefetchOutput, error) {
	p, err := c.slides.GetPresentation(ctx, in.PresentationID, in.AccessToken)
	if err != nil {
		return nil, reason.ErrServer.Withf(`GetPresentation pid[%s] err[%s]`, in.PresentationID, err.Error())
	}

	out := PrefetchOutput{
		PresentationID: p.PresentationID,
		Title:          p.Title,
		SlideCount:     len(p.Slides),
	}
	for i, slide := range p.Slides {
		content := slide.SpeakerNotes()
		if content == "" {
			continue
		}
		if _, err := c.SaveSlideNotes(ctx, &SaveSlideNotesInput{
			PresentationID: p.PresentationID,
			SlideID:        slide.ObjectID,
			SlideNumber:    i + 1,
			Title:          fmt.Sprintf("Slide %d", i+1),
			Content:        content,
		}); err != nil {
			slog.WarnContext(ctx, "预取备注落库失败", "slide_id", slide.ObjectID, "err", err)
			continue
		}
		out.SavedCount++
	}
	slog.InfoContext(ctx, "演示文稿备注预取完成",
		"presentation_id", p.PresentationID,
		"slides", out.SlideCount,
		"saved", out.SavedCount,
	)
	return &out, nil
}
