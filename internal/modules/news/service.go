package news

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"anchorchain/internal/domain"
	"anchorchain/internal/repository"
)

type NewsStore interface {
	GetAll(ctx context.Context, f repository.NewsFilters, p repository.Pagination) ([]domain.NewsItem, int64, error)
	ExistsByURLAndTitle(ctx context.Context, url, title string) (bool, error)
	Create(ctx context.Context, item *domain.NewsItem) error
}

type ManufacturerGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Manufacturer, error)
}

type ListOptions struct {
	ManufacturerID string
	Category       string
	Page           repository.Pagination
}

type Service struct {
	store         NewsStore
	manufacturers ManufacturerGetter
}

func NewService(store NewsStore, manufacturers ManufacturerGetter) *Service {
	return &Service{store: store, manufacturers: manufacturers}
}

// List returns active news items, newest first.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]domain.NewsItem, int64, error) {
	filters := repository.NewsFilters{
		Status:         domain.NewsActive,
		ManufacturerID: opts.ManufacturerID,
		Category:       opts.Category,
	}
	return s.store.GetAll(ctx, filters, opts.Page)
}

// IngestBatch processes each submitted item independently: a duplicate
// (url, title) pair is skipped, a malformed item is rejected with a reason,
// everything else is created. One bad item never aborts the batch.
func (s *Service) IngestBatch(ctx context.Context, items []ItemInput) (*BatchResult, error) {
	result := &BatchResult{
		Results: make([]ItemResult, 0, len(items)),
		Total:   len(items),
	}

	for i, item := range items {
		res := s.ingestOne(ctx, i, item)
		switch res.Status {
		case ResultCreated:
			result.Created++
		case ResultSkippedDuplicate:
			result.Skipped++
		case ResultRejected:
			result.Rejected++
		}
		result.Results = append(result.Results, res)
	}

	return result, nil
}

func (s *Service) ingestOne(ctx context.Context, index int, item ItemInput) ItemResult {
	if item.Title == "" || item.URL == "" {
		return ItemResult{Index: index, Status: ResultRejected, Reason: "title and url are required"}
	}
	if item.PublishedAt.IsZero() {
		return ItemResult{Index: index, Status: ResultRejected, Reason: "published_at is required"}
	}

	if item.ManufacturerID != nil {
		if _, err := s.manufacturers.GetByID(ctx, *item.ManufacturerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ItemResult{Index: index, Status: ResultRejected, Reason: "manufacturer not found"}
			}
			return ItemResult{Index: index, Status: ResultRejected, Reason: "manufacturer lookup failed"}
		}
	}

	exists, err := s.store.ExistsByURLAndTitle(ctx, item.URL, item.Title)
	if err != nil {
		return ItemResult{Index: index, Status: ResultRejected, Reason: "duplicate check failed"}
	}
	if exists {
		return ItemResult{Index: index, Status: ResultSkippedDuplicate}
	}

	lang := item.Lang
	if lang == "" {
		lang = "en"
	}

	newsItem := &domain.NewsItem{
		ManufacturerID: item.ManufacturerID,
		SourceID:       item.SourceID,
		Publisher:      item.Publisher,
		Title:          item.Title,
		PublishedAt:    item.PublishedAt,
		Lang:           lang,
		Summary:        item.Summary,
		URL:            item.URL,
		Status:         domain.NewsActive,
		Entities:       item.Entities,
		Categories:     item.Categories,
	}

	if err := s.store.Create(ctx, newsItem); err != nil {
		return ItemResult{Index: index, Status: ResultRejected, Reason: "storage failure"}
	}

	return ItemResult{Index: index, Status: ResultCreated, ID: newsItem.ID}
}
