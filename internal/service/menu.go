package service

import (
	"context"

	"chatorder-service/internal/models"
	"chatorder-service/internal/repository"

	"go.uber.org/zap"
)

// MenuCache is a read-through cache for the available-menu listing. The menu
// is read on every chat turn while it only changes on reseed, so a short TTL
// cache in front of Postgres is enough. Misses and cache errors fall back to
// the repository.
type MenuCache interface {
	GetAvailableMenu(ctx context.Context) ([]models.MenuItem, bool)
	SetAvailableMenu(ctx context.Context, items []models.MenuItem)
}

type MenuService interface {
	// List returns available items ordered by id; the 1-based position in this
	// slice is what the chat protocol means by "item number".
	List(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
}

type menuService struct {
	repo  repository.MenuItemRepo
	cache MenuCache
	log   *zap.Logger
}

func NewMenuService(repo repository.MenuItemRepo, cache MenuCache, log *zap.Logger) MenuService {
	return &menuService{repo: repo, cache: cache, log: log}
}

func (s *menuService) List(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetAvailableMenu(ctx); ok {
			return items, nil
		}
	}

	items, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetAvailableMenu(ctx, items)
	}
	return items, nil
}

func (s *menuService) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	return item, nil
}
