package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KSunShin4/EcoMart/internal/catalog"
	product "github.com/KSunShin4/EcoMart/internal/products"
	"github.com/KSunShin4/EcoMart/pkg/config"
	"github.com/KSunShin4/EcoMart/pkg/db/models"
	pkgerrors "github.com/KSunShin4/EcoMart/pkg/errors"
	"github.com/KSunShin4/EcoMart/pkg/logger"
	"github.com/KSunShin4/EcoMart/pkg/pagination"
)

// suggestionScanLimit bounds how many search results contribute tags to the
// suggestion pool.
const suggestionScanLimit = 20

// Service exposes keyword search, autocomplete suggestions and search
// history management.
type Service interface {
	Search(ctx context.Context, userID *uuid.UUID, input SearchInput) (*product.ProductListDTO, error)
	Suggest(ctx context.Context, userID *uuid.UUID, query string) ([]string, error)
	History(ctx context.Context, userID uuid.UUID) ([]HistoryDTO, error)
	DeleteHistory(ctx context.Context, userID, entryID uuid.UUID) error
	ClearHistory(ctx context.Context, userID uuid.UUID) error
}

// SearchInput is one committed search request.
type SearchInput struct {
	Query      string
	Sort       catalog.Sort
	Pagination pagination.Params
}

// HistoryDTO is the API shape of a stored keyword.
type HistoryDTO struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"createdAt"`
}

type productSearcher interface {
	ListProducts(ctx context.Context, input product.ListProductsInput) (*product.ProductListDTO, error)
}

type historyStore interface {
	Create(ctx context.Context, entry *models.SearchHistory) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.SearchHistory, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	products productSearcher
	history  historyStore
	cfg      config.SearchConfig
	logg     *logger.Logger

	mu        sync.Mutex
	recorders map[uuid.UUID]*Debouncer
}

// NewService constructs a search service instance.
func NewService(products productSearcher, history historyStore, cfg config.SearchConfig, logg *logger.Logger) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product searcher required")
	}
	if history == nil {
		return nil, fmt.Errorf("history store required")
	}
	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("history limit must be positive")
	}
	return &service{
		products:  products,
		history:   history,
		cfg:       cfg,
		logg:      logg,
		recorders: make(map[uuid.UUID]*Debouncer),
	}, nil
}

// Search runs a committed query through the catalog engine and records it in
// the caller's history. Anonymous callers search without leaving history.
func (s *service) Search(ctx context.Context, userID *uuid.UUID, input SearchInput) (*product.ProductListDTO, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search query is required")
	}

	result, err := s.products.ListProducts(ctx, product.ListProductsInput{
		Filters:    catalog.Filters{Search: query},
		Sort:       input.Sort,
		Pagination: input.Pagination,
	})
	if err != nil {
		return nil, err
	}

	if userID != nil {
		if err := s.recordHistory(ctx, *userID, query); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving search history")
		}
	}

	return result, nil
}

// recordHistory stores the query in the user's history. With a positive
// debounce window, rapid successive queries collapse and only the one that
// survives a quiet window is saved, asynchronously and with failures logged.
// A non-positive window saves inline.
func (s *service) recordHistory(ctx context.Context, userID uuid.UUID, query string) error {
	if s.cfg.DebounceWindow <= 0 {
		return s.history.Create(ctx, &models.SearchHistory{UserID: userID, Keyword: query})
	}

	s.mu.Lock()
	recorder, ok := s.recorders[userID]
	if !ok {
		recorder = NewDebouncer(s.cfg.DebounceWindow)
		s.recorders[userID] = recorder
	}
	s.mu.Unlock()

	// The request context may be gone by the time the timer fires.
	bg := context.WithoutCancel(ctx)
	recorder.Type(query, func(committed string) {
		entry := &models.SearchHistory{UserID: userID, Keyword: committed}
		if err := s.history.Create(bg, entry); err != nil && s.logg != nil {
			s.logg.Error(bg, "saving search history", err)
		}
	})
	return nil
}

// Suggest derives up to five autocomplete entries from the caller's recent
// history and the tags of products currently matching the query.
func (s *service) Suggest(ctx context.Context, userID *uuid.UUID, query string) ([]string, error) {
	query = strings.TrimSpace(query)

	var keywords []string
	if userID != nil {
		entries, err := s.history.ListRecent(ctx, *userID, s.cfg.HistoryLimit)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading search history")
		}
		keywords = make([]string, 0, len(entries))
		for _, entry := range entries {
			keywords = append(keywords, entry.Keyword)
		}
	}

	var currentResults []catalog.Product
	if query != "" {
		result, err := s.products.ListProducts(ctx, product.ListProductsInput{
			Filters:    catalog.Filters{Search: query},
			Pagination: pagination.Params{Page: 1, Limit: suggestionScanLimit},
		})
		if err != nil {
			return nil, err
		}
		currentResults = make([]catalog.Product, 0, len(result.Products))
		for _, dto := range result.Products {
			currentResults = append(currentResults, catalog.Product{Tags: dto.Tags})
		}
	}

	return catalog.Suggest(query, keywords, currentResults), nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID) ([]HistoryDTO, error) {
	entries, err := s.history.ListRecent(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading search history")
	}

	out := make([]HistoryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, HistoryDTO{
			ID:        entry.ID.String(),
			Keyword:   entry.Keyword,
			CreatedAt: entry.CreatedAt,
		})
	}
	return out, nil
}

func (s *service) DeleteHistory(ctx context.Context, userID, entryID uuid.UUID) error {
	if err := s.history.Delete(ctx, userID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "history entry not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting search history")
	}
	return nil
}

func (s *service) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	if err := s.history.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing search history")
	}
	return nil
}
