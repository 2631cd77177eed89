package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sync-gateway/core/cache"
	"sync-gateway/core/reconcile"
	"sync-gateway/feature/catalog"
	"sync-gateway/feature/documents"
	"sync-gateway/feature/registers"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activityDays is the length of the activity window, today included.
const activityDays = 7

const dayLayout = "2006-01-02"

// Config holds paging and calendar settings.
type Config struct {
	// PageSize is used when a request does not specify one.
	PageSize int
	// MaxPageSize caps the requested page size.
	MaxPageSize int
	// Location is the zone in which activity days are counted.
	Location *time.Location
	// StatsTTL is how long computed counts are cached. Zero disables caching.
	StatsTTL time.Duration
}

// Stats holds row counts per entity kind plus the audit trail size.
type Stats struct {
	Products       int64 `json:"products"`
	Counterparties int64 `json:"counterparties"`
	Shops          int64 `json:"shops"`
	Workers        int64 `json:"workers"`
	Specifications int64 `json:"specifications"`
	Orders         int64 `json:"orders"`
	Returns        int64 `json:"returns"`
	Remains        int64 `json:"remains"`
	Prices         int64 `json:"prices"`
	Logs           int64 `json:"logs"`
}

// DailyActivity is the number of records successfully synced on one day.
type DailyActivity struct {
	Date         string `json:"date"`
	TotalRecords int64  `json:"totalRecords"`
}

// Page is one page of a listing together with the total row count.
type Page[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

// Service answers the read-only dashboard queries.
type Service struct {
	db     *gorm.DB
	cache  cache.Store
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
	group  singleflight.Group
}

// NewService creates a dashboard service. store may be nil when no cache is used.
func NewService(db *gorm.DB, store cache.Store, cfg Config, logger *zap.Logger) *Service {
	if store == nil {
		store = cache.NopStore{}
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 15
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.MaxPageSize < cfg.PageSize {
		cfg.MaxPageSize = cfg.PageSize
	}
	return &Service{
		db:     db,
		cache:  store,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Stats returns the row counts, from the cache when fresh.
// Concurrent misses share a single computation.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if stats, ok := s.cachedStats(ctx); ok {
		return stats, nil
	}

	v, err, _ := s.group.Do(cache.KeyDashboardStats, func() (any, error) {
		if stats, ok := s.cachedStats(ctx); ok {
			return stats, nil
		}
		stats, err := s.countAll(ctx)
		if err != nil {
			return nil, err
		}
		s.storeStats(ctx, stats)
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Stats), nil
}

func (s *Service) cachedStats(ctx context.Context) (*Stats, bool) {
	if s.cfg.StatsTTL <= 0 {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, cache.KeyDashboardStats)
	if err != nil {
		s.logger.Warn("Failed to read cached stats", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.logger.Warn("Discarding malformed cached stats", zap.Error(err))
		return nil, false
	}
	return &stats, true
}

func (s *Service) storeStats(ctx context.Context, stats *Stats) {
	if s.cfg.StatsTTL <= 0 {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.KeyDashboardStats, raw, s.cfg.StatsTTL); err != nil {
		s.logger.Warn("Failed to cache stats", zap.Error(err))
	}
}

func (s *Service) countAll(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	counts := []struct {
		model any
		dst   *int64
	}{
		{&catalog.Product{}, &stats.Products},
		{&catalog.Counterparty{}, &stats.Counterparties},
		{&catalog.Shop{}, &stats.Shops},
		{&catalog.Worker{}, &stats.Workers},
		{&documents.Specification{}, &stats.Specifications},
		{&documents.Order{}, &stats.Orders},
		{&documents.ReturnAndComing{}, &stats.Returns},
		{&registers.Remain{}, &stats.Remains},
		{&registers.Price{}, &stats.Prices},
		{&reconcile.SyncHistory{}, &stats.Logs},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range counts {
		g.Go(func() error {
			if err := s.db.WithContext(gctx).Model(c.model).Count(c.dst).Error; err != nil {
				return fmt.Errorf("failed to count %T: %w", c.model, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// Activity returns the records synced per day over the trailing week,
// oldest day first. Days without successful batches are reported as zero.
func (s *Service) Activity(ctx context.Context) ([]DailyActivity, error) {
	loc := s.cfg.Location
	now := s.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(activityDays - 1))

	var rows []reconcile.SyncHistory
	err := s.db.WithContext(ctx).
		Select("timestamp", "record_count").
		Where(clause.Eq{Column: "is_success", Value: true}).
		Where(clause.Gte{Column: "timestamp", Value: start.UTC()}).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sync history: %w", err)
	}

	days := make([]DailyActivity, activityDays)
	index := make(map[string]int, activityDays)
	for i := range days {
		date := start.AddDate(0, 0, i).Format(dayLayout)
		days[i].Date = date
		index[date] = i
	}
	for _, row := range rows {
		if i, ok := index[row.Timestamp.In(loc).Format(dayLayout)]; ok {
			days[i].TotalRecords += int64(row.RecordCount)
		}
	}
	return days, nil
}

// Bounds clamps a requested page and page size: page is 1-based, a
// non-positive size takes the default and sizes above the maximum are capped.
func (s *Service) Bounds(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = s.cfg.PageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	return page, size
}

// Logs lists audit rows, newest first.
func (s *Service) Logs(ctx context.Context, page, size int) (*Page[reconcile.SyncHistory], error) {
	return paginate[reconcile.SyncHistory](ctx, s, page, size, nil, desc("timestamp"), desc("id"))
}

func (s *Service) Products(ctx context.Context, page, size int) (*Page[catalog.Product], error) {
	return paginate[catalog.Product](ctx, s, page, size, nil, asc("ref"))
}

func (s *Service) Counterparties(ctx context.Context, page, size int) (*Page[catalog.Counterparty], error) {
	return paginate[catalog.Counterparty](ctx, s, page, size, nil, asc("ref"))
}

func (s *Service) Shops(ctx context.Context, page, size int) (*Page[catalog.Shop], error) {
	return paginate[catalog.Shop](ctx, s, page, size, nil, asc("ref"))
}

func (s *Service) Workers(ctx context.Context, page, size int) (*Page[catalog.Worker], error) {
	return paginate[catalog.Worker](ctx, s, page, size, nil, asc("ref"))
}

// Orders lists orders with their items, newest first.
func (s *Service) Orders(ctx context.Context, page, size int) (*Page[documents.Order], error) {
	return paginate[documents.Order](ctx, s, page, size, withItems, desc("date"), asc("ref"))
}

// Specifications lists specifications with their items, newest first.
func (s *Service) Specifications(ctx context.Context, page, size int) (*Page[documents.Specification], error) {
	return paginate[documents.Specification](ctx, s, page, size, withItems, desc("date"), asc("ref"))
}

// Returns lists goods movements with their items, newest first.
func (s *Service) Returns(ctx context.Context, page, size int) (*Page[documents.ReturnAndComing], error) {
	return paginate[documents.ReturnAndComing](ctx, s, page, size, withItems, desc("date"), asc("ref"))
}

func (s *Service) Remains(ctx context.Context, page, size int) (*Page[registers.Remain], error) {
	return paginate[registers.Remain](ctx, s, page, size, nil, asc("subdivision"), asc("product_uid"))
}

func (s *Service) Prices(ctx context.Context, page, size int) (*Page[registers.Price], error) {
	return paginate[registers.Price](ctx, s, page, size, nil, asc("price_type_ref"), asc("product_ref"))
}

// withItems preloads document items in line order.
func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order(asc("line_no"))
	})
}

func asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}}
}

func desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

// paginate loads one page of T. orders must form a total order so that
// consecutive pages neither overlap nor skip rows.
func paginate[T any](ctx context.Context, s *Service, page, size int, scope func(*gorm.DB) *gorm.DB, orders ...clause.OrderByColumn) (*Page[T], error) {
	page, size = s.Bounds(page, size)
	db := s.db.WithContext(ctx)

	result := &Page[T]{Items: make([]T, 0)}
	if err := db.Model(new(T)).Count(&result.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count %T: %w", *new(T), err)
	}
	if result.Total == 0 {
		return result, nil
	}

	query := db.Offset((page - 1) * size).Limit(size)
	if scope != nil {
		query = query.Scopes(scope)
	}
	for _, order := range orders {
		query = query.Order(order)
	}
	if err := query.Find(&result.Items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %T: %w", *new(T), err)
	}
	return result, nil
}
