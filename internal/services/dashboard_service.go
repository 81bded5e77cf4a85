package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"storeadmin/internal/repositories"
	"storeadmin/pkg/cache"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// Stats is the dashboard summary: catalog size and account count.
type Stats struct {
	Products    int64     `json:"products"`
	Users       int64     `json:"users"`
	GeneratedAt time.Time `json:"generated_at"`
}

// DashboardService computes dashboard statistics. The two counts are
// independent reads issued concurrently and joined. Results are cached in
// Redis for a short TTL; the cache may be nil or unavailable, in which case
// every request counts directly.
type DashboardService struct {
	productRepo repositories.ProductRepository
	profileRepo repositories.ProfileRepository
	cache       *cache.Client
}

// NewDashboardService creates a new DashboardService. The cache client may
// be nil to disable caching.
func NewDashboardService(productRepo repositories.ProductRepository, profileRepo repositories.ProfileRepository, cacheClient *cache.Client) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		profileRepo: profileRepo,
		cache:       cacheClient,
	}
}

// GetStats returns the dashboard statistics, from cache when fresh.
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, statsCacheKey); err == nil {
			var cached Stats
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			log.Printf("Warning: failed to decode cached dashboard stats: %v", err)
		}
	}

	var (
		wg           sync.WaitGroup
		productCount int64
		userCount    int64
		productErr   error
		userErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		productCount, productErr = s.productRepo.Count()
	}()
	go func() {
		defer wg.Done()
		userCount, userErr = s.profileRepo.Count()
	}()
	wg.Wait()

	if productErr != nil {
		return nil, productErr
	}
	if userErr != nil {
		return nil, userErr
	}

	stats := &Stats{
		Products:    productCount,
		Users:       userCount,
		GeneratedAt: time.Now(),
	}

	if s.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, data, statsCacheTTL); err != nil {
				log.Printf("Warning: failed to cache dashboard stats: %v", err)
			}
		}
	}

	return stats, nil
}
