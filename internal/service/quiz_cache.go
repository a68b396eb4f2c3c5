package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"docquiz/internal/cache"
	"docquiz/internal/domain"
	"docquiz/internal/dto"
	"docquiz/internal/logger"

	"go.uber.org/zap"
)

// QuizCacheService caches quiz display projections. Quizzes are immutable
// once created, so entries never need invalidation; the TTL only bounds
// memory usage.
type QuizCacheService interface {
	GetQuizDetail(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	PutQuizDetail(ctx context.Context, quizID string, detail *dto.QuizDetailResponse) error
}

type quizCacheService struct {
	cache domain.Cache
	ttl   time.Duration
}

func NewQuizCacheService(c domain.Cache, ttl time.Duration) QuizCacheService {
	return &quizCacheService{cache: c, ttl: ttl}
}

// GetQuizDetail returns the cached projection, or (nil, nil) on a miss.
func (s *quizCacheService) GetQuizDetail(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	key := cache.GenerateCacheKey("quiz", "detail", quizID)

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}

	var detail dto.QuizDetailResponse
	if err := json.Unmarshal([]byte(raw), &detail); err != nil {
		// A corrupt entry is treated as a miss; the caller will rebuild it.
		logger.Get().Warn("Discarding unparseable quiz cache entry",
			zap.String("key", key),
			zap.Error(err))
		return nil, nil
	}
	return &detail, nil
}

func (s *quizCacheService) PutQuizDetail(ctx context.Context, quizID string, detail *dto.QuizDetailResponse) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	key := cache.GenerateCacheKey("quiz", "detail", quizID)
	return s.cache.Set(ctx, key, string(raw), s.ttl)
}
