package services

import (
	"context"
	"log"
	"sync"

	"eduport/gateway"
	"eduport/models"
	"eduport/ui"
)

// CatalogService fetches and caches the course catalog. The cache is only
// ever replaced wholesale by LoadCourses; the filtered view is always a pure
// function over the last full fetch.
type CatalogService struct {
	gw  *gateway.Client
	log *log.Logger

	mu      sync.RWMutex
	courses []models.Course
}

func NewCatalogService(gw *gateway.Client, logger *log.Logger) *CatalogService {
	return &CatalogService{gw: gw, log: logger}
}

// LoadCourses fetches the full catalog, enriches every course with its
// review stats, and replaces the cache. A failed catalog fetch leaves the
// prior cache in place.
func (s *CatalogService) LoadCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.gw.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	s.enrichCoursesWithReviews(ctx, courses)

	s.mu.Lock()
	s.courses = courses
	s.mu.Unlock()

	return s.Courses(), nil
}

// enrichCoursesWithReviews walks the list one course at a time, in order.
// The stats endpoint is hit serially on purpose; a failed lookup is logged
// and that course simply renders without a rating.
func (s *CatalogService) enrichCoursesWithReviews(ctx context.Context, courses []models.Course) {
	for i := range courses {
		stats, err := s.gw.CourseReviewStats(ctx, courses[i].ID)
		if err != nil {
			s.log.Printf("catalog: review stats for course %d: %v", courses[i].ID, err)
			continue
		}
		courses[i].AverageRating = stats.AverageRating
		courses[i].TotalReviews = stats.TotalReviews
	}
}

// Courses returns a copy of the cached catalog.
func (s *CatalogService) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Loaded reports whether a catalog fetch has happened yet.
func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courses != nil
}

// FilterCourses is a pure, synchronous filter over the cached catalog.
// Category matching is exact; the "all" sentinel bypasses filtering. Input
// order is preserved and no network is touched.
func (s *CatalogService) FilterCourses(category string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == ui.FilterAll {
		out := make([]models.Course, len(s.courses))
		copy(out, s.courses)
		return out
	}

	out := make([]models.Course, 0)
	for _, c := range s.courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// CourseByID looks a course up in the cache.
func (s *CatalogService) CourseByID(id int) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// CourseReviews fetches the review list and aggregate stats for the course
// detail view. A non-2xx on either leg degrades to an empty list or zero
// stats; only a transport failure surfaces as an error.
func (s *CatalogService) CourseReviews(ctx context.Context, courseID int) ([]models.Review, models.ReviewStats, error) {
	var stats models.ReviewStats

	reviews, err := s.gw.ListReviews(ctx, courseID)
	if err != nil {
		if gateway.IsTransport(err) {
			return nil, stats, err
		}
		s.log.Printf("catalog: reviews for course %d: %v", courseID, err)
		reviews = []models.Review{}
	}

	st, err := s.gw.CourseReviewStats(ctx, courseID)
	if err != nil {
		if gateway.IsTransport(err) {
			return nil, stats, err
		}
		s.log.Printf("catalog: review stats for course %d: %v", courseID, err)
	} else {
		stats = *st
	}

	return reviews, stats, nil
}
