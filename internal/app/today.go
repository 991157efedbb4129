package app

import (
	"context"

	"fittrack/internal/domain"
)

// TodayService is a convenience view over the store scoped to today's
// daily-target record.
type TodayService struct {
	store *Store
}

// NewTodayService creates a TodayService over the store.
func NewTodayService(store *Store) *TodayService {
	return &TodayService{store: store}
}

// Target returns today's record, defaulted if nothing is stored yet.
func (s *TodayService) Target() domain.DailyTarget {
	return s.store.TodayTarget()
}

// UpdateWater sets today's water intake in liters.
func (s *TodayService) UpdateWater(ctx context.Context, liters float64) (domain.DailyTarget, error) {
	return s.store.SetTodayWater(ctx, liters)
}

// AddGlass records one glass of water.
func (s *TodayService) AddGlass(ctx context.Context) (domain.DailyTarget, error) {
	return s.store.AddTodayWater(ctx, domain.GlassLiters)
}

// RemoveGlass removes one glass of water, never dropping below zero.
func (s *TodayService) RemoveGlass(ctx context.Context) (domain.DailyTarget, error) {
	return s.store.AddTodayWater(ctx, -domain.GlassLiters)
}

// UpdateCalories sets today's calorie intake.
func (s *TodayService) UpdateCalories(ctx context.Context, calories int) (domain.DailyTarget, error) {
	return s.store.SetTodayCalories(ctx, calories)
}
