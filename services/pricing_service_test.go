package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePrice_BasePriceOnly(t *testing.T) {
	db := setupTestDB(t)
	rt := createTestRoomType(t, db, "Standard", 100, 2)
	svc := NewPricingService(db)

	total, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 1), date(2024, time.March, 3))
	require.NoError(t, err)
	assert.Equal(t, 200.0, total)

	quote, err := svc.QuotePrice(rt.ID, date(2024, time.March, 1), date(2024, time.March, 3))
	require.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Len(t, quote.Days, 2)
}

func TestCalculatePrice_SeasonalMultiplier(t *testing.T) {
	db := setupTestDB(t)
	rt := createTestRoomType(t, db, "Standard", 100, 2)
	seasonalRule(t, db, rt.ID, "high season", 1.5, date(2024, time.February, 1), date(2024, time.April, 30))
	svc := NewPricingService(db)

	total, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 1), date(2024, time.March, 3))
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
}

func TestCalculatePrice_AdditiveOverSeasonBoundary(t *testing.T) {
	db := setupTestDB(t)
	rt := createTestRoomType(t, db, "Deluxe", 150, 2)
	// Season starts on March 5; the stay straddles the boundary.
	seasonalRule(t, db, rt.ID, "peak", 2.0, date(2024, time.March, 5), date(2024, time.March, 31))
	svc := NewPricingService(db)

	full, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 3), date(2024, time.March, 8))
	require.NoError(t, err)
	left, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 3), date(2024, time.March, 5))
	require.NoError(t, err)
	right, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 5), date(2024, time.March, 8))
	require.NoError(t, err)

	assert.Equal(t, full, left+right)
	assert.Equal(t, 300.0, left)
	assert.Equal(t, 900.0, right)
}

func TestCalculatePrice_NarrowestRuleWins(t *testing.T) {
	db := setupTestDB(t)
	rt := createTestRoomType(t, db, "Standard", 100, 2)
	seasonalRule(t, db, rt.ID, "whole quarter", 1.2, date(2024, time.January, 1), date(2024, time.March, 31))
	seasonalRule(t, db, rt.ID, "festival week", 2.0, date(2024, time.March, 1), date(2024, time.March, 7))
	svc := NewPricingService(db)

	total, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 2), date(2024, time.March, 3))
	require.NoError(t, err)
	assert.Equal(t, 200.0, total, "the narrower festival rule should override the quarter rule")
}

func TestCalculatePrice_InactiveRuleIgnored(t *testing.T) {
	db := setupTestDB(t)
	rt := createTestRoomType(t, db, "Standard", 100, 2)
	rule := seasonalRule(t, db, rt.ID, "old season", 3.0, date(2024, time.March, 1), date(2024, time.March, 31))
	require.NoError(t, db.Model(rule).Update("active", false).Error)
	svc := NewPricingService(db)

	total, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 1), date(2024, time.March, 2))
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)
}

func TestCalculatePrice_Errors(t *testing.T) {
	db := setupTestDB(t)
	rt := createTestRoomType(t, db, "Standard", 100, 2)
	svc := NewPricingService(db)

	_, err := svc.CalculatePrice(rt.ID, date(2024, time.March, 3), date(2024, time.March, 3))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.CalculatePrice(rt.ID, date(2024, time.March, 3), date(2024, time.March, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.CalculatePrice(9999, date(2024, time.March, 1), date(2024, time.March, 3))
	assert.ErrorIs(t, err, ErrNotFound)
}
