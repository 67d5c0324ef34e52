package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuarterAverage(t *testing.T) {
	cases := []struct {
		name   string
		grades GradeRecord
		want   float64
	}{
		{"no quarters graded", GradeRecord{}, 0},
		{"one quarter", GradeRecord{Q1: 18}, 18},
		{"two quarters skip the empty one", GradeRecord{Q1: 18, Q2: 15}, 16.5},
		{"all quarters", GradeRecord{Q1: 18, Q2: 15, Q3: 12}, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.grades.QuarterAverage(), 0.001)
		})
	}
}

func TestDashboardForUnknownRoleFallsBackToHome(t *testing.T) {
	assert.Equal(t, ViewHome, DashboardFor(RolePublic))
	assert.Equal(t, ViewHome, DashboardFor(Role("VISITOR")))
}

func TestBelowMinimum(t *testing.T) {
	assert.False(t, InventoryItem{Quantity: 10, MinQuantity: 10}.BelowMinimum())
	assert.True(t, InventoryItem{Quantity: 9, MinQuantity: 10}.BelowMinimum())
}
