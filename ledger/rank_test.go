package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRankBoundaries(t *testing.T) {
	tests := []struct {
		points       int
		name         string
		pointsToNext int
	}{
		{0, "Eco-Novice", 51},
		{50, "Eco-Novice", 1},
		{51, "Green Starter", 100},
		{150, "Green Starter", 1},
		{151, "Community Contributor", 150},
		{300, "Community Contributor", 1},
		{301, "Sustainability Steward", 200},
		{500, "Sustainability Steward", 1},
	}

	for _, tt := range tests {
		rank := DeriveRank(tt.points)
		assert.Equal(t, tt.name, rank.Name, "points=%d", tt.points)
		assert.Equal(t, tt.pointsToNext, rank.PointsToNext, "points=%d", tt.points)
		assert.Less(t, rank.Progress, 1.0, "points=%d", tt.points)
	}
}

func TestDeriveRankTopBand(t *testing.T) {
	// The top band is open-ended: progress reports complete instead of
	// dividing by an infinite bound.
	for _, points := range []int{501, 1000, 100000} {
		rank := DeriveRank(points)
		assert.Equal(t, "Eco-Champion", rank.Name)
		assert.Equal(t, 0, rank.PointsToNext)
		assert.Equal(t, 1.0, rank.Progress)
	}
}

func TestDeriveGardenStage(t *testing.T) {
	stage := DeriveGardenStage(23)
	assert.Equal(t, 2, stage.MatureTrees)
	assert.Equal(t, 3, stage.StagePoints)
	assert.Equal(t, 1, stage.StageIndex)
	assert.Equal(t, "sprout", stage.StageName)
}

func TestGardenStageBands(t *testing.T) {
	tests := []struct {
		stagePoints int
		index       int
		name        string
	}{
		{0, 0, "seed"},
		{1, 0, "seed"},
		{2, 1, "sprout"},
		{4, 1, "sprout"},
		{5, 2, "sapling"},
		{7, 2, "sapling"},
		{8, 3, "small tree"},
		{9, 3, "small tree"},
	}

	for _, tt := range tests {
		stage := DeriveGardenStage(tt.stagePoints)
		assert.Equal(t, 0, stage.MatureTrees)
		assert.Equal(t, tt.index, stage.StageIndex, "points=%d", tt.stagePoints)
		assert.Equal(t, tt.name, stage.StageName, "points=%d", tt.stagePoints)
	}

	// 10 points is exactly one mature tree with a fresh seed.
	stage := DeriveGardenStage(10)
	assert.Equal(t, 1, stage.MatureTrees)
	assert.Equal(t, 0, stage.StagePoints)
	assert.Equal(t, "seed", stage.StageName)
}
