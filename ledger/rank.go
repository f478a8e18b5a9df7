package ledger

// Rank bands over cumulative Eco-Points, inclusive on both ends.
type rankBand struct {
	name string
	min  int
	max  int
}

var rankBands = []rankBand{
	{"Eco-Novice", 0, 50},
	{"Green Starter", 51, 150},
	{"Community Contributor", 151, 300},
	{"Sustainability Steward", 301, 500},
	{"Eco-Champion", 501, -1}, // open-ended top band
}

// Rank is the derived standing for a point total. For the top band
// PointsToNext is zero and Progress is complete; there is no division
// by the open upper bound.
type Rank struct {
	Name         string  `json:"name"`
	PointsToNext int     `json:"points_to_next"`
	NextRankAt   int     `json:"next_rank_at,omitempty"`
	Progress     float64 `json:"progress"`
}

// DeriveRank maps a point total to its rank band. Pure.
func DeriveRank(points int) Rank {
	if points < 0 {
		points = 0
	}
	for _, band := range rankBands {
		if band.max < 0 {
			return Rank{Name: band.name, Progress: 1.0}
		}
		if points >= band.min && points <= band.max {
			nextAt := band.max + 1
			return Rank{
				Name:         band.name,
				PointsToNext: nextAt - points,
				NextRankAt:   nextAt,
				Progress:     float64(points) / float64(nextAt),
			}
		}
	}
	// Unreachable: the bands cover all non-negative totals.
	return Rank{Name: rankBands[0].name}
}

// Garden stage bands over the 0-9 points of the currently growing
// plant. Ten points grow one mature tree.
const pointsPerTree = 10

var stageBands = []struct {
	min, max int
	name     string
}{
	{0, 1, "seed"},
	{2, 4, "sprout"},
	{5, 7, "sapling"},
	{8, 9, "small tree"},
}

type GardenStage struct {
	MatureTrees int    `json:"mature_trees"`
	StagePoints int    `json:"stage_points"`
	StageIndex  int    `json:"stage_index"`
	StageName   string `json:"stage_name"`
}

// DeriveGardenStage splits a point total into mature trees and the
// growth stage of the current plant. Pure.
func DeriveGardenStage(points int) GardenStage {
	if points < 0 {
		points = 0
	}
	stage := GardenStage{
		MatureTrees: points / pointsPerTree,
		StagePoints: points % pointsPerTree,
	}
	for i, band := range stageBands {
		if stage.StagePoints >= band.min && stage.StagePoints <= band.max {
			stage.StageIndex = i
			stage.StageName = band.name
			break
		}
	}
	return stage
}
