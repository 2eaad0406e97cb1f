package skills

import "github.com/jonathan/career-copilot/internal/types"

// BuildRoadmap distributes recommendations across the quarters of a 12-month
// learning plan. High-priority items front-load the first quarter, overflow
// spills into later quarters, and low-priority items land at the end.
func BuildRoadmap(recommendations []types.Recommendation) *types.LearningRoadmap {
	var high, medium, low []types.Recommendation
	for _, rec := range recommendations {
		switch rec.Priority {
		case "High":
			high = append(high, rec)
		case "Medium":
			medium = append(medium, rec)
		case "Low":
			low = append(low, rec)
		}
	}

	roadmap := &types.LearningRoadmap{
		Months1To3: head(high, 2),
	}

	if len(high) > 2 {
		roadmap.Months4To6 = append(high[2:], head(medium, 2)...)
	} else {
		roadmap.Months4To6 = head(medium, 3)
	}

	if len(medium) > 2 {
		roadmap.Months7To9 = append(medium[2:], head(low, 2)...)
	} else {
		roadmap.Months7To9 = head(low, 3)
	}

	if len(low) > 2 {
		roadmap.Months10To12 = low[2:]
	}

	return roadmap
}

// head returns at most n leading elements of recs.
func head(recs []types.Recommendation, n int) []types.Recommendation {
	if len(recs) <= n {
		return recs
	}
	return recs[:n]
}
