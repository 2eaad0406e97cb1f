package skills

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-copilot/internal/types"
)

func recsWithPriority(priority string, n int) []types.Recommendation {
	recs := make([]types.Recommendation, n)
	for i := range recs {
		recs[i] = types.Recommendation{
			Skill:    fmt.Sprintf("%s-%d", priority, i),
			Priority: priority,
		}
	}
	return recs
}

func TestBuildRoadmap_FewItems(t *testing.T) {
	recs := append(recsWithPriority("High", 1), recsWithPriority("Medium", 2)...)
	recs = append(recs, recsWithPriority("Low", 1)...)

	roadmap := BuildRoadmap(recs)

	assert.Len(t, roadmap.Months1To3, 1)
	assert.Len(t, roadmap.Months4To6, 2)
	assert.Len(t, roadmap.Months7To9, 1)
	assert.Empty(t, roadmap.Months10To12)
}

func TestBuildRoadmap_OverflowSpillsForward(t *testing.T) {
	recs := append(recsWithPriority("High", 4), recsWithPriority("Medium", 3)...)
	recs = append(recs, recsWithPriority("Low", 4)...)

	roadmap := BuildRoadmap(recs)

	assert.Equal(t, []string{"High-0", "High-1"}, skillNames(roadmap.Months1To3))
	assert.Equal(t, []string{"High-2", "High-3", "Medium-0", "Medium-1"}, skillNames(roadmap.Months4To6))
	assert.Equal(t, []string{"Medium-2", "Low-0", "Low-1"}, skillNames(roadmap.Months7To9))
	assert.Equal(t, []string{"Low-2", "Low-3"}, skillNames(roadmap.Months10To12))
}

func TestBuildRoadmap_Empty(t *testing.T) {
	roadmap := BuildRoadmap(nil)

	assert.Empty(t, roadmap.Months1To3)
	assert.Empty(t, roadmap.Months4To6)
	assert.Empty(t, roadmap.Months7To9)
	assert.Empty(t, roadmap.Months10To12)
}

func skillNames(recs []types.Recommendation) []string {
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Skill)
	}
	return names
}
