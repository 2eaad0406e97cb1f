package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBridgeRoles(t *testing.T) {
	input := `ROLE: Analytics Engineer
WHY: Combines analyst instincts with production data tooling.
SKILLS: dbt, SQL modeling, CI for data
TIMELINE: 9 months
---
ROLE: Data Engineer
WHY: Builds the pipeline skills the target role assumes.
SKILLS: Airflow, Spark, Python
TIMELINE: 12
---`

	roles := ParseBridgeRoles(input)
	require.Len(t, roles, 2)

	assert.Equal(t, "Analytics Engineer", roles[0].RoleTitle)
	assert.Equal(t, "Combines analyst instincts with production data tooling.", roles[0].Rationale)
	assert.Equal(t, []string{"dbt", "SQL modeling", "CI for data"}, roles[0].SkillsBuilt)
	assert.Equal(t, 9, roles[0].TimelineMonths)

	assert.Equal(t, "Data Engineer", roles[1].RoleTitle)
	assert.Equal(t, 12, roles[1].TimelineMonths)
}

func TestParseBridgeRoles_DefaultsAndCaps(t *testing.T) {
	// Missing timeline defaults to twelve months, trailing block without a
	// separator still counts, and at most five roles survive.
	input := `ROLE: Role One
TIMELINE: soon
---
ROLE: Role Two
---
ROLE: Role Three
---
ROLE: Role Four
---
ROLE: Role Five
---
ROLE: Role Six`

	roles := ParseBridgeRoles(input)
	require.Len(t, roles, 5)
	assert.Equal(t, "Role One", roles[0].RoleTitle)
	assert.Equal(t, 12, roles[0].TimelineMonths)
	assert.Equal(t, 12, roles[1].TimelineMonths)
	assert.Equal(t, "Role Five", roles[4].RoleTitle)
}

func TestParseBridgeRoles_Empty(t *testing.T) {
	assert.Empty(t, ParseBridgeRoles("I cannot recommend roles."))
}
