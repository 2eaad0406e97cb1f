package audit

import "fmt"

// Decision feature types accepted by ExplainDecision.
const (
	FeatureCourseRecommendation = "course_recommendation"
	FeatureInterviewQuestion    = "interview_question"
	FeatureBridgeRole           = "bridge_role"
	FeatureSkillGap             = "skill_gap"
)

// ExplainDecision returns a plain-language explanation of why the system made
// a particular recommendation. Unknown feature types get a generic line.
func ExplainDecision(featureType, value string) string {
	switch featureType {
	case FeatureCourseRecommendation:
		return fmt.Sprintf("This course was recommended because it directly addresses the skill gap '%s' identified in the analysis. The recommendation algorithm prioritized it based on relevance to your target role and current skill level.", value)
	case FeatureInterviewQuestion:
		return fmt.Sprintf("This question was generated to assess competencies mentioned in the job description, specifically targeting '%s'. The difficulty level was calibrated to your target role's seniority.", value)
	case FeatureBridgeRole:
		return fmt.Sprintf("This role ('%s') was suggested as it builds critical skills needed for your target position while matching your current experience level. It represents a strategic intermediate step.", value)
	case FeatureSkillGap:
		return fmt.Sprintf("'%s' was identified as a gap because it appears in the job requirements but wasn't found in your resume. The severity rating considers how central this skill is to the role.", value)
	}
	return fmt.Sprintf("Recommended based on analysis of: %s", value)
}
