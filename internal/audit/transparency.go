package audit

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-copilot/internal/types"
)

// TransparencyReport renders a markdown report explaining which data the
// session used and how each decision was made. Sections for features the
// session never touched are replaced with a placeholder line.
func TransparencyReport(data *types.SessionData) string {
	var b strings.Builder

	b.WriteString("# AI System Transparency Report\n\n")
	b.WriteString("_Generated to explain how AI recommendations and decisions are made in your job search journey._\n\n")

	b.WriteString("## Data Used\n\n")
	var dataItems []string
	if data.ResumeAnalyzed {
		dataItems = append(dataItems, "Resume/profile data (skills, experience)")
	}
	if data.JobDescription != "" {
		dataItems = append(dataItems, "Target job description")
	}
	if len(data.InterviewLog) > 0 {
		dataItems = append(dataItems, "Interview practice responses")
	}
	if len(data.JobMatches) > 0 {
		dataItems = append(dataItems, "Job search results and preferences")
	}
	if len(dataItems) == 0 {
		b.WriteString("_No data processed yet. Complete a job search or skill analysis to see what data is used._\n")
	} else {
		for _, item := range dataItems {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	b.WriteString("\n## Decisions Made\n\n")
	decisions := false

	if len(data.SkillGaps) > 0 {
		decisions = true
		b.WriteString("### Skill Gap Analysis\n")
		fmt.Fprintf(&b, "Identified **%d skill gaps** using:\n\n", len(data.SkillGaps))
		b.WriteString("- NLP-based skill extraction from resume and job description\n")
		b.WriteString("- Fuzzy matching algorithm for skill comparison (tolerates spelling variations)\n")
		b.WriteString("- Severity scoring based on skill category:\n")
		b.WriteString("  - **Critical**: Core technical requirements\n")
		b.WriteString("  - **Moderate**: Beneficial skills\n")
		b.WriteString("  - **Minor**: Nice-to-have competencies\n\n")
	}

	if len(data.Recommendations) > 0 {
		decisions = true
		b.WriteString("### Learning Recommendations\n")
		fmt.Fprintf(&b, "Provided **%d course recommendations** based on:\n\n", len(data.Recommendations))
		b.WriteString("- Skill gap prioritization (critical -> moderate -> minor)\n")
		b.WriteString("- Course relevance scoring (matched to specific skills)\n")
		b.WriteString("- Learning path optimization for 12-month timeline\n")
		b.WriteString("- Diverse platform selection (Coursera, Udemy, edX, YouTube)\n\n")
	}

	if len(data.JobMatches) > 0 {
		decisions = true
		b.WriteString("### Job Matching\n")
		b.WriteString("Jobs filtered and ranked using:\n\n")
		b.WriteString("- **Keyword matching**: Title and description alignment with search query\n")
		b.WriteString("- **Location filtering**: Based on your preferences (remote/onsite)\n")
		b.WriteString("- **Bias detection**: Removed discriminatory job postings\n")
		b.WriteString("- **Relevance scoring**: Prioritized best matches first\n\n")
	}

	if !decisions {
		b.WriteString("_No decisions made yet. Use the app features to see how AI makes recommendations._\n\n")
	}

	b.WriteString("## Bias Mitigation\n\n")
	b.WriteString("Our system actively prevents discrimination:\n\n")
	b.WriteString("- **Gender-neutral language**: All AI-generated content uses they/them pronouns\n")
	b.WriteString("- **Age-agnostic recommendations**: No assumptions based on graduation year or experience length\n")
	b.WriteString("- **Skill-based matching**: Focus on competencies, not credentials (no degree requirements)\n")
	b.WriteString("- **Diverse platforms**: Recommendations include free and paid options\n")
	b.WriteString("- **Bias audit**: Job descriptions scanned for discriminatory language\n")
	b.WriteString("- **Fair scoring**: Resume audits identify and flag potential biases\n\n")

	b.WriteString("## User Control\n\n")
	b.WriteString("**You have complete control:**\n\n")
	b.WriteString("- View and edit all input data (resume, preferences)\n")
	b.WriteString("- Request explanations for any recommendation\n")
	b.WriteString("- Adjust recommendation weights and priorities\n")
	b.WriteString("- Export your data anytime\n")
	b.WriteString("- Delete your session data\n\n")

	b.WriteString("## Privacy Commitment\n\n")
	b.WriteString("- **Session storage only**: Your data stays in your own session\n")
	b.WriteString("- **No tracking**: We don't log search queries or personal info\n")
	b.WriteString("- **API calls**: Only job search and audits use external providers\n")
	b.WriteString("- **No sharing**: Your resume and data are never shared\n\n")

	b.WriteString("---\n\n")
	b.WriteString("_This report was auto-generated. Request an explanation for any specific decision to learn more._\n")

	return b.String()
}
