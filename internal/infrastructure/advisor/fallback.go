package advisor

import "strings"

// Canned replies used whenever the Gemini backend is unavailable or
// unconfigured. Selection is by simple keyword matching so the chat flow
// stays fully functional offline.
const (
	frontendFallback = `If you're interested in frontend development:
1) Learn HTML, CSS, and modern JavaScript (ES6+).
2) Master React and one styling approach (Tailwind/CSS Modules).
3) Build 3 projects (portfolio, todo app, dashboard).
4) Share them on GitHub and LinkedIn.
Next steps: finish projects + prepare interview questions.`

	dataFallback = `For a career in data/ML:
1) Strengthen Python, statistics, and basic ML.
2) Learn pandas, scikit-learn, and PyTorch.
3) Do 2-3 projects with clear evaluation metrics.
Next steps: complete a Kaggle micro-project + write a case study.`

	genericFallback = `Here's a short starter plan:
1) Define your 6-12 month career goal.
2) List essential skills needed.
3) Pick 2-3 projects to showcase those skills.
4) Create a study schedule and track progress.
Tell me your background (education/experience) so I can refine this plan.`
)

// FallbackReply returns the rule-based reply for the given user text.
func FallbackReply(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "frontend"), strings.Contains(t, "react"), strings.Contains(t, "javascript"):
		return frontendFallback
	case strings.Contains(t, "data"), strings.Contains(t, "machine"), strings.Contains(t, "ai"):
		return dataFallback
	default:
		return genericFallback
	}
}

// FallbackTitle derives a title from the first five whitespace-separated
// tokens of the user text.
func FallbackTitle(text string) string {
	words := strings.Fields(text)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, " ")
}
