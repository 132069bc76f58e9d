package planning

// catalog holds the fixed AI-enablement ideas offered with every plan.
var catalog = []AIOpportunity{
	{
		ID:                 "AI001",
		Title:              "Smart Search with Natural Language",
		Description:        "Allow users to search using conversational queries instead of keywords",
		Category:           OpportunityUserValue,
		UserBenefit:        "Find information faster with natural language",
		BusinessValue:      "Increased engagement and user satisfaction",
		TechnicalBenefit:   "Better search relevance",
		Approach:           "Integrate semantic search with LLM query understanding",
		IntegrationsNeeded: []string{"OpenAI/Anthropic API", "Vector database"},
		EstimatedHours:     16,
		Complexity:         ComplexityMedium,
		Priority:           PriorityHigh,
		QuickWin:           false,
	},
	{
		ID:                 "AI002",
		Title:              "AI-Powered Form Assistance",
		Description:        "Auto-complete and validate form inputs intelligently",
		Category:           OpportunityUserValue,
		UserBenefit:        "Faster form completion with fewer errors",
		BusinessValue:      "Higher conversion rates",
		TechnicalBenefit:   "Better data quality",
		Approach:           "LLM-based field suggestions with validation",
		IntegrationsNeeded: []string{"LLM API"},
		EstimatedHours:     8,
		Complexity:         ComplexityLow,
		Priority:           PriorityHigh,
		QuickWin:           true,
	},
	{
		ID:                 "AI003",
		Title:              "Content Summarization",
		Description:        "Auto-generate summaries of long content or documents",
		Category:           OpportunityUserValue,
		UserBenefit:        "Quick understanding of key points",
		BusinessValue:      "Improved user productivity",
		TechnicalBenefit:   "Simple API integration",
		Approach:           "LLM summarization with configurable length",
		IntegrationsNeeded: []string{"LLM API"},
		EstimatedHours:     4,
		Complexity:         ComplexityLow,
		Priority:           PriorityMedium,
		QuickWin:           true,
	},
	{
		ID:                 "AI004",
		Title:              "Intelligent Error Messages",
		Description:        "Analyze errors and suggest fixes to users",
		Category:           OpportunityUserValue,
		UserBenefit:        "Self-service problem resolution",
		BusinessValue:      "Reduced support costs",
		TechnicalBenefit:   "Better error handling UX",
		Approach:           "Error pattern analysis with LLM suggestions",
		IntegrationsNeeded: []string{"LLM API", "Error tracking"},
		EstimatedHours:     12,
		Complexity:         ComplexityMedium,
		Priority:           PriorityMedium,
		QuickWin:           false,
	},
	{
		ID:                 "AI005",
		Title:              "Automated Documentation",
		Description:        "Generate and maintain docs from code and usage",
		Category:           OpportunityEfficiency,
		UserBenefit:        "Always current documentation",
		BusinessValue:      "Faster onboarding, reduced debt",
		TechnicalBenefit:   "Docs stay in sync with code",
		Approach:           "Analyze code and generate markdown/HTML docs",
		IntegrationsNeeded: []string{"LLM API", "Build pipeline"},
		EstimatedHours:     12,
		Complexity:         ComplexityMedium,
		Priority:           PriorityMedium,
		QuickWin:           false,
	},
	{
		ID:                 "AI006",
		Title:              "Smart Notifications",
		Description:        "Decide what to notify users about and when",
		Category:           OpportunityUserValue,
		UserBenefit:        "Relevant notifications, less noise",
		BusinessValue:      "Higher engagement rates",
		TechnicalBenefit:   "Personalization without complex rules",
		Approach:           "ML model for notification relevance scoring",
		IntegrationsNeeded: []string{"LLM API", "User analytics"},
		EstimatedHours:     20,
		Complexity:         ComplexityHigh,
		Priority:           PriorityLow,
		QuickWin:           false,
	},
	{
		ID:                 "AI007",
		Title:              "Code Review Assistant",
		Description:        "Review pull requests for issues and suggest improvements",
		Category:           OpportunityEfficiency,
		UserBenefit:        "Faster, more thorough code review",
		BusinessValue:      "Higher code quality, fewer bugs",
		TechnicalBenefit:   "Consistent review standards",
		Approach:           "LLM analyzes diffs and comments on pull requests",
		IntegrationsNeeded: []string{"GitHub API", "LLM API"},
		EstimatedHours:     16,
		Complexity:         ComplexityMedium,
		Priority:           PriorityHigh,
		QuickWin:           false,
	},
	{
		ID:                 "AI008",
		Title:              "Personalized Recommendations",
		Description:        "Suggest relevant content and actions based on user behavior",
		Category:           OpportunityUserValue,
		UserBenefit:        "Discover relevant content proactively",
		BusinessValue:      "Higher engagement and retention",
		TechnicalBenefit:   "Better content utilization",
		Approach:           "Collaborative filtering enhanced with LLM",
		IntegrationsNeeded: []string{"Analytics", "LLM API", "Vector DB"},
		EstimatedHours:     24,
		Complexity:         ComplexityHigh,
		Priority:           PriorityMedium,
		QuickWin:           false,
	},
}

// Catalog returns a copy of the fixed opportunity catalog in catalog order.
func Catalog() []AIOpportunity {
	out := make([]AIOpportunity, len(catalog))
	for i, opp := range catalog {
		opp.IntegrationsNeeded = append([]string(nil), opp.IntegrationsNeeded...)
		out[i] = opp
	}
	return out
}
