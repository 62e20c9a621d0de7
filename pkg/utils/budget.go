package utils

var budgetLabels = []string{"$", "$$", "$$$", "$$$$"}

// BudgetLabel maps a 1-4 budget tier to its display label. Out-of-range
// tiers render as the mid-range "$$".
func BudgetLabel(level int) string {
	if level >= 1 && level <= len(budgetLabels) {
		return budgetLabels[level-1]
	}
	return "$$"
}
