package model

// BudgetConstants 予算レベルの定数
const (
	BudgetLow    = "Low"
	BudgetMedium = "Medium"
	BudgetHigh   = "High"
)

// BudgetBaseRates 予算レベルごとの1日あたり基準料金（INR）
var BudgetBaseRates = map[string]int{
	BudgetLow:    10000,
	BudgetMedium: 20000,
	BudgetHigh:   35000,
}

// IsValidBudget 予算レベルが定義済みかチェック
func IsValidBudget(budget string) bool {
	_, ok := BudgetBaseRates[budget]
	return ok
}

// CategoryConstants スポットカテゴリの定数
const (
	CategoryAll       = "All"
	CategoryNature    = "Nature"
	CategorySpiritual = "Spiritual"
	CategoryWildlife  = "Wildlife"
	CategoryAdventure = "Adventure"
	CategoryCity      = "City"
)

// AttractionCategories フィルタUIに表示するカテゴリの一覧
var AttractionCategories = []string{
	CategoryAll,
	CategoryNature,
	CategorySpiritual,
	CategoryWildlife,
	CategoryAdventure,
	CategoryCity,
}

// 旅程の初期値（シードDayと新規レコードのデフォルト）
const (
	SeedDayTitle          = "Day 1: Arrival & Exploration"
	DefaultDayTitleFormat = "Day %d: Sightseeing"
	DefaultActivityTime   = "10:00 AM"
	DefaultActivityName   = "New Activity"
	DefaultActivityPlace  = "Location"
)
