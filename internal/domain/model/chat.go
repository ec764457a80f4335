package model

// ChatRequest 旅行アシスタントへの質問
type ChatRequest struct {
	Query string `json:"query" validate:"required"`
}

// ChatResponse アシスタントの回答（出典と次の質問候補つき）
type ChatResponse struct {
	Response    string       `json:"response"`
	Sources     []ChatSource `json:"sources"`
	Suggestions []string     `json:"suggestions"`
}

// ChatSource 回答の出典情報
type ChatSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
