package repository

// Notifier はユーザー向け通知（トースト）の送り先
// 致命的エラーとしては扱わず、呼び出し側の状態には一切影響しない
type Notifier interface {
	// Success は成功通知を送る
	Success(message string)
	// Error は失敗通知を送る
	Error(message string)
}
