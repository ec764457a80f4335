package notify

import (
	"log"
	"sync"
	"time"
)

// Notice ユーザー向け通知1件分
type Notice struct {
	Level   string    `json:"level"` // "success" or "error"
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// ToastNotifier 通知をバッファに貯めるNotifierの実装
// フロントエンドがポーリングで取り出してトースト表示する想定
type ToastNotifier struct {
	mu      sync.Mutex
	pending []Notice
}

// NewToastNotifier 新しいToastNotifierインスタンスを作成
func NewToastNotifier() *ToastNotifier {
	return &ToastNotifier{}
}

// Success は成功通知を送る
func (n *ToastNotifier) Success(message string) {
	n.append("success", message)
}

// Error は失敗通知を送る
func (n *ToastNotifier) Error(message string) {
	n.append("error", message)
}

// Drain は未配信の通知をすべて取り出してバッファを空にする
func (n *ToastNotifier) Drain() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	result := n.pending
	n.pending = nil
	if result == nil {
		result = []Notice{}
	}
	return result
}

func (n *ToastNotifier) append(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	log.Printf("🔔 通知 (%s): %s", level, message)
	n.pending = append(n.pending, Notice{
		Level:   level,
		Message: message,
		At:      time.Now(),
	})
}
