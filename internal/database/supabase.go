package database

import (
	"fmt"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient 観光スポットカタログ（attractionsテーブル）への接続を保持するラッパー
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient 環境変数の接続情報からSupabaseクライアントを作成
// SUPABASE_URLとSUPABASE_ANON_KEYの両方が必要で、どちらかが欠けるとエラーを返す
// （呼び出し側はインメモリカタログにフォールバックする）
func NewSupabaseClient() (*SupabaseClient, error) {
	url := os.Getenv("SUPABASE_URL")
	anonKey := os.Getenv("SUPABASE_ANON_KEY")

	if url == "" || anonKey == "" {
		return nil, fmt.Errorf("スポットカタログの接続情報が不足しています（SUPABASE_URLとSUPABASE_ANON_KEYを設定してください）")
	}

	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの作成に失敗: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient 内部のsupabase.Clientを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck スポットカタログへの接続状態を確認する
func (sc *SupabaseClient) HealthCheck() error {
	if sc.Client == nil {
		return fmt.Errorf("Supabaseクライアントが未初期化です")
	}

	fmt.Printf("📚 Attraction catalogue backed by Supabase: %s\n", os.Getenv("SUPABASE_URL"))
	return nil
}
