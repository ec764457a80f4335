package repository

import (
	"Yatra-App/internal/domain/model"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

// FirestoreShareRepository Firestoreを使用した旅程共有スナップショットリポジトリ
// スナップショットはexpireAtフィールドのTTLポリシーで自動削除される
type FirestoreShareRepository struct {
	client *firestore.Client
}

// NewFirestoreShareRepository 新しいFirestoreShareRepositoryインスタンスを作成
func NewFirestoreShareRepository(client *firestore.Client) *FirestoreShareRepository {
	return &FirestoreShareRepository{
		client: client,
	}
}

// SaveSnapshot は旅程のスナップショットをFirestoreに保存し、share_idを生成して返す
func (r *FirestoreShareRepository) SaveSnapshot(ctx context.Context, days []model.ItineraryDay, budget string, ttlHours int) (*model.SharedItinerary, error) {
	shareID := fmt.Sprintf("share_%s", uuid.New().String())

	shared := &model.SharedItinerary{
		ShareID: shareID,
		Days:    days,
		Budget:  budget,
	}

	snapshot := shared.ToSnapshot(ttlHours)

	_, err := r.client.Collection("sharedItineraries").Doc(shareID).Set(ctx, snapshot)
	if err != nil {
		log.Printf("❌ Failed to save itinerary snapshot %s: %v", shareID, err)
		return nil, fmt.Errorf("旅程スナップショットの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Itinerary snapshot saved: %s (expires in %d hours)", shareID, ttlHours)
	return shared, nil
}

// GetSnapshot は指定されたshare_idの旅程スナップショットをFirestoreから取得する
func (r *FirestoreShareRepository) GetSnapshot(ctx context.Context, shareID string) (*model.SharedItinerary, error) {
	doc, err := r.client.Collection("sharedItineraries").Doc(shareID).Get(ctx)
	if err != nil {
		// Firestoreのエラータイプをチェック
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("共有された旅程が見つかりません（有効期限切れまたは無効なID）: %s", shareID)
		}
		return nil, fmt.Errorf("共有された旅程の取得に失敗しました: %w", err)
	}

	var snapshot model.FirestoreItinerarySnapshot
	if err := doc.DataTo(&snapshot); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	// TTLポリシーの削除が遅延する場合があるため、期限切れは取得時にも弾く
	if !snapshot.ExpireAt.IsZero() && snapshot.ExpireAt.Before(time.Now()) {
		return nil, fmt.Errorf("共有された旅程が見つかりません（有効期限切れまたは無効なID）: %s", shareID)
	}

	return snapshot.ToSharedItinerary(shareID), nil
}
