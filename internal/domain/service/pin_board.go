package service

import (
	"sync"

	"Yatra-App/internal/domain/model"
)

// PinBoard はマップ上のピンの選択・ホバー状態を管理する状態機械
// 選択は常に高々1件でホバーとは直交する（ホバーの変化は選択に影響しない）
// ビルダーと同じく状態は排他的に所有し、他コンポーネントからの直接変更は不可
type PinBoard struct {
	mu       sync.Mutex
	selected *model.Attraction // 選択中のスポット（詳細パネルにバインドされるレコード）
	hovered  string            // ホバー中のスポットID（空文字列=なし）
}

// NewPinBoard は選択もホバーもない初期状態のPinBoardを作成
func NewPinBoard() *PinBoard {
	return &PinBoard{}
}

// Select は指定スポットを選択状態にする
// 以前の選択は同時に解除され、詳細パネルのバインド先は1回の遷移で切り替わる
// （パネルが空になる中間状態は観測されない）
func (pb *PinBoard) Select(a model.Attraction) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.selected = &a
}

// Clear は選択を解除する（ホバー状態は変更しない）
func (pb *PinBoard) Clear() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.selected = nil
}

// HoverEnter は指定IDのホバーフラグを立てる
// 別のスポットが選択中でもその選択には影響しない
func (pb *PinBoard) HoverEnter(id string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.hovered = id
}

// HoverExit は指定IDのホバーフラグを下ろす（即時、遅延なし）
// 別IDがホバー中の場合は何もしない
func (pb *PinBoard) HoverExit(id string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.hovered == id {
		pb.hovered = ""
	}
}

// Selected は選択中のスポットのスナップショットを返す（なければnil）
func (pb *PinBoard) Selected() *model.Attraction {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.selected == nil {
		return nil
	}
	c := *pb.selected
	return &c
}

// SelectedID は選択中のスポットIDを返す（なければ空文字列）
func (pb *PinBoard) SelectedID() string {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.selected == nil {
		return ""
	}
	return pb.selected.ID
}

// HoveredID はホバー中のスポットIDを返す（なければ空文字列）
func (pb *PinBoard) HoveredID() string {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.hovered
}

// StateOf は指定IDのピンの表示状態を返す
// 選択とホバーが両方立っている場合は選択が優先（ホバーは追加の表示効果を持たない）
func (pb *PinBoard) StateOf(id string) model.PinState {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if pb.selected != nil && pb.selected.ID == id {
		return model.PinStateSelected
	}
	if pb.hovered == id && id != "" {
		return model.PinStateHovered
	}
	return model.PinStateIdle
}
