package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Yatra-App/internal/domain/model"
)

func testAttraction(id, name string) model.Attraction {
	return model.Attraction{ID: id, Name: name, Latitude: 30.0, Longitude: 79.0}
}

func TestPinBoard_InitialState(t *testing.T) {
	pb := NewPinBoard()

	assert.Empty(t, pb.SelectedID())
	assert.Empty(t, pb.HoveredID())
	assert.Nil(t, pb.Selected())
	assert.Equal(t, model.PinStateIdle, pb.StateOf("a"))
}

func TestPinBoard_SelectionExclusivity(t *testing.T) {
	pb := NewPinBoard()

	pb.Select(testAttraction("a", "Nainital"))
	pb.Select(testAttraction("b", "Rishikesh"))

	// 選択は常に高々1件で、後勝ち
	assert.Equal(t, "b", pb.SelectedID())
	assert.Equal(t, model.PinStateSelected, pb.StateOf("b"))
	assert.Equal(t, model.PinStateIdle, pb.StateOf("a"))
}

func TestPinBoard_SelectionSwapIsAtomic(t *testing.T) {
	pb := NewPinBoard()

	pb.Select(testAttraction("a", "Nainital"))
	pb.Select(testAttraction("b", "Rishikesh"))

	// パネルのバインド先は1回の遷移で切り替わり、空になる中間状態はない
	selected := pb.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "b", selected.ID)
	assert.Equal(t, "Rishikesh", selected.Name)
}

func TestPinBoard_HoverIndependentOfSelection(t *testing.T) {
	pb := NewPinBoard()

	pb.Select(testAttraction("a", "Nainital"))
	pb.HoverEnter("b")

	// 別スポットのホバーは選択に影響しない
	assert.Equal(t, "a", pb.SelectedID())
	assert.Equal(t, model.PinStateSelected, pb.StateOf("a"))
	assert.Equal(t, model.PinStateHovered, pb.StateOf("b"))

	pb.HoverExit("b")
	assert.Equal(t, "a", pb.SelectedID())
	assert.Equal(t, model.PinStateIdle, pb.StateOf("b"))
}

func TestPinBoard_SelectedWinsOverHovered(t *testing.T) {
	pb := NewPinBoard()

	pb.Select(testAttraction("a", "Nainital"))
	pb.HoverEnter("a")

	// 両フラグが立っている場合は選択が優先
	assert.Equal(t, model.PinStateSelected, pb.StateOf("a"))

	// ホバーが離れても選択は維持される
	pb.HoverExit("a")
	assert.Equal(t, model.PinStateSelected, pb.StateOf("a"))
}

func TestPinBoard_HoverExitOnlyAffectsMatchingID(t *testing.T) {
	pb := NewPinBoard()

	pb.HoverEnter("a")
	pb.HoverExit("b") // 不一致のIDは何もしない
	assert.Equal(t, "a", pb.HoveredID())

	pb.HoverExit("a")
	assert.Empty(t, pb.HoveredID())
}

func TestPinBoard_Clear(t *testing.T) {
	pb := NewPinBoard()

	pb.Select(testAttraction("a", "Nainital"))
	pb.HoverEnter("a")
	pb.Clear()

	// 解除されるのは選択のみでホバーは維持される
	assert.Empty(t, pb.SelectedID())
	assert.Equal(t, "a", pb.HoveredID())
	assert.Equal(t, model.PinStateHovered, pb.StateOf("a"))
}
