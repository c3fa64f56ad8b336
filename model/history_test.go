package model

import "testing"

func TestHistoryDetectsRepeat(t *testing.T) {
	block, _ := NewGridFrom([][]CellState{
		{Dead, Dead, Dead, Dead},
		{Dead, Alive, Alive, Dead},
		{Dead, Alive, Alive, Dead},
		{Dead, Dead, Dead, Dead},
	})
	other, _ := NewGrid(4)

	h := NewHistory(0)
	if h.IsStagnant(block) {
		t.Fatal("empty history reported stagnation")
	}
	h.Record(block)
	again, _ := NewGridFrom(block.Snapshot())
	if !h.IsStagnant(again) {
		t.Fatal("repeat of recorded generation not detected")
	}
	if h.IsStagnant(other) {
		t.Fatal("unseen generation reported stagnant")
	}
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	first, _ := NewGridFrom([][]CellState{{Alive}})
	second, _ := NewGridFrom([][]CellState{{Dead}})
	third, _ := NewGrid(2)

	h.Record(first)
	h.Record(second)
	h.Record(third)

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if h.IsStagnant(first) {
		t.Fatal("oldest entry should have been dropped")
	}
	if !h.IsStagnant(third) {
		t.Fatal("latest entry missing")
	}
}
