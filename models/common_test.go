package models

import "testing"

func TestIntListContains(t *testing.T) {
	order := IntList{3, 1, 7}
	if !order.Contains(7) {
		t.Error("Contains(7) = false, want true")
	}
	if order.Contains(2) {
		t.Error("Contains(2) = true, want false")
	}
	if IntList(nil).Contains(1) {
		t.Error("nil list must contain nothing")
	}
}
