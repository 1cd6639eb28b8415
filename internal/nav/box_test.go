package nav

import (
	"testing"

	"github.com/dbtea/dbtea/internal/models"
)

func TestTableMotionClamps(t *testing.T) {
	b := NewDataTableBox()
	b.SetTableSize(5, 3)

	for i := 0; i < 20; i++ {
		b.ApplyMotion(models.DirDown)
	}
	if b.Table.Row != 4 {
		t.Errorf("row = %d, want 4", b.Table.Row)
	}
	for i := 0; i < 20; i++ {
		b.ApplyMotion(models.DirRight)
	}
	if b.Table.Col != 2 {
		t.Errorf("col = %d, want 2", b.Table.Col)
	}
	for i := 0; i < 20; i++ {
		b.ApplyMotion(models.DirUp)
		b.ApplyMotion(models.DirLeft)
	}
	if b.Table.Row != 0 || b.Table.Col != 0 {
		t.Errorf("cursor = (%d,%d), want origin", b.Table.Row, b.Table.Col)
	}
}

func TestTableMotionReportsMovement(t *testing.T) {
	b := NewDataTableBox()
	b.SetTableSize(2, 1)

	if !b.ApplyMotion(models.DirDown) {
		t.Error("motion within bounds reported no movement")
	}
	if b.ApplyMotion(models.DirDown) {
		t.Error("clamped motion reported movement")
	}
}

func TestEmptyTableMotion(t *testing.T) {
	b := NewDataTableBox()
	if b.ApplyMotion(models.DirDown) {
		t.Error("empty table moved")
	}
	if b.Table.Row != 0 || b.Table.Col != 0 {
		t.Errorf("cursor = (%d,%d), want origin", b.Table.Row, b.Table.Col)
	}
}

func TestSetTableSizeClampsCursor(t *testing.T) {
	b := NewDataTableBox()
	b.SetTableSize(10, 5)
	b.Table.Row, b.Table.Col = 9, 4
	b.SetTableSize(3, 2)
	if b.Table.Row != 2 || b.Table.Col != 1 {
		t.Errorf("cursor = (%d,%d), want (2,1)", b.Table.Row, b.Table.Col)
	}
}

func TestListMotion(t *testing.T) {
	b := NewTreeBox()
	b.SetListLen(3)

	b.ApplyMotion(models.DirDown)
	b.ApplyMotion(models.DirDown)
	if b.List.Index != 2 {
		t.Errorf("index = %d, want 2", b.List.Index)
	}
	if b.ApplyMotion(models.DirDown) {
		t.Error("clamped list motion reported movement")
	}
	// Horizontal motions do not move a list cursor.
	if b.ApplyMotion(models.DirRight) {
		t.Error("horizontal motion moved a list")
	}
}

func TestSetListLenClamps(t *testing.T) {
	b := NewListBox()
	b.SetListLen(5)
	b.List.Index = 4
	b.SetListLen(2)
	if b.List.Index != 1 {
		t.Errorf("index = %d, want 1", b.List.Index)
	}
	b.SetListLen(0)
	if b.List.Index != 0 {
		t.Errorf("index = %d, want 0", b.List.Index)
	}
}
