package viz

import (
	"strings"
	"testing"
)

func TestCanvas_SetAndCellBits(t *testing.T) {
	c := NewCanvas(4, 2)

	if c.PixelWidth() != 8 || c.PixelHeight() != 8 {
		t.Fatalf("pixel dims = %dx%d, want 8x8", c.PixelWidth(), c.PixelHeight())
	}

	c.Set(0, 0)
	if c.CellBits(0, 0) != 0x01 {
		t.Errorf("cell bits = %#x, want 0x01", c.CellBits(0, 0))
	}

	c.Set(1, 3)
	if c.CellBits(0, 0) != 0x01|0x80 {
		t.Errorf("cell bits = %#x, want 0x81", c.CellBits(0, 0))
	}

	// out-of-range writes are ignored
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)
	if c.CellBits(50, 50) != 0 {
		t.Error("out of range cell should read as empty")
	}
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Set(3, 7)
	c.Clear()
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if c.CellBits(col, row) != 0 {
				t.Fatalf("cell (%d,%d) not cleared", col, row)
			}
		}
	}
}

func TestCanvas_LineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39)

	if c.CellBits(0, 0)&0x01 == 0 {
		t.Error("line start not set")
	}
	if c.CellBits(9, 9)&0x80 == 0 {
		t.Error("line end not set")
	}
}

func TestCanvas_CircleDegenerate(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Circle(4, 4, 0)
	if c.CellBits(2, 1) == 0 {
		t.Error("zero-radius circle should set the center pixel")
	}
}

func TestCanvas_String(t *testing.T) {
	c := NewCanvas(3, 2)
	out := c.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("line width = %d runes, want 3", len([]rune(line)))
		}
	}
}
