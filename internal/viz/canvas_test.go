package viz

import (
	"strings"
	"testing"
)

func TestNewCanvasBlank(t *testing.T) {
	c := NewCanvas(4, 2)

	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if line != strings.Repeat(string(rune(blank)), 4) {
			t.Errorf("expected blank row, got %q", line)
		}
	}
	if c.SubWidth() != 8 || c.SubHeight() != 8 {
		t.Errorf("unexpected sub-pixel size %dx%d", c.SubWidth(), c.SubHeight())
	}
}

func TestCanvasSet(t *testing.T) {
	tests := []struct {
		x, y     int
		row, col int
		want     rune
	}{
		{0, 0, 0, 0, 0x2801},
		{1, 0, 0, 0, 0x2808},
		{0, 3, 0, 0, 0x2840},
		{1, 3, 0, 0, 0x2880},
		{3, 5, 1, 1, 0x2810},
	}

	for _, tt := range tests {
		c := NewCanvas(2, 2)
		c.Set(tt.x, tt.y)
		if got := c.Grid[tt.row][tt.col]; got != tt.want {
			t.Errorf("Set(%d, %d): expected %U, got %U", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestCanvasSetOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	before := c.String()

	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)

	if c.String() != before {
		t.Error("out of range pixels should be dropped")
	}
}

func TestCanvasPen(t *testing.T) {
	c := NewCanvas(2, 1)

	c.SetPen(InkAxis)
	c.Set(0, 0)
	c.SetPen(InkHighlight)
	c.Set(2, 0)
	c.Set(1, 1)

	if c.Inks[0][0] != InkHighlight {
		t.Errorf("last dot in a cell should set its ink, got %d", c.Inks[0][0])
	}
	if c.Inks[0][1] != InkHighlight {
		t.Errorf("expected highlight ink, got %d", c.Inks[0][1])
	}

	c.Clear()
	if c.Inks[0][0] != InkNone || c.Grid[0][0] != blank {
		t.Error("clear should reset dots and inks")
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0)

	for col := 0; col < 4; col++ {
		if c.Grid[0][col] != 0x2809 {
			t.Errorf("col %d: expected top row dots, got %U", col, c.Grid[0][col])
		}
	}

	c.Clear()
	c.DrawLine(0, 3, 0, 0)
	if c.Grid[0][0] != 0x2847 {
		t.Errorf("expected full left column, got %U", c.Grid[0][0])
	}
}

func TestDrawDisc(t *testing.T) {
	c := NewCanvas(2, 1)
	c.DrawDisc(1, 1, 1)

	// (1,0) (0,1) (1,1) (2,1) (1,2)
	if c.Grid[0][0] != 0x2800|0x8|0x2|0x10|0x20 {
		t.Errorf("unexpected disc dots %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2802 {
		t.Errorf("unexpected spill dots %U", c.Grid[0][1])
	}
}

func TestRenderKeepsDots(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetPen(InkNormal)
	c.Set(0, 0)
	c.SetPen(InkHighlight)
	c.Set(5, 7)

	out := c.Render(ThemeClassic)
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	for _, r := range []rune{0x2801, 0x2880} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("expected %U in rendered output", r)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != ThemeClassic.Name {
		t.Error("unknown theme should fall back to classic")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names should cover every theme")
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 4); got != "────" {
		t.Errorf("expected flat line, got %q", got)
	}
	if got := Sparkline([]float64{0, 1, 2, 3, 7}, 2); got != "▁█" {
		t.Errorf("expected newest values only, got %q", got)
	}
}
