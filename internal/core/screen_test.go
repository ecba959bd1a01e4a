package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '#', ColorOrange)
	if c := s.GetCell(5, 5); c.Rune != '#' || c.Color != ColorOrange {
		t.Errorf("GetCell(5, 5) = %+v, expected '#' in orange", c)
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(100, 0, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenBlit(t *testing.T) {
	dst := NewScreen(6, 3)
	src := NewScreen(3, 2)
	src.DrawTextColored(0, 0, "abc", ColorCyan)
	src.DrawTextColored(0, 1, "def", ColorCyan)

	dst.Blit(src, 4, 1)

	if got := dst.Row(1); got != "    ab" {
		t.Errorf("Row(1) = %q, expected %q", got, "    ab")
	}
	if got := dst.Row(2); got != "    de" {
		t.Errorf("Row(2) = %q, expected %q", got, "    de")
	}
	if dst.GetCell(4, 1).Color != ColorCyan {
		t.Error("Blit() should keep source colors")
	}
}

func TestScreenClone(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawText(0, 0, "mars")

	c := s.Clone()
	s.Clear()

	if got := c.Row(0); got != "mars" {
		t.Errorf("Clone().Row(0) = %q, expected %q", got, "mars")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "hello")

	s.Resize(3, 3)

	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize() gave %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "hel" {
		t.Errorf("Row(0) = %q, expected %q", got, "hel")
	}
}

func TestScreenDrawBoxAndString(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	lines := strings.Split(s.String(), "\n")
	expected := []string{"┌──┐", "│  │", "└──┘"}
	if len(lines) != len(expected) {
		t.Fatalf("String() has %d lines, expected %d", len(lines), len(expected))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorDefault)

	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q, expected %q", got, "    ab    ")
	}
}
