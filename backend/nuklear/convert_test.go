package nuklear

import (
	"testing"

	"github.com/golang-ui/nuklear/nk"

	"github.com/go-theft-auto/nkdemo"
)

func TestFlag(t *testing.T) {
	if flag(true) != 1 || flag(false) != 0 {
		t.Errorf("flag(true), flag(false) = %d, %d", flag(true), flag(false))
	}
}

func TestWindowFlags(t *testing.T) {
	if got := windowFlags(0); got != 0 {
		t.Errorf("windowFlags(0) = %#x", got)
	}

	seen := map[nk.Flags]nkdemo.WindowFlags{}
	for _, b := range windowFlagBits {
		got := windowFlags(b.demo)
		if got != b.nk {
			t.Errorf("windowFlags(%b) = %#x, want %#x", b.demo, got, b.nk)
		}
		if prev, ok := seen[got]; ok {
			t.Errorf("%b and %b map to the same Nuklear flag", prev, b.demo)
		}
		seen[got] = b.demo
	}

	all := nkdemo.NewUIState().WindowFlags()
	want := nk.Flags(nk.WindowBorder) | nk.Flags(nk.WindowMovable) | nk.Flags(nk.WindowScalable) |
		nk.Flags(nk.WindowMinimizable) | nk.Flags(nk.WindowTitle)
	if got := windowFlags(all); got != want {
		t.Errorf("default Overview flags = %#x, want %#x", got, want)
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, c := range []nkdemo.Color{nkdemo.ColorBlack, nkdemo.ColorBlue, {R: 28, G: 48, B: 62, A: 255}, {}} {
		if got := fromColor(color(c)); got != c {
			t.Errorf("fromColor(color(%+v)) = %+v", c, got)
		}
	}
}

func TestTextAlign(t *testing.T) {
	if textAlign(nkdemo.TextLeft) == textAlign(nkdemo.TextRight) ||
		textAlign(nkdemo.TextLeft) == textAlign(nkdemo.TextCentered) {
		t.Error("alignments collapse onto the same Nuklear flags")
	}
	if textAlign(nkdemo.TextAlign(42)) != textAlign(nkdemo.TextLeft) {
		t.Error("unknown alignment does not fall back to left")
	}
}

func TestSymbol(t *testing.T) {
	seen := map[nk.SymbolType]bool{}
	for s := nkdemo.SymbolCircleSolid; s <= nkdemo.SymbolTriangleRight; s++ {
		got := symbol(s)
		if got == nk.SymbolNone {
			t.Errorf("symbol(%d) = none", s)
		}
		if seen[got] {
			t.Errorf("symbol(%d) duplicates another symbol", s)
		}
		seen[got] = true
	}
}
