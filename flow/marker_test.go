package flow

import "testing"

func numbering(t *testing.T, levels ...LevelDef) *Numbering {
	t.Helper()
	return NewNumbering([]NumDef{{NumID: "n", Levels: levels}})
}

func TestMarkerFor_DecimalSequence(t *testing.T) {
	num := numbering(t, LevelDef{Level: 0, NumFmt: "decimal", LvlText: "%1."})

	for i, want := range []string{"1.", "2.", "3."} {
		m := num.MarkerFor("n", 0)
		if m == nil {
			t.Fatalf("marker %d is nil", i)
		}
		if m.Text != want {
			t.Errorf("marker %d = %q, want %q", i, m.Text, want)
		}
	}
}

func TestMarkerFor_NumberFormats(t *testing.T) {
	tests := []struct {
		numFmt string
		third  string
	}{
		{"decimal", "3."},
		{"lowerRoman", "iii."},
		{"upperRoman", "III."},
		{"lowerLetter", "c."},
		{"upperLetter", "C."},
	}
	for _, tt := range tests {
		t.Run(tt.numFmt, func(t *testing.T) {
			num := numbering(t, LevelDef{Level: 0, NumFmt: tt.numFmt, LvlText: "%1."})
			num.MarkerFor("n", 0)
			num.MarkerFor("n", 0)
			m := num.MarkerFor("n", 0)
			if m.Text != tt.third {
				t.Errorf("third marker = %q, want %q", m.Text, tt.third)
			}
		})
	}
}

func TestMarkerFor_MultiLevelTemplate(t *testing.T) {
	num := numbering(t,
		LevelDef{Level: 0, NumFmt: "decimal", LvlText: "%1."},
		LevelDef{Level: 1, NumFmt: "decimal", LvlText: "%1.%2."},
	)

	num.MarkerFor("n", 0) // 1.
	num.MarkerFor("n", 1) // 1.1.
	m := num.MarkerFor("n", 1)
	if m.Text != "1.2." {
		t.Errorf("marker = %q, want 1.2.", m.Text)
	}

	// Advancing the outer level resets the inner counter.
	num.MarkerFor("n", 0) // 2.
	m = num.MarkerFor("n", 1)
	if m.Text != "2.1." {
		t.Errorf("marker after outer advance = %q, want 2.1.", m.Text)
	}
}

func TestMarkerFor_StartValue(t *testing.T) {
	num := numbering(t, LevelDef{Level: 0, NumFmt: "decimal", LvlText: "%1)", Start: 5})
	m := num.MarkerFor("n", 0)
	if m.Text != "5)" {
		t.Errorf("marker = %q, want 5)", m.Text)
	}
}

func TestMarkerFor_Bullets(t *testing.T) {
	t.Run("literal bullet text kept", func(t *testing.T) {
		num := numbering(t, LevelDef{Level: 0, NumFmt: "bullet", LvlText: "–"})
		if m := num.MarkerFor("n", 0); m.Text != "–" {
			t.Errorf("marker = %q, want –", m.Text)
		}
	})
	t.Run("private use area falls back by level", func(t *testing.T) {
		num := numbering(t, LevelDef{Level: 1, NumFmt: "bullet", LvlText: ""})
		if m := num.MarkerFor("n", 1); m.Text != "○" {
			t.Errorf("marker = %q, want ○", m.Text)
		}
	})
}

func TestMarkerFor_UnknownIDOrLevel(t *testing.T) {
	num := numbering(t, LevelDef{Level: 0, NumFmt: "decimal"})
	if m := num.MarkerFor("other", 0); m != nil {
		t.Errorf("unknown numId produced marker %+v", m)
	}
	if m := num.MarkerFor("n", 3); m != nil {
		t.Errorf("undefined level produced marker %+v", m)
	}
	if m := num.MarkerFor("n", 99); m != nil {
		t.Errorf("out-of-range level produced marker %+v", m)
	}
}

func TestMarkerFor_ExplicitFontFlag(t *testing.T) {
	num := numbering(t,
		LevelDef{Level: 0, NumFmt: "bullet", LvlText: "•", FontFamily: "Symbol"},
		LevelDef{Level: 1, NumFmt: "bullet", LvlText: "•"},
	)
	if m := num.MarkerFor("n", 0); !m.ExplicitFont {
		t.Error("level with font should set ExplicitFont")
	}
	if m := num.MarkerFor("n", 1); m.ExplicitFont {
		t.Error("level without font should not set ExplicitFont")
	}
}

func TestNumbering_Reset(t *testing.T) {
	num := numbering(t, LevelDef{Level: 0, NumFmt: "decimal", LvlText: "%1."})
	num.MarkerFor("n", 0)
	num.MarkerFor("n", 0)
	num.Reset()
	if m := num.MarkerFor("n", 0); m.Text != "1." {
		t.Errorf("marker after reset = %q, want 1.", m.Text)
	}
}
