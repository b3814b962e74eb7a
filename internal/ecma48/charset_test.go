package ecma48

import "testing"

func TestTranslateUKPound(t *testing.T) {
	if got := translate(CharsetUK, 0x23); got != '£' {
		t.Errorf("UK charset 0x23 = %q, want £", got)
	}
	if got := translate(CharsetUK, 'A'); got != 'A' {
		t.Errorf("UK charset 'A' = %q, want unchanged", got)
	}
}

func TestTranslateDECLineDrawing(t *testing.T) {
	if got := translate(CharsetDECLineDrawing, 0x71); got != '─' {
		t.Errorf("DEC line drawing 0x71 = %q, want ─", got)
	}
	if got := translate(CharsetDECLineDrawing, 'A'); got != 'A' {
		t.Errorf("DEC line drawing 'A' = %q, want unchanged", got)
	}
}

func TestTranslateROMSpecialAndVT52GraphicsReuseLineDrawing(t *testing.T) {
	for _, set := range []CharacterSet{CharsetROMSpecial, CharsetVT52Graphics} {
		if got := translate(set, 0x71); got != '─' {
			t.Errorf("charset %v at 0x71 = %q, want ─ (same as DECLineDrawing)", set, got)
		}
	}
}

func TestTranslateROMIsIdentity(t *testing.T) {
	if got := translate(CharsetROM, 'Z'); got != 'Z' {
		t.Errorf("ROM charset 'Z' = %q, want unchanged", got)
	}
}

func TestTranslateNRCGermanUmlauts(t *testing.T) {
	cases := map[rune]rune{
		0x5B: 'Ä',
		0x5C: 'Ö',
		0x5D: 'Ü',
		0x7B: 'ä',
		0x7C: 'ö',
		0x7D: 'ü',
		0x7E: 'ß',
	}
	for in, want := range cases {
		if got := translate(CharsetNRCGerman, in); got != want {
			t.Errorf("NRC German %#x = %q, want %q", in, got, want)
		}
	}
	if got := translate(CharsetNRCGerman, 'A'); got != 'A' {
		t.Errorf("NRC German 'A' = %q, want unchanged", got)
	}
}

func TestTranslateEachNRCSetRemapsSomethingDistinct(t *testing.T) {
	sets := []CharacterSet{
		CharsetNRCDutch, CharsetNRCFinnish, CharsetNRCFrench,
		CharsetNRCFrenchCanadian, CharsetNRCGerman, CharsetNRCItalian,
		CharsetNRCSwedish,
	}
	for _, set := range sets {
		table, ok := nrcTables[set]
		if !ok || len(table) == 0 {
			t.Errorf("expected charset %v to have a non-empty NRC substitution table", set)
			continue
		}
		for in, want := range table {
			if got := translate(set, in); got != want {
				t.Errorf("charset %v at %#x = %q, want %q", set, in, got, want)
			}
		}
	}
}

func TestTranslateDECSupplemental(t *testing.T) {
	if got := translate(CharsetDECSupplemental, 0xA4); got != '$' {
		t.Errorf("DEC supplemental 0xA4 = %q, want $", got)
	}
	if got := translate(CharsetDECSupplemental, 0x41); got != 0x41 {
		t.Errorf("DEC supplemental unmapped code point should pass through, got %q", got)
	}
}
