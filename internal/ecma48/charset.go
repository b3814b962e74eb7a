package ecma48

// decLineDrawing maps the VT100 special-graphics character set: code
// points 0x5F..0x7E translate to line-drawing glyphs; everything else
// passes through unchanged. The VT100 "alternate ROM special graphics"
// set (designator '2') and VT52 graphics mode use this same mapping.
var decLineDrawing = map[rune]rune{
	0x5F: ' ',
	0x60: '♦',
	0x61: '▒',
	0x62: '\t',
	0x63: '\f',
	0x64: '\r',
	0x65: '\n',
	0x66: '°',
	0x67: '±',
	0x68: '\n',
	0x69: '\v',
	0x6A: '┘',
	0x6B: '┐',
	0x6C: '┌',
	0x6D: '└',
	0x6E: '┼',
	0x6F: '⎺',
	0x70: '⎻',
	0x71: '─',
	0x72: '⎼',
	0x73: '⎽',
	0x74: '├',
	0x75: '┤',
	0x76: '┴',
	0x77: '┬',
	0x78: '│',
	0x79: '≤',
	0x7A: '≥',
	0x7B: 'π',
	0x7C: '≠',
	0x7D: '£',
	0x7E: '·',
}

// translateUK: the UK set differs from US-ASCII only in that 0x23 ('#') becomes the pound
// sign.
func translateUK(r rune) rune {
	if r == 0x23 {
		return '£'
	}
	return r
}

// nrcTables holds the per-set substitutions for the handful of GL
// positions ECMA-48 National Replacement Character sets remap: #, $, @,
// [, \, ], ^, `, {, |, }, ~. Everything else in the 0x20-0x7E range is
// identical to US-ASCII. Grounded on the DEC VT220 Programmer Reference
// NRC tables.
var nrcTables = map[CharacterSet]map[rune]rune{
	CharsetNRCDutch: {
		0x23: '£', 0x40: '¾', 0x5B: 'ĳ', 0x5C: '½', 0x5D: '|',
		0x7B: '¨', 0x7C: 'f', 0x7D: '¼', 0x7E: '´',
	},
	CharsetNRCFinnish: {
		0x5B: 'Ä', 0x5C: 'Ö', 0x5D: 'Å', 0x5E: 'Ü',
		0x60: 'é', 0x7B: 'ä', 0x7C: 'ö', 0x7D: 'å', 0x7E: 'ü',
	},
	CharsetNRCFrench: {
		0x23: '£', 0x40: 'à', 0x5B: '°', 0x5C: 'ç', 0x5D: '§',
		0x7B: 'é', 0x7C: 'ù', 0x7D: 'è', 0x7E: '¨',
	},
	CharsetNRCFrenchCanadian: {
		0x40: 'à', 0x5B: 'â', 0x5C: 'ç', 0x5D: 'ê', 0x5E: 'î',
		0x60: 'ô', 0x7B: 'é', 0x7C: 'ù', 0x7D: 'è', 0x7E: 'û',
	},
	CharsetNRCGerman: {
		0x40: '§', 0x5B: 'Ä', 0x5C: 'Ö', 0x5D: 'Ü',
		0x7B: 'ä', 0x7C: 'ö', 0x7D: 'ü', 0x7E: 'ß',
	},
	CharsetNRCItalian: {
		0x23: '£', 0x40: '§', 0x5B: '°', 0x5C: 'ç', 0x5D: 'é',
		0x60: 'ù', 0x7B: 'à', 0x7C: 'ò', 0x7D: 'è', 0x7E: 'ì',
	},
	CharsetNRCSwedish: {
		0x40: 'É', 0x5B: 'Ä', 0x5C: 'Ö', 0x5D: 'Å', 0x5E: 'Ü',
		0x60: 'é', 0x7B: 'ä', 0x7C: 'ö', 0x7D: 'å', 0x7E: 'ü',
	},
}

// decSupplemental maps the DEC Supplemental set's GR positions (0xA0-0xFF)
// to display glyphs; unlisted positions fall through to the raw code
// point, matching the set's near-Latin-1 layout with a handful of DEC-
// specific substitutions (no currency/yen/broken-bar glyphs).
var decSupplemental = map[rune]rune{
	0xA4: '$', 0xA6: '|', 0xA8: '¤', 0xD0: 'Đ', 0xD7: 'Œ', 0xDD: 'Ÿ',
	0xDE: 'Þ', 0xF0: 'đ', 0xF7: 'œ', 0xFD: 'ÿ', 0xFE: 'þ',
}

// translate maps a code point through the given charset, leaving
// anything the set doesn't remap unchanged.
func translate(set CharacterSet, r rune) rune {
	switch set {
	case CharsetDECLineDrawing, CharsetROMSpecial, CharsetVT52Graphics:
		if g, ok := decLineDrawing[r]; ok {
			return g
		}
		return r
	case CharsetUK:
		return translateUK(r)
	case CharsetDECSupplemental:
		if g, ok := decSupplemental[r]; ok {
			return g
		}
		return r
	case CharsetNRCDutch, CharsetNRCFinnish, CharsetNRCFrench,
		CharsetNRCFrenchCanadian, CharsetNRCGerman, CharsetNRCItalian,
		CharsetNRCSwedish:
		if g, ok := nrcTables[set][r]; ok {
			return g
		}
		return r
	case CharsetUSASCII, CharsetROM:
		return r
	}
	return r
}
