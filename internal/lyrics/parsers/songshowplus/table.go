package songshowplus

// repairTable maps the text produced by reading UTF-8 bytes as Windows-1252
// back to the character those bytes encode. The trailing comment is the
// Windows-1252 byte of the repaired character.
//
// Bytes 0x81, 0x8D, 0x8F, 0x90 and 0x9D have no Windows-1252 character and
// survive the bad decode as C1 controls.
var repairTable = map[string]string{
	"\u00E2\u201A\u00AC": "€",      // 0x80
	"\u00E2\u20AC\u0161": "‚",      // 0x82
	"\u00C6\u2019":       "ƒ",      // 0x83
	"\u00E2\u20AC\u017E": "„",      // 0x84
	"\u00E2\u20AC\u00A6": "…",      // 0x85
	"\u00E2\u20AC\u00A0": "†",      // 0x86
	"\u00E2\u20AC\u00A1": "‡",      // 0x87
	"\u00CB\u2020":       "ˆ",      // 0x88
	"\u00E2\u20AC\u00B0": "‰",      // 0x89
	"\u00C5\u00A0":       "Š",      // 0x8A
	"\u00E2\u20AC\u00B9": "‹",      // 0x8B
	"\u00C5\u2019":       "Œ",      // 0x8C
	"\u00C5\u00BD":       "Ž",      // 0x8E
	"\u00E2\u20AC\u02DC": "‘",      // 0x91
	"\u00E2\u20AC\u2122": "’",      // 0x92
	"\u00E2\u20AC\u0153": "“",      // 0x93
	"\u00E2\u20AC\u009D": "”",      // 0x94
	"\u00E2\u20AC\u00A2": "•",      // 0x95
	"\u00E2\u20AC\u201C": "–",      // 0x96
	"\u00E2\u20AC\u201D": "—",      // 0x97
	"\u00CB\u0153":       "˜",      // 0x98
	"\u00E2\u201E\u00A2": "™",      // 0x99
	"\u00C5\u00A1":       "š",      // 0x9A
	"\u00E2\u20AC\u00BA": "›",      // 0x9B
	"\u00C5\u201C":       "œ",      // 0x9C
	"\u00C5\u00BE":       "ž",      // 0x9E
	"\u00C5\u00B8":       "Ÿ",      // 0x9F
	"\u00C2\u00A0":       "\u00A0", // 0xA0
	"\u00C2\u00A1":       "¡",      // 0xA1
	"\u00C2\u00A2":       "¢",      // 0xA2
	"\u00C2\u00A3":       "£",      // 0xA3
	"\u00C2\u00A4":       "¤",      // 0xA4
	"\u00C2\u00A5":       "¥",      // 0xA5
	"\u00C2\u00A6":       "¦",      // 0xA6
	"\u00C2\u00A7":       "§",      // 0xA7
	"\u00C2\u00A8":       "¨",      // 0xA8
	"\u00C2\u00A9":       "©",      // 0xA9
	"\u00C2\u00AA":       "ª",      // 0xAA
	"\u00C2\u00AB":       "«",      // 0xAB
	"\u00C2\u00AC":       "¬",      // 0xAC
	"\u00C2\u00AD":       "\u00AD", // 0xAD
	"\u00C2\u00AE":       "®",      // 0xAE
	"\u00C2\u00AF":       "¯",      // 0xAF
	"\u00C2\u00B0":       "°",      // 0xB0
	"\u00C2\u00B1":       "±",      // 0xB1
	"\u00C2\u00B2":       "²",      // 0xB2
	"\u00C2\u00B3":       "³",      // 0xB3
	"\u00C2\u00B4":       "´",      // 0xB4
	"\u00C2\u00B5":       "µ",      // 0xB5
	"\u00C2\u00B6":       "¶",      // 0xB6
	"\u00C2\u00B7":       "·",      // 0xB7
	"\u00C2\u00B8":       "¸",      // 0xB8
	"\u00C2\u00B9":       "¹",      // 0xB9
	"\u00C2\u00BA":       "º",      // 0xBA
	"\u00C2\u00BB":       "»",      // 0xBB
	"\u00C2\u00BC":       "¼",      // 0xBC
	"\u00C2\u00BD":       "½",      // 0xBD
	"\u00C2\u00BE":       "¾",      // 0xBE
	"\u00C2\u00BF":       "¿",      // 0xBF
	"\u00C3\u20AC":       "À",      // 0xC0
	"\u00C3\u0081":       "Á",      // 0xC1
	"\u00C3\u201A":       "Â",      // 0xC2
	"\u00C3\u0192":       "Ã",      // 0xC3
	"\u00C3\u201E":       "Ä",      // 0xC4
	"\u00C3\u2026":       "Å",      // 0xC5
	"\u00C3\u2020":       "Æ",      // 0xC6
	"\u00C3\u2021":       "Ç",      // 0xC7
	"\u00C3\u02C6":       "È",      // 0xC8
	"\u00C3\u2030":       "É",      // 0xC9
	"\u00C3\u0160":       "Ê",      // 0xCA
	"\u00C3\u2039":       "Ë",      // 0xCB
	"\u00C3\u0152":       "Ì",      // 0xCC
	"\u00C3\u008D":       "Í",      // 0xCD
	"\u00C3\u017D":       "Î",      // 0xCE
	"\u00C3\u008F":       "Ï",      // 0xCF
	"\u00C3\u0090":       "Ð",      // 0xD0
	"\u00C3\u2018":       "Ñ",      // 0xD1
	"\u00C3\u2019":       "Ò",      // 0xD2
	"\u00C3\u201C":       "Ó",      // 0xD3
	"\u00C3\u201D":       "Ô",      // 0xD4
	"\u00C3\u2022":       "Õ",      // 0xD5
	"\u00C3\u2013":       "Ö",      // 0xD6
	"\u00C3\u2014":       "×",      // 0xD7
	"\u00C3\u02DC":       "Ø",      // 0xD8
	"\u00C3\u2122":       "Ù",      // 0xD9
	"\u00C3\u0161":       "Ú",      // 0xDA
	"\u00C3\u203A":       "Û",      // 0xDB
	"\u00C3\u0153":       "Ü",      // 0xDC
	"\u00C3\u009D":       "Ý",      // 0xDD
	"\u00C3\u017E":       "Þ",      // 0xDE
	"\u00C3\u0178":       "ß",      // 0xDF
	"\u00C3\u00A0":       "à",      // 0xE0
	"\u00C3\u00A1":       "á",      // 0xE1
	"\u00C3\u00A2":       "â",      // 0xE2
	"\u00C3\u00A3":       "ã",      // 0xE3
	"\u00C3\u00A4":       "ä",      // 0xE4
	"\u00C3\u00A5":       "å",      // 0xE5
	"\u00C3\u00A6":       "æ",      // 0xE6
	"\u00C3\u00A7":       "ç",      // 0xE7
	"\u00C3\u00A8":       "è",      // 0xE8
	"\u00C3\u00A9":       "é",      // 0xE9
	"\u00C3\u00AA":       "ê",      // 0xEA
	"\u00C3\u00AB":       "ë",      // 0xEB
	"\u00C3\u00AC":       "ì",      // 0xEC
	"\u00C3\u00AD":       "í",      // 0xED
	"\u00C3\u00AE":       "î",      // 0xEE
	"\u00C3\u00AF":       "ï",      // 0xEF
	"\u00C3\u00B0":       "ð",      // 0xF0
	"\u00C3\u00B1":       "ñ",      // 0xF1
	"\u00C3\u00B2":       "ò",      // 0xF2
	"\u00C3\u00B3":       "ó",      // 0xF3
	"\u00C3\u00B4":       "ô",      // 0xF4
	"\u00C3\u00B5":       "õ",      // 0xF5
	"\u00C3\u00B6":       "ö",      // 0xF6
	"\u00C3\u00B7":       "÷",      // 0xF7
	"\u00C3\u00B8":       "ø",      // 0xF8
	"\u00C3\u00B9":       "ù",      // 0xF9
	"\u00C3\u00BA":       "ú",      // 0xFA
	"\u00C3\u00BB":       "û",      // 0xFB
	"\u00C3\u00BC":       "ü",      // 0xFC
	"\u00C3\u00BD":       "ý",      // 0xFD
	"\u00C3\u00BE":       "þ",      // 0xFE
	"\u00C3\u00BF":       "ÿ",      // 0xFF

	// SongShow Plus drops the C1 control or NBSP that ends some sequences.
	// The orphaned prefixes resolve to the character seen in real files.
	"\u00C3":       "à",
	"\u00C5":       "Š",
	"\u00E2\u20AC": "”",
}
