package songshowplus

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRepairEncoding_EveryTableEntry(t *testing.T) {
	for mangled, want := range repairTable {
		assert.Equal(t, want, RepairEncoding(mangled), "sequence %q", mangled)
	}
}

func TestRepairTable_Shape(t *testing.T) {
	assert.Len(t, repairTable, 126)
	for mangled, want := range repairTable {
		assert.Equal(t, 1, utf8.RuneCountInString(want), "value for %q", mangled)
		assert.NotEqual(t, mangled, want)
	}
}

func TestRepairEncoding_InText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accented title", "DevuÃ©lveme El Gozo", "Devuélveme El Gozo"},
		{"copyright sign", "Â© Fresh Wine Publishing", "© Fresh Wine Publishing"},
		{"apostrophe beats orphan prefix", "Iâ€™m not ashamed", "I’m not ashamed"},
		{"closing quote with C1 tail", "â€œHiâ€\u009D", "“Hi”"},
		{"closing quote without tail", "â€œHiâ€", "“Hi”"},
		{"spanish lyrics", "Lo restauras SeÃ±or en mÃ­", "Lo restauras Señor en mí"},
		{"capital A acute", "Ã\u0081nimo", "Ánimo"},
		{"orphan A tilde", "Ã la", "à la"},
		{"trade mark", "Songâ„¢", "Song™"},
		{"adjacent sequences", "Ã¡Ã©Ã­", "áéí"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairEncoding(tt.in))
		})
	}
}

func TestRepairEncoding_LeavesCleanTextAlone(t *testing.T) {
	for _, in := range []string{
		"",
		"Be near O God\r\nBe near O God of us",
		"Señor, aflicción, corazón",
		"100% — ☺ “quoted”",
		"\t\x01\x02",
	} {
		assert.Equal(t, in, RepairEncoding(in))
		assert.Equal(t, in, RepairEncoding(RepairEncoding(in)))
	}
}
