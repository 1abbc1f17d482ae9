package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var unitDecoderTests = []struct {
	name      string
	units     []uint16
	wantFeed  []rune
	wantFlush []rune
}{
	{"BMP characters", []uint16{'a', 0xe9, 0x4e2d}, []rune{'a', 0xe9, 0x4e2d}, nil},
	{"surrogate pair", []uint16{0xd83d, 0xde00}, []rune{0x1f600}, nil},
	{"lone high surrogate before BMP", []uint16{0xd83d, 'a'}, []rune{0xfffd, 'a'}, nil},
	{"lone high surrogate at end", []uint16{'a', 0xd83d}, []rune{'a'}, []rune{0xfffd}},
	{"lone low surrogate", []uint16{0xde00, 'a'}, []rune{0xfffd, 'a'}, nil},
}

func TestUnitDecoder(t *testing.T) {
	for _, test := range unitDecoderTests {
		t.Run(test.name, func(t *testing.T) {
			d := NewUnitDecoder()
			var got []rune
			for _, unit := range test.units {
				got = append(got, d.Feed(unit)...)
			}
			if diff := cmp.Diff(test.wantFeed, got); diff != "" {
				t.Errorf("runes from Feed (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.wantFlush, d.Flush()); diff != "" {
				t.Errorf("runes from Flush (-want +got):\n%s", diff)
			}
			if d.Pending() {
				t.Errorf("Pending() -> true after Flush")
			}
		})
	}
}

func TestUnitDecoder_ReusableAfterFlush(t *testing.T) {
	d := NewUnitDecoder()
	d.Feed(0xd83d)
	d.Flush()
	got := append(d.Feed(0xd83d), d.Feed(0xde00)...)
	if diff := cmp.Diff([]rune{0x1f600}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
