package term

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UnitDecoder assembles UTF-16 code units, as carried by KeyRecord, into
// runes. A surrogate pair split across two records is joined; a lone or
// mismatched surrogate decodes to U+FFFD. The zero value is not usable; use
// NewUnitDecoder.
type UnitDecoder struct {
	t       transform.Transformer
	pending []byte
}

// NewUnitDecoder creates a new UnitDecoder.
func NewUnitDecoder() *UnitDecoder {
	return &UnitDecoder{t: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()}
}

// Feed adds one code unit and returns the runes it completes. A surrogate is
// held back until the unit following it is known.
func (d *UnitDecoder) Feed(unit uint16) []rune {
	d.pending = append(d.pending, byte(unit), byte(unit>>8))
	return d.decode(false)
}

// Flush returns the runes for any units still held back, and resets the
// decoder.
func (d *UnitDecoder) Flush() []rune {
	if len(d.pending) == 0 {
		return nil
	}
	return d.decode(true)
}

// Pending returns whether any unit is held back.
func (d *UnitDecoder) Pending() bool { return len(d.pending) > 0 }

func (d *UnitDecoder) decode(atEOF bool) []rune {
	dst := make([]byte, 2*len(d.pending)+utf8.UTFMax)
	nDst, nSrc, err := d.t.Transform(dst, d.pending, atEOF)
	if err != nil && err != transform.ErrShortSrc {
		// Not reachable with a buffer of this size; drop the units rather
		// than looping on them.
		nSrc = len(d.pending)
	}
	d.pending = d.pending[nSrc:]
	if atEOF || len(d.pending) == 0 {
		d.pending = nil
		d.t.Reset()
	}
	var runes []rune
	for b := dst[:nDst]; len(b) > 0; {
		r, size := utf8.DecodeRune(b)
		runes = append(runes, r)
		b = b[size:]
	}
	return runes
}
