package termio

import (
	"strings"
	"testing"
)

func TestCodepointReaderDecodesMultiByteRunes(t *testing.T) {
	r := NewCodepointReader(strings.NewReader("aé中"))

	want := []rune{'a', 'é', '中'}
	for i, expected := range want {
		ch, _, err := r.ReadRune()
		if err != nil {
			t.Fatalf("rune %d: unexpected error: %v", i, err)
		}
		if ch != expected {
			t.Errorf("rune %d: expected %q, got %q", i, expected, ch)
		}
	}
}
