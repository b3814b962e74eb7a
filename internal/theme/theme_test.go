package theme

import "testing"

func TestSetAndCurrentRoundTrip(t *testing.T) {
	original := Current()
	defer Set(original)

	custom := Theme{Name: "custom"}
	Set(custom)

	if got := Current(); got.Name != "custom" {
		t.Fatalf("Current().Name = %q, want %q", got.Name, "custom")
	}
}

func TestForWindowAdaptsActiveTheme(t *testing.T) {
	original := Current()
	defer Set(original)

	Set(Default)
	style := ForWindow()

	if style.Border != Default.BorderUnfocused {
		t.Errorf("Border = %+v, want %+v", style.Border, Default.BorderUnfocused)
	}
	if style.FocusBorder != Default.BorderFocused {
		t.Errorf("FocusBorder = %+v, want %+v", style.FocusBorder, Default.BorderFocused)
	}
	if style.Title != Default.TitleFocused {
		t.Errorf("Title = %+v, want %+v", style.Title, Default.TitleFocused)
	}
	if style.Body != Default.Body {
		t.Errorf("Body = %+v, want %+v", style.Body, Default.Body)
	}
}
