package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	content := strings.Join([]string{
		"# Title",
		"## Section",
		"### Sub",
		"- **Zinc** - Supports testosterone",
		"- **Broken bold line",
		"- plain item",
		"1. **Skincare** - The foundation",
		"2. **Unclosed",
		"3. Third step",
		"",
		"Body text with **bold**.",
		"10. not a list",
	}, "\n")

	want := []Block{
		{Kind: Heading1, Text: "Title"},
		{Kind: Heading2, Text: "Section"},
		{Kind: Heading3, Text: "Sub"},
		{Kind: TermItem, Term: "Zinc", Text: "Supports testosterone"},
		{Kind: BulletItem, Text: "plain item"},
		{Kind: NumberedTerm, Number: "1", Term: "Skincare", Text: " - The foundation"},
		{Kind: NumberedItem, Number: "3", Text: "Third step"},
		{Kind: Blank},
		{Kind: Paragraph, Text: "Body text with **bold**."},
		{Kind: Paragraph, Text: "10. not a list"},
	}

	if diff := cmp.Diff(want, Parse(content)); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_HeadingNeedsSpace(t *testing.T) {
	got := Parse("#hashtag")
	if len(got) != 1 || got[0].Kind != Paragraph {
		t.Errorf("expected paragraph, got %+v", got)
	}
}

func TestPlain(t *testing.T) {
	got := Plain("# Intro\n- **A** - uses **b**\n\nSee **this**.")
	want := "INTRO\n  • A - uses b\n\nSee this."
	if got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
}

func TestRender_KeepsText(t *testing.T) {
	out := Render("## Why It Matters\n- **Sleep** - Eight hours", 60)
	for _, s := range []string{"Why It Matters", "Sleep", "Eight hours"} {
		if !strings.Contains(out, s) {
			t.Errorf("rendered output missing %q", s)
		}
	}
}
