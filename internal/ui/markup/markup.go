// Package markup renders the line-oriented article format to styled
// terminal text. Each source line is classified on its own; there is no
// nesting and no multi-line construct.
package markup

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ascend/internal/ui/theme"
)

// Kind classifies one source line.
type Kind int

const (
	Heading1 Kind = iota
	Heading2
	Heading3
	TermItem     // - **Term** - description
	BulletItem   // - text
	NumberedTerm // 1. **Term** rest
	NumberedItem // 1. text
	Blank
	Paragraph
)

// Block is one parsed line.
type Block struct {
	Kind   Kind
	Number string // NumberedTerm and NumberedItem
	Term   string // TermItem and NumberedTerm
	Text   string
}

var (
	termItemRe     = regexp.MustCompile(`^- \*\*(.+?)\*\* - (.+)`)
	numberedTermRe = regexp.MustCompile(`^(\d)\. \*\*(.+?)\*\*(.*)$`)
	numberedRe     = regexp.MustCompile(`^(\d)\. (.*)$`)
	boldRe         = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// Parse classifies each line of content. Bold list lines that do not match
// their full pattern produce no block.
func Parse(content string) []Block {
	lines := strings.Split(content, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Kind: Heading1, Text: line[2:]})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Kind: Heading2, Text: line[3:]})
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Kind: Heading3, Text: line[4:]})
		case strings.HasPrefix(line, "- **"):
			if m := termItemRe.FindStringSubmatch(line); m != nil {
				blocks = append(blocks, Block{Kind: TermItem, Term: m[1], Text: m[2]})
			}
		case strings.HasPrefix(line, "- "):
			blocks = append(blocks, Block{Kind: BulletItem, Text: line[2:]})
		case len(line) >= 5 && isDigit(line[0]) && strings.HasPrefix(line[1:], ". **"):
			if m := numberedTermRe.FindStringSubmatch(line); m != nil {
				blocks = append(blocks, Block{Kind: NumberedTerm, Number: m[1], Term: m[2], Text: m[3]})
			}
		case numberedRe.MatchString(line):
			m := numberedRe.FindStringSubmatch(line)
			blocks = append(blocks, Block{Kind: NumberedItem, Number: m[1], Text: m[2]})
		case strings.TrimSpace(line) == "":
			blocks = append(blocks, Block{Kind: Blank})
		default:
			blocks = append(blocks, Block{Kind: Paragraph, Text: line})
		}
	}
	return blocks
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Render parses content and renders it wrapped to width.
func Render(content string, width int) string {
	if width < 20 {
		width = 20
	}
	var out []string
	for _, b := range Parse(content) {
		out = append(out, renderBlock(b, width))
	}
	return strings.Join(out, "\n")
}

func renderBlock(b Block, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	item := lipgloss.NewStyle().Width(width).PaddingLeft(2)

	switch b.Kind {
	case Heading1:
		return "\n" + theme.Heading.Width(width).Render(strings.ToUpper(b.Text)) + "\n"
	case Heading2:
		return "\n" + theme.Heading.Width(width).Render(b.Text)
	case Heading3:
		return theme.Subheading.Width(width).Render(b.Text)
	case TermItem:
		return item.Render("• " + theme.Strong.Render(b.Term) + dim.Render(" - "+inline(b.Text)))
	case BulletItem:
		return item.Render(dim.Render("• " + inline(b.Text)))
	case NumberedTerm:
		num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(b.Number + ".")
		return item.Render(num + " " + theme.Strong.Render(b.Term) + dim.Render(inline(b.Text)))
	case NumberedItem:
		return item.Render(dim.Render(b.Number + ". " + inline(b.Text)))
	case Blank:
		return ""
	default:
		return dim.Width(width).Render(inline(b.Text))
	}
}

// inline renders **bold** spans.
func inline(text string) string {
	if !strings.Contains(text, "**") {
		return text
	}
	return boldRe.ReplaceAllStringFunc(text, func(s string) string {
		return theme.Strong.Render(s[2 : len(s)-2])
	})
}

// Plain strips markup and returns readable text, for non-interactive output.
func Plain(content string) string {
	var out []string
	for _, b := range Parse(content) {
		switch b.Kind {
		case Heading1:
			out = append(out, strings.ToUpper(b.Text))
		case Heading2, Heading3:
			out = append(out, b.Text)
		case TermItem:
			out = append(out, "  • "+b.Term+" - "+stripBold(b.Text))
		case BulletItem:
			out = append(out, "  • "+stripBold(b.Text))
		case NumberedTerm:
			out = append(out, "  "+b.Number+". "+b.Term+stripBold(b.Text))
		case NumberedItem:
			out = append(out, "  "+b.Number+". "+stripBold(b.Text))
		case Blank:
			out = append(out, "")
		default:
			out = append(out, stripBold(b.Text))
		}
	}
	return strings.Join(out, "\n")
}

func stripBold(s string) string {
	return boldRe.ReplaceAllString(s, "$1")
}
