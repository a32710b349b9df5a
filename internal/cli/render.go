package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mrlokans/birdr/internal/progress"
)

const (
	progressSymbol = "▶"
	seenSymbol     = "✔"
	unseenSymbol   = "◼"
)

var (
	lowColor     = color.New(color.FgRed)
	midLowColor  = color.New(color.FgHiRed)
	midHighColor = color.New(color.FgYellow)
	highColor    = color.New(color.FgGreen)
	seenColor    = color.New(color.FgGreen)
	unseenColor  = color.New(color.FgBlack)
)

// colorForFraction picks the completion color: red up to 25%, bright red up
// to 50%, yellow up to 75%, green above.
func colorForFraction(f float64) *color.Color {
	switch {
	case f <= 0.25:
		return lowColor
	case f <= 0.50:
		return midLowColor
	case f <= 0.75:
		return midHighColor
	default:
		return highColor
	}
}

func progressLabel(f float64, name string) string {
	return fmt.Sprintf("%s%3.0f%% %s", colorForFraction(f).Sprint(progressSymbol), f*100, name)
}

// RenderReport writes the report as a tree: the checklist at the root, one
// branch per category and one leaf per species.
func RenderReport(w io.Writer, report *progress.Report) error {
	if _, err := fmt.Fprintln(w, progressLabel(report.Complete, report.Name)); err != nil {
		return err
	}

	categories := report.CategoryNames()
	for i, name := range categories {
		category := report.Categories[name]
		branch, indent := "├── ", "│   "
		if i == len(categories)-1 {
			branch, indent = "└── ", "    "
		}
		if _, err := fmt.Fprintln(w, branch+progressLabel(category.Complete, name)); err != nil {
			return err
		}

		species := mergeSorted(category.SeenNames(), category.UnseenNames())
		for j, sp := range species {
			leaf := "├── "
			if j == len(species)-1 {
				leaf = "└── "
			}
			mark := unseenColor.Sprint(unseenSymbol)
			if _, seen := category.Seen[sp]; seen {
				mark = seenColor.Sprint(seenSymbol)
			}
			if _, err := fmt.Fprintf(w, "%s%s%s %s\n", indent, leaf, mark, sp); err != nil {
				return err
			}
		}
	}
	return nil
}

// mergeSorted merges two sorted slices into one sorted slice.
func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
