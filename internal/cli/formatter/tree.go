package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a checklist tree. Level 0 is a phase, level 1
// a task.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Done   bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
)

// RenderTree renders items as an indented tree with box-drawing
// connectors and a checkbox per line. Detail badges are right-aligned
// across the whole tree.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat("   ", item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
			prefix = StyleDim.Render(prefix)
		}

		title := item.Title
		switch {
		case item.Level == 0:
			title = StyleBold.Render(title)
		case item.Done:
			title = Dim(title)
		}

		content := prefix + Checkbox(item.Done) + " " + title
		lines[idx].content = content
		lines[idx].badge = item.Detail

		maxContentWidth = max(maxContentWidth, lipgloss.Width(content))
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
