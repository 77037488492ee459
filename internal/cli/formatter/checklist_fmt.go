package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wbs/internal/service"
)

const (
	checklistBarWidth = 20
	statusBarWidth    = 10
)

// FormatChecklist renders the whole WBS as a static tree, the
// non-interactive counterpart of the checklist screen.
func FormatChecklist(snap service.Snapshot) string {
	var b strings.Builder
	b.WriteString(Header(snap.Title))
	b.WriteString("\n\n")
	b.WriteString(OverallLine(snap, checklistBarWidth))
	b.WriteString("\n\n")

	if len(snap.Phases) == 0 {
		b.WriteString(Dim("No phases.") + "\n")
		return b.String()
	}

	items := make([]TreeItem, 0, snap.Total+len(snap.Phases))
	for _, p := range snap.Phases {
		items = append(items, TreeItem{
			Title:  p.Name,
			Done:   p.Completed,
			Detail: phaseDetail(p),
		})
		for i, t := range p.Tasks {
			items = append(items, TreeItem{
				Title:  t.Name,
				Level:  1,
				IsLast: i == len(p.Tasks)-1,
				Done:   t.Completed,
			})
		}
	}
	b.WriteString(RenderTree(items))
	return b.String()
}

// FormatStatus renders one progress row per phase and an overall summary.
func FormatStatus(snap service.Snapshot) string {
	var b strings.Builder

	headers := []string{"PHASE", "DONE", "PROGRESS"}
	rows := make([][]string, 0, len(snap.Phases))
	complete := 0
	for _, p := range snap.Phases {
		if p.Completed {
			complete++
		}
		rows = append(rows, []string{
			Checkbox(p.Completed) + " " + p.Name,
			fmt.Sprintf("%d/%d", p.Done, p.Total),
			RenderProgress(Ratio(p.Done, p.Total), statusBarWidth),
		})
	}

	b.WriteString(Header(snap.Title))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows, 1))
	b.WriteString("\n")
	b.WriteString(OverallLine(snap, checklistBarWidth))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d phase(s) complete", complete, len(snap.Phases))))
	b.WriteString("\n")
	return b.String()
}

// OverallLine renders "Overall progress [bar] pct (done/total tasks)".
func OverallLine(snap service.Snapshot, width int) string {
	return fmt.Sprintf("%s %s %s",
		Bold("Overall progress"),
		RenderProgress(snap.Progress, width),
		Dim(fmt.Sprintf("(%d/%d tasks)", snap.Done, snap.Total)),
	)
}

func phaseDetail(p service.PhaseSnapshot) string {
	if p.Total == 0 {
		return Dim("no tasks")
	}
	return Fraction(p.Done, p.Total)
}
