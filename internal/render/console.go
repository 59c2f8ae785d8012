package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"bucketlens.dev/bucketlens/internal/scan"
	"bucketlens.dev/bucketlens/internal/utils"
)

const folderColumnWidth = 40

// Writable folders are the finding that matters, so anything with write
// access is flagged in red; read-only stays green.
var (
	readStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	writeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	noneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)

	zeroSizeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#33A8FF"))
	hugeSizeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	largeSizeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	smallSizeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// Console renders a report as text for terminal consumption.
type Console struct {
	// Color toggles ANSI styling; disable when piping output to a file.
	Color bool
}

func (c Console) Render(r *scan.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bucket:    %s\n", r.Bucket)
	fmt.Fprintf(&b, "Region:    %s\n", r.Region)
	fmt.Fprintf(&b, "Generated: %s\n", utils.TimeOrDash(r.GeneratedAt, utils.DateTimeSec))

	c.renderPermissions(&b, r)

	fmt.Fprintf(&b, "\nTotal Files: %d\n", r.Inventory.TotalCount)
	fmt.Fprintf(&b, "Total Size:  %s\n", utils.FormatBytes(r.Inventory.TotalSizeBytes))

	c.renderFiles(&b, r)
	return b.String()
}

func (c Console) renderPermissions(b *strings.Builder, r *scan.Report) {
	b.WriteString("\nPermissions on bucket\n")
	b.WriteString("---------------------\n")
	fmt.Fprintf(b, "%s %s\n", pad("Folder", folderColumnWidth), "Permission")
	b.WriteString(strings.Repeat("-", folderColumnWidth+20) + "\n")

	for _, folder := range r.FolderNames() {
		perm := r.Permissions[folder]
		label := permissionLabel(perm)
		style := noneStyle
		switch {
		case perm.CanWrite:
			style = writeStyle
		case perm.CanRead:
			style = readStyle
		}
		fmt.Fprintf(b, "%s %s\n", pad(folder, folderColumnWidth), c.style(style, label))
	}
}

func (c Console) renderFiles(b *strings.Builder, r *scan.Report) {
	b.WriteString("\nAvailable bucket files\n")
	b.WriteString("----------------------\n")
	for _, folder := range r.FolderNames() {
		fmt.Fprintf(b, "\n%s\n", c.style(folderStyle, folder))
		b.WriteString(strings.Repeat("-", 35) + "\n")
		for _, obj := range sortBySizeDesc(r.Folders[folder]) {
			size := fmt.Sprintf("%12s", utils.FormatBytes(obj.Size))
			fmt.Fprintf(b, "    %s - %s\n", c.style(sizeStyle(obj.Size), size), obj.Key)
		}
	}
}

func (c Console) style(s lipgloss.Style, text string) string {
	if !c.Color {
		return text
	}
	return s.Render(text)
}

// sizeStyle buckets a file size for at-a-glance triage: empty files blue,
// >100 MB red, >10 MB yellow, everything else green.
func sizeStyle(size int64) lipgloss.Style {
	switch {
	case size == 0:
		return zeroSizeStyle
	case size > 100*(1<<20):
		return hugeSizeStyle
	case size > 10*(1<<20):
		return largeSizeStyle
	default:
		return smallSizeStyle
	}
}

// pad right-pads to a display width; runewidth keeps columns aligned when
// keys contain wide characters.
func pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
