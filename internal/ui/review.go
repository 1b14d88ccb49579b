// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// review.go - Interactive browser over the generated reports and diffs.

package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reportPrefixes are the filename stems the suite generates. Only these
// show up in the browser; the input spreadsheets stay out of it.
var reportPrefixes = []string{
	"assignments-",
	"students-",
	"student-status-",
	"advising-",
	"research-committees-",
	"ta-",
	"classes-",
	"diff-",
	"requests-by-",
	"exam-scheduling-",
}

// =============================================================================
// STYLES
// =============================================================================

var (
	listPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	focusedBorder = lipgloss.Color("39")

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Padding(0, 1)
)

// =============================================================================
// LIST ITEMS
// =============================================================================

// reportItem is one generated file in the list pane.
type reportItem struct {
	name    string
	size    int64
	modTime time.Time
}

func (i reportItem) Title() string { return i.name }

func (i reportItem) Description() string {
	return fmt.Sprintf("%s  %d bytes", i.modTime.Format("2006-01-02 15:04"), i.size)
}

func (i reportItem) FilterValue() string { return i.name }

// scanReports lists the generated files in dir, newest first.
func scanReports(dir string) ([]reportItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var items []reportItem
	for _, entry := range entries {
		if entry.IsDir() || !isReportName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		items = append(items, reportItem{
			name:    entry.Name(),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].modTime.Equal(items[b].modTime) {
			return items[a].modTime.After(items[b].modTime)
		}
		return items[a].name < items[b].name
	})
	return items, nil
}

func isReportName(name string) bool {
	for _, prefix := range reportPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// =============================================================================
// MODEL
// =============================================================================

type pane int

const (
	paneList pane = iota
	panePreview
)

// Model is the review browser: a file list on the left, a read-only
// preview of the selection on the right.
type Model struct {
	dir      string
	list     list.Model
	preview  viewport.Model
	focused  pane
	width    int
	height   int
	loaded   string // filename currently shown in the preview
	loadErr  error
	quitting bool
}

// NewModel builds the browser over dir's generated reports.
func NewModel(dir string) (Model, error) {
	items, err := scanReports(dir)
	if err != nil {
		return Model{}, err
	}

	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(listItems, delegate, 0, 0)
	l.Title = "Reports"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	m := Model{
		dir:     dir,
		list:    l,
		preview: viewport.New(0, 0),
	}
	m.loadSelection()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// Let q filter while the filter prompt is open.
			if msg.String() == "q" && m.list.FilterState() == list.Filtering {
				break
			}
			m.quitting = true
			return m, tea.Quit
		case "tab":
			if m.focused == paneList {
				m.focused = panePreview
			} else {
				m.focused = paneList
			}
			return m, nil
		case "r":
			if m.focused == paneList && m.list.FilterState() != list.Filtering {
				m.reload()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.focused == paneList {
		m.list, cmd = m.list.Update(msg)
		m.loadSelection()
	} else {
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	listStyle := listPaneStyle
	previewStyle := previewPaneStyle
	if m.focused == paneList {
		listStyle = listStyle.BorderForeground(focusedBorder)
	} else {
		previewStyle = previewStyle.BorderForeground(focusedBorder)
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.list.View()),
		previewStyle.Render(m.preview.View()),
	)
	help := helpStyle.Render("tab: switch pane • r: rescan • /: filter • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, panes, help)
}

// layout sizes both panes from the window size.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	// One line of help plus the pane borders.
	contentHeight := m.height - 3
	if contentHeight < 3 {
		contentHeight = 3
	}
	listWidth := m.width / 3
	if listWidth < 30 {
		listWidth = 30
	}
	previewWidth := m.width - listWidth - 6
	if previewWidth < 20 {
		previewWidth = 20
	}

	m.list.SetSize(listWidth, contentHeight)
	m.preview.Width = previewWidth
	m.preview.Height = contentHeight
}

// loadSelection fills the preview with the selected file, reading it only
// when the selection changed.
func (m *Model) loadSelection() {
	item, ok := m.list.SelectedItem().(reportItem)
	if !ok {
		m.preview.SetContent("no reports in " + m.dir)
		return
	}
	if item.name == m.loaded && m.loadErr == nil {
		return
	}

	data, err := os.ReadFile(filepath.Join(m.dir, item.name))
	m.loaded = item.name
	m.loadErr = err
	if err != nil {
		m.preview.SetContent(fmt.Sprintf("failed to read %s: %v", item.name, err))
		return
	}
	m.preview.SetContent(string(data))
	m.preview.GotoTop()
}

// reload rescans the directory, keeping the selection when possible.
func (m *Model) reload() {
	selected := ""
	if item, ok := m.list.SelectedItem().(reportItem); ok {
		selected = item.name
	}

	items, err := scanReports(m.dir)
	if err != nil {
		m.preview.SetContent(fmt.Sprintf("rescan failed: %v", err))
		return
	}
	listItems := make([]list.Item, len(items))
	index := 0
	for i, item := range items {
		listItems[i] = item
		if item.name == selected {
			index = i
		}
	}
	m.list.SetItems(listItems)
	m.list.Select(index)
	m.loaded = ""
	m.loadSelection()
}

// Run opens the browser and blocks until the user quits.
func Run(dir string) error {
	m, err := NewModel(dir)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review ui failed: %w", err)
	}
	return nil
}
