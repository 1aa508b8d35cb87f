// browse/browse.go
// Package: browse
package browse

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gostatcli/dataset"
	"github.com/mwiater/gostatcli/stats"
)

// viewState represents the current state of the application's view.
type viewState int

const (
	// viewDatasetSelector is the state where the user selects a dataset.
	viewDatasetSelector viewState = iota
	// viewRowSelector is the state where the user selects a row.
	viewRowSelector
	// viewStats is the state where the statistics for a row are shown.
	viewStats
)

// item represents a selectable item in a Bubble Tea list,
// used for both datasets and rows.
type item struct {
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering in the list.
func (i item) FilterValue() string { return i.title }

// statsReadyMsg is sent when the statistics for the selected row have
// been rendered.
type statsReadyMsg string

// model is the main application model for the Bubble Tea UI.
type model struct {
	// Application configuration.
	config dataset.Config
	// Current view state of the application.
	state viewState
	// Indicates if statistics are being computed.
	isLoading bool

	// Bubble Tea list model for dataset selection.
	datasetList list.Model
	// Bubble Tea list model for row selection.
	rowList list.Model
	// Bubble Tea viewport model for displaying statistics.
	viewport viewport.Model
	// Bubble Tea spinner model for indicating loading.
	spinner spinner.Model

	// The currently selected dataset.
	selectedDataset dataset.Dataset
	// Index of the currently selected row.
	selectedRow int

	// Current width and height of the terminal.
	width, height int
}

// initialModel initializes a new model with default values and sets up
// the necessary Bubble Tea components like spinner and lists.
func initialModel(cfg dataset.Config) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	datasetItems := make([]list.Item, len(cfg.Datasets))
	for i, ds := range cfg.Datasets {
		datasetItems[i] = item{
			title: ds.Name,
			desc:  fmt.Sprintf("%d rows", len(ds.Rows)),
		}
	}
	// Filtering would desync the visible index from the config slice,
	// which both selections rely on.
	datasetList := list.New(datasetItems, list.NewDefaultDelegate(), 0, 0)
	datasetList.Title = "Select a Dataset"
	datasetList.SetFilteringEnabled(false)

	rowList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	rowList.SetFilteringEnabled(false)

	return &model{
		config:      cfg,
		state:       viewDatasetSelector,
		spinner:     s,
		datasetList: datasetList,
		rowList:     rowList,
		viewport:    viewport.New(100, 5),
	}
}

// formatNum renders a float with the fewest digits that round-trip.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// rowItems converts a dataset's rows into list items with a short preview.
func rowItems(ds dataset.Dataset) []list.Item {
	items := make([]list.Item, len(ds.Rows))
	for i, row := range ds.Rows {
		parts := make([]string, len(row))
		for j, v := range row {
			parts[j] = formatNum(v)
		}
		items[i] = item{
			title: fmt.Sprintf("row %d", i+1),
			desc:  strings.Join(parts, ", "),
		}
	}
	return items
}

// computeStatsCmd renders the statistics block for one row.
func computeStatsCmd(name string, idx int, row []float64) tea.Cmd {
	return func() tea.Msg {
		var b strings.Builder
		fmt.Fprintf(&b, "%s, row %d\n\n", name, idx+1)
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = formatNum(v)
		}
		fmt.Fprintf(&b, "Data: %s\n", strings.Join(parts, ", "))
		median, err := stats.Median(row)
		if err != nil {
			fmt.Fprintf(&b, "\n%v\n", err)
			return statsReadyMsg(b.String())
		}
		mean, std, _ := stats.MeanStd(row)
		min, max, _ := stats.MinMax(row)
		p95, _ := stats.Quantile(row, 0.95)
		fmt.Fprintf(&b, "Median: %s\n", formatNum(median))
		fmt.Fprintf(&b, "Mean: %s\n\n", formatNum(mean))
		fmt.Fprintf(&b, "count:      %d\n", len(row))
		fmt.Fprintf(&b, "min/max:    %s / %s\n", formatNum(min), formatNum(max))
		fmt.Fprintf(&b, "std:        %s\n", formatNum(std))
		fmt.Fprintf(&b, "p95:        %s\n", formatNum(p95))
		return statsReadyMsg(b.String())
	}
}

// Init initializes the Bubble Tea model. It returns a command to start
// the spinner animation.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			switch m.state {
			case viewStats:
				m.state = viewRowSelector
				return m, nil
			case viewRowSelector:
				m.state = viewDatasetSelector
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.datasetList.SetSize(msg.Width-2, msg.Height-4)
		m.rowList.SetSize(msg.Width-2, msg.Height-4)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4

	case statsReadyMsg:
		m.isLoading = false
		m.viewport.SetContent(string(msg))
		m.viewport.GotoTop()
		m.state = viewStats
		return m, nil
	}

	switch m.state {
	case viewDatasetSelector:
		m.datasetList, cmd = m.datasetList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if _, ok := m.datasetList.SelectedItem().(item); ok {
				m.selectedDataset = m.config.Datasets[m.datasetList.Index()]
				m.rowList.SetItems(rowItems(m.selectedDataset))
				m.rowList.Title = fmt.Sprintf("Select a row from %s", m.selectedDataset.Name)
				m.state = viewRowSelector
			}
		}

	case viewRowSelector:
		m.rowList, cmd = m.rowList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if _, ok := m.rowList.SelectedItem().(item); ok {
				m.selectedRow = m.rowList.Index()
				m.isLoading = true
				cmds = append(cmds, m.spinner.Tick,
					computeStatsCmd(m.selectedDataset.Name, m.selectedRow, m.selectedDataset.Rows[m.selectedRow]))
			}
		}

	case viewStats:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application's UI based on its current state.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.isLoading {
		return fmt.Sprintf("\n  %s computing statistics...", m.spinner.View())
	}

	switch m.state {
	case viewDatasetSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.datasetList.View())
	case viewRowSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.rowList.View())
	case viewStats:
		headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
		help := lipgloss.NewStyle().Faint(true).Render(" (esc to go back, q to quit)")
		return headerStyle.Render("Row statistics") + help + "\n\n" + m.viewport.View()
	}
	return ""
}

// resolveBrowseConfig loads the dataset config from the given path.
// Only a missing file falls back to the built-in sample dataset; a
// file that exists but cannot be parsed is an error.
func resolveBrowseConfig(path string) (dataset.Config, error) {
	cfg, err := dataset.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return dataset.Default(), nil
	}
	if err != nil {
		return dataset.Config{}, err
	}
	return *cfg, nil
}

// StartBrowser launches the interactive dataset browser. The config is
// loaded from the given path; when the file is missing the built-in
// sample dataset is used instead.
func StartBrowser(path string) {
	cfg, err := resolveBrowseConfig(path)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	p := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
