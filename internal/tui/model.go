// Package tui provides the BubbleTea-based terminal user interface.
package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trigger-segfault/vscode-find-colors/internal/color"
	"github.com/trigger-segfault/vscode-find-colors/internal/config"
	"github.com/trigger-segfault/vscode-find-colors/internal/palette"
	"github.com/trigger-segfault/vscode-find-colors/internal/theme"
	"gopkg.in/yaml.v3"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
	ModeSearch
	ModeHelp
)

// darkThreshold is the luminance below which item text gets a light backing
// so near-black colors stay readable.
const darkThreshold = 0.1

// Model is the main TUI model.
type Model struct {
	// Configuration
	cfg     *config.Config
	palette *palette.Palette
	reload  func() (*palette.Palette, error)

	// Current mode
	mode Mode

	// Components
	list        list.Model
	viewport    viewport.Model
	searchInput textinput.Model
	help        help.Model

	// State
	selected    *paletteItem
	searchQuery string
	showStyles  bool
	width       int
	height      int
	ready       bool

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool
}

// paletteItem wraps one palette row for the list component. Color rows carry
// a 1-based position; font-style rows leave it zero.
type paletteItem struct {
	hex    string // canonical hex, empty for colorless rows
	col    color.Color
	style  string // font style, empty for color rows
	scopes []string
	pos    int
}

func (i paletteItem) Title() string {
	switch {
	case i.style != "" && i.hex != "":
		return fmt.Sprintf("%s  %s  [%2d]", i.style, i.hex, len(i.scopes))
	case i.style != "":
		return fmt.Sprintf("%s  [%2d]", i.style, len(i.scopes))
	case i.hex != "":
		return fmt.Sprintf("%s  [%2d]", i.hex, len(i.scopes))
	default:
		return fmt.Sprintf("unstyled  [%2d]", len(i.scopes))
	}
}

func (i paletteItem) Description() string {
	return strings.Join(i.scopes, ", ")
}

func (i paletteItem) FilterValue() string {
	return i.hex + " " + i.style + " " + strings.Join(i.scopes, " ")
}

// key identifies a row the way search matches identify their owner.
func (i paletteItem) key() string {
	switch {
	case i.style != "":
		return "style\x00" + i.style + "\x00" + i.hex
	case i.hex != "":
		return "color\x00" + i.hex
	default:
		return "plain"
	}
}

func matchKey(m palette.Match) string {
	switch {
	case m.Style != "":
		return "style\x00" + m.Style + "\x00" + m.Hex
	case m.Plain:
		return "plain"
	default:
		return "color\x00" + m.Hex
	}
}

// paletteDelegate is a custom list delegate that renders each row in its own
// color.
type paletteDelegate struct {
	list.DefaultDelegate
}

// newPaletteDelegate creates a new palette delegate.
func newPaletteDelegate() paletteDelegate {
	d := list.NewDefaultDelegate()
	return paletteDelegate{DefaultDelegate: d}
}

// Render renders a list item with the row's color as the title foreground.
// All items are rendered consistently to avoid visual glitches.
func (d paletteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(paletteItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	// Check if this item is selected
	isSelected := index == m.Index()

	// Get item width from the list
	itemWidth := m.Width() - d.DefaultDelegate.Styles.NormalTitle.GetHorizontalPadding()

	// Styles
	var titleStyle, descStyle lipgloss.Style
	if isSelected {
		titleStyle = d.DefaultDelegate.Styles.SelectedTitle
		descStyle = d.DefaultDelegate.Styles.SelectedDesc
	} else {
		titleStyle = d.DefaultDelegate.Styles.NormalTitle
		descStyle = d.DefaultDelegate.Styles.NormalDesc
	}

	if pi.hex != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(pi.col.RGBHex()))
		if pi.col.Luminance() < darkThreshold {
			titleStyle = titleStyle.Background(lipgloss.Color("15")).Bold(true)
		}
	} else {
		// Colorless rows: dimmed/gray
		titleStyle = titleStyle.Foreground(lipgloss.Color("8"))
	}

	title := pi.Title()
	desc := pi.Description()

	// Truncate if needed
	if itemWidth > 0 && len(title) > itemWidth {
		title = title[:itemWidth-1] + "…"
	}
	if itemWidth > 0 && len(desc) > itemWidth {
		desc = desc[:itemWidth-1] + "…"
	}

	// Render using the same structure as DefaultDelegate
	fmt.Fprint(w, titleStyle.Render(title))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, descStyle.Render(desc))
}

// New creates a new TUI model.
func New(cfg *config.Config, p *palette.Palette, reload func() (*palette.Palette, error)) Model {
	// Initialize components with custom delegate for styling
	delegate := newPaletteDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = listTitle(p.Theme)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("color", "colors")
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	searchInput := textinput.New()
	searchInput.Placeholder = "Search scopes..."
	searchInput.CharLimit = 100

	h := help.New()

	return Model{
		cfg:         cfg,
		palette:     p,
		reload:      reload,
		mode:        ModeList,
		list:        l,
		searchInput: searchInput,
		help:        h,
		keys:        DefaultKeyMap(),
	}
}

// listTitle builds the list header from the theme's name and type.
func listTitle(t *theme.Theme) string {
	if t == nil {
		return "Theme Colors"
	}
	if t.Type != "" {
		return fmt.Sprintf("%s (%s)", t.Name, t.Type)
	}
	return t.Name
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.loadItems
}

// loadItems populates the list from the palette.
func (m Model) loadItems() tea.Msg {
	return loadItemsMsg{}
}

type loadItemsMsg struct{}

// reloadMsg asks the model to re-read the theme from disk.
type reloadMsg struct{}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	err error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Update component sizes
		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		m.viewport.YPosition = 2
		if m.selected != nil {
			m.viewport.SetContent(m.renderDetail(*m.selected))
		}

		return m, nil

	case loadItemsMsg:
		m.list.SetItems(m.buildListItems())
		return m, nil

	case reloadMsg:
		if m.reload == nil {
			return m, nil
		}
		p, err := m.reload()
		if err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Reload failed: " + err.Error(), isErr: true}
			}
		}
		m.palette = p
		m.list.Title = listTitle(p.Theme)
		m.list.SetItems(m.buildListItems())
		if m.mode == ModeDetail {
			m.mode = ModeList
			m.selected = nil
		}
		return m, func() tea.Msg {
			return statusMsg{text: "Theme reloaded", isErr: false}
		}

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Copy failed: " + msg.err.Error(), isErr: true}
			}
		}
		return m, func() tea.Msg {
			return statusMsg{text: "Copied to clipboard", isErr: false}
		}
	}

	// Update child components
	switch m.mode {
	case ModeList:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	case ModeDetail:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	case ModeSearch:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search mode owns printable keys ("q" can appear in a scope name), so
	// only ctrl+c breaks out of it directly.
	if m.mode == ModeSearch {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleSearchKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeList
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	}

	// Mode-specific keys
	switch m.mode {
	case ModeList:
		return m.handleListKey(msg)
	case ModeDetail:
		return m.handleDetailKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeList
		}
		return m, nil
	}

	return m, nil
}

// handleListKey handles keys in list mode.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if item, ok := m.list.SelectedItem().(paletteItem); ok {
			m.selected = &item
			m.mode = ModeDetail
			m.viewport.SetContent(m.renderDetail(item))
			m.viewport.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if item, ok := m.list.SelectedItem().(paletteItem); ok {
			if item.hex != "" {
				return m, m.copyToClipboard(item.hex)
			}
			return m, m.copyToClipboard(strings.Join(item.scopes, "\n"))
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyScopes):
		if item, ok := m.list.SelectedItem().(paletteItem); ok {
			return m, m.copyToClipboard(strings.Join(item.scopes, "\n"))
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyAllJSON):
		// Copy currently visible rows
		rows := m.visibleRows()
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Failed to marshal JSON: " + err.Error(), isErr: true}
			}
		}
		return m, m.copyToClipboard(string(data))

	case key.Matches(msg, m.keys.CopyAllYAML):
		// Copy currently visible rows
		rows := m.visibleRows()
		data, err := yaml.Marshal(rows)
		if err != nil {
			return m, func() tea.Msg {
				return statusMsg{text: "Failed to marshal YAML: " + err.Error(), isErr: true}
			}
		}
		return m, m.copyToClipboard(string(data))

	case key.Matches(msg, m.keys.ToggleStyles):
		m.showStyles = !m.showStyles
		m.list.SetItems(m.buildListItems())
		if m.showStyles {
			return m, func() tea.Msg {
				return statusMsg{text: "Showing font styles", isErr: false}
			}
		}
		return m, func() tea.Msg {
			return statusMsg{text: "Hiding font styles", isErr: false}
		}

	case key.Matches(msg, m.keys.Search):
		// Reset search when entering search mode
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.list.SetItems(m.buildListItems())
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Reload):
		return m, func() tea.Msg { return reloadMsg{} }
	}

	// Pass to list
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleDetailKey handles keys in detail mode.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeList
		m.selected = nil
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.selected != nil && m.selected.hex != "" {
			return m, m.copyToClipboard(m.selected.hex)
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyScopes):
		if m.selected != nil {
			return m, m.copyToClipboard(strings.Join(m.selected.scopes, "\n"))
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		// Go to search mode, reset search and show full list
		m.selected = nil
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.list.SetItems(m.buildListItems())
		m.mode = ModeSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	// Pass to viewport
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSearchKey handles keys in search mode.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Esc exits search mode and clears search
		m.mode = ModeList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.searchQuery = ""
		m.list.SetItems(m.buildListItems())
		return m, nil

	case tea.KeyEnter:
		// Enter opens the selected row (like in list mode)
		if item, ok := m.list.SelectedItem().(paletteItem); ok {
			m.selected = &item
			m.mode = ModeDetail
			m.searchInput.Blur()
			m.viewport.SetContent(m.renderDetail(item))
			m.viewport.GotoTop()
		}
		return m, nil

	case tea.KeyUp, tea.KeyDown:
		// Allow navigating the list while searching
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	// Pass to text input
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Live filtering: update search query and rebuild list on each keystroke
	m.searchQuery = m.searchInput.Value()
	m.list.SetItems(m.buildListItems())

	return m, cmd
}

// paletteRows flattens the palette into display rows: colors first, then
// style groups and the unstyled scopes when includeStyles is set.
func paletteRows(p *palette.Palette, includeStyles bool) []paletteItem {
	var rows []paletteItem
	for i, e := range p.Entries {
		rows = append(rows, paletteItem{hex: e.Hex, col: e.Color, scopes: e.Scopes, pos: i + 1})
	}
	if !includeStyles {
		return rows
	}
	for _, g := range p.Styles {
		for _, e := range g.Entries {
			rows = append(rows, paletteItem{hex: e.Hex, col: e.Color, style: g.Style, scopes: e.Scopes})
		}
	}
	if len(p.Plain) > 0 {
		rows = append(rows, paletteItem{scopes: p.Plain})
	}
	return rows
}

// buildListItems creates list items from the palette, filtered by the active
// search query.
func (m Model) buildListItems() []list.Item {
	rows := paletteRows(m.palette, m.showStyles)

	// Apply search filter if active
	if m.searchQuery != "" {
		keep := make(map[string]bool)
		for _, match := range m.palette.Search(m.searchQuery) {
			keep[matchKey(match)] = true
		}
		var filtered []paletteItem
		for _, r := range rows {
			if keep[r.key()] {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = r
	}
	return items
}

// copyRow is the clipboard shape for copy-all.
type copyRow struct {
	Color     string   `json:"color,omitempty" yaml:"color,omitempty"`
	FontStyle string   `json:"fontStyle,omitempty" yaml:"fontStyle,omitempty"`
	Scopes    []string `json:"scopes" yaml:"scopes"`
}

// visibleRows snapshots the currently visible list rows for copy-all.
func (m Model) visibleRows() []copyRow {
	items := m.list.Items()
	rows := make([]copyRow, 0, len(items))
	for _, item := range items {
		if pi, ok := item.(paletteItem); ok {
			rows = append(rows, copyRow{Color: pi.hex, FontStyle: pi.style, Scopes: pi.scopes})
		}
	}
	return rows
}

// renderDetail renders the detail view for a palette row.
func (m Model) renderDetail(pi paletteItem) string {
	var s string

	// Header
	headerStyle := lipgloss.NewStyle().
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	scopeStyle := lipgloss.NewStyle()

	if pi.hex != "" {
		headerStyle = headerStyle.Foreground(lipgloss.Color(pi.col.RGBHex()))
		scopeStyle = scopeStyle.Foreground(lipgloss.Color(pi.col.RGBHex()))
		if pi.col.Luminance() < darkThreshold {
			headerStyle = headerStyle.Background(lipgloss.Color("15"))
			scopeStyle = scopeStyle.Background(lipgloss.Color("15")).Bold(true)
		}
	}

	switch {
	case pi.style != "" && pi.hex != "":
		s += headerStyle.Render(pi.style+"  "+pi.hex) + "\n\n"
	case pi.style != "":
		s += headerStyle.Render(pi.style) + "\n\n"
	case pi.hex != "":
		s += headerStyle.Render(pi.hex) + "\n\n"
	default:
		s += headerStyle.Render("unstyled") + "\n\n"
	}

	// Metadata
	if pi.pos > 0 {
		s += labelStyle.Render("Position: ") + fmt.Sprintf("%d of %d", pi.pos, len(m.palette.Entries)) + "\n"
	}
	if pi.hex != "" {
		c := pi.col
		h, sat, val := c.HSV()
		s += labelStyle.Render("RGB: ") + fmt.Sprintf("%d %d %d", c.R, c.G, c.B) + "\n"
		s += labelStyle.Render("HSV: ") + fmt.Sprintf("%.0f° %.0f%% %.0f%%", h, sat, val) + "\n"
		s += labelStyle.Render("Luminance: ") + fmt.Sprintf("%.2f", c.Luminance()) + "\n"
		if c.A != 0xff {
			s += labelStyle.Render("Alpha: ") + fmt.Sprintf("%d%%", int(float64(c.A)/255*100)) + "\n"
		}
	}

	// Scopes
	s += "\n" + labelStyle.Render(fmt.Sprintf("Scopes (%d):", len(pi.scopes))) + "\n"
	for _, scope := range pi.scopes {
		s += scopeStyle.Render(scope) + "\n"
	}

	return s
}

// copyToClipboard copies text to the system clipboard.
func (m Model) copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := copyText(text, m.cfg)
		return copyResultMsg{err: err}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case ModeList:
		return m.viewList()
	case ModeDetail:
		return m.viewDetail()
	case ModeSearch:
		return m.viewSearch()
	case ModeHelp:
		return m.viewHelp()
	default:
		return ""
	}
}

func (m Model) viewList() string {
	var s string
	s += m.list.View()

	// Status bar
	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
		if m.statusErr {
			statusStyle = statusStyle.Foreground(lipgloss.Color("9"))
		}
		s += "\n" + statusStyle.Render(m.statusMsg)
	} else {
		s += "\n" + m.buildKeybindBar(m.width, "list")
	}

	return s
}

func (m Model) viewDetail() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	header := headerStyle.Render("Color Detail")

	return header + "\n" + m.viewport.View() + "\n" + m.buildKeybindBar(m.width, "detail")
}

func (m Model) viewSearch() string {
	matchCount := len(m.list.Items())
	countStr := fmt.Sprintf("(%d matches)", matchCount)

	// Show search bar at top, then the filtered list, then keybinds
	searchBar := "Search: " + m.searchInput.View() + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(countStr)

	return searchBar + "\n" + m.list.View() + "\n" + m.buildKeybindBar(m.width, "search")
}

func (m Model) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	s := titleStyle.Render("Keyboard Shortcuts") + "\n\n"
	s += m.help.FullHelpView(m.keys.FullHelp())

	s += "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(
		"Press ? or esc to return")

	return s
}

// keybind represents a single keybind with priority for the status bar.
type keybind struct {
	key      string
	desc     string
	priority int // lower = more important (shown first)
}

// buildKeybindBar builds a keybind bar that fits within the given width.
// mode determines which keybinds are shown: "list", "detail", "search"
func (m Model) buildKeybindBar(width int, mode string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	var binds []keybind

	switch mode {
	case "list":
		// Priority order for list mode (most important first)
		binds = []keybind{
			{"q", "quit", 1},
			{"enter", "view", 2},
			{"?", "help", 3},
			{"/", "search", 4},
			{"a", "styles", 5},
			{"c", "copy", 6},
			{"s", "scopes", 7},
			{"C", "json", 8},
			{"r", "reload", 9},
		}
	case "detail":
		binds = []keybind{
			{"q", "quit", 1},
			{"esc", "back", 2},
			{"/", "search", 3},
			{"c", "copy color", 4},
			{"s", "copy scopes", 5},
			{"j/k", "scroll", 6},
		}
	case "search":
		binds = []keybind{
			{"enter", "view", 1},
			{"esc", "close", 2},
			{"↑/↓", "navigate", 3},
		}
	}

	// Build the bar, adding keybinds until we run out of space
	const separator = "  "
	result := ""
	for _, b := range binds {
		item := keyStyle.Render(b.key) + " " + b.desc
		plainItem := b.key + " " + b.desc
		testLen := len(result) + len(separator) + len(plainItem)
		if result != "" {
			testLen = len(stripANSI(result)) + len(separator) + len(plainItem)
		}

		if width > 0 && testLen > width {
			break
		}
		if result != "" {
			result += separator
		}
		result += item
	}

	return style.Render(result)
}

// stripANSI removes ANSI escape codes for length calculation.
func stripANSI(s string) string {
	result := make([]byte, 0, len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result = append(result, s[i])
	}
	return string(result)
}

// RunOptions configures the TUI.
type RunOptions struct {
	Config  *config.Config
	Palette *palette.Palette
	Reload  func() (*palette.Palette, error) // Re-reads the theme from disk
	Watch   bool                             // Reload automatically when chain files change
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	m := New(opts.Config, opts.Palette, opts.Reload)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Start file watcher if requested
	var watcher *theme.Watcher
	if opts.Watch && opts.Reload != nil && opts.Palette.Theme != nil {
		var err error
		watcher, err = theme.NewWatcher(opts.Palette.Theme.Chain, func() {
			p.Send(reloadMsg{})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create file watcher: %v\n", err)
		} else if err := watcher.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to start file watcher: %v\n", err)
		}
	}

	_, err := p.Run()

	// Stop watcher on exit
	if watcher != nil {
		watcher.Stop()
	}

	return err
}
