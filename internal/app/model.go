package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hrutik5321/dhumal/internal/config"
	"github.com/hrutik5321/dhumal/internal/db"
	"github.com/hrutik5321/dhumal/internal/ui/table"
)

// ----- Modes -----

type mode int

const (
	modeForm mode = iota
	modeTables
	modeRows
)

const defaultPageSize = 10

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// ----- Messages from async DB commands -----

type dbResultMsg struct {
	err error
}

type tablesResultMsg struct {
	tables []string
	err    error
}

type rowsResultMsg struct {
	page db.RowPage
	err  error
}

// ----- Model -----

type Model struct {
	dbClient db.DB
	conn     db.ConnConfig
	log      zerolog.Logger

	// form inputs
	hostInput textinput.Model
	portInput textinput.Model
	userInput textinput.Model
	passInput textinput.Model
	dbInput   textinput.Model

	focusIndex int

	// state
	mode          mode
	status        string
	failed        bool
	loading       bool
	tableNames    []string
	tableCursor   int
	selectedTable string

	columns []string
	rows    []table.Row

	// rendering
	style   config.RenderConfig
	justify bool
	border  bool
	sortCol int // -1 keeps database order

	// pagination
	pageSize  int
	offset    int
	totalRows int

	// filtering
	filter        string
	filterInput   textinput.Model
	editingFilter bool

	// terminal / scroll
	width       int
	horizOffset int
}

// ----- Initial model -----

func initialModel(dbClient db.DB, opts Options) Model {
	host := textinput.New()
	host.Placeholder = "localhost"
	host.Prompt = "Host: "
	host.SetValue(opts.Conn.Host)

	port := textinput.New()
	port.Placeholder = "5432"
	port.Prompt = "Port: "
	port.SetValue(opts.Conn.Port)

	user := textinput.New()
	user.Placeholder = "postgres"
	user.Prompt = "User: "
	user.SetValue(opts.Conn.User)

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.Prompt = "Password: "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.SetValue(opts.Conn.Password)

	dbInput := textinput.New()
	dbInput.Placeholder = "database name"
	dbInput.Prompt = "Database: "
	dbInput.SetValue(opts.Conn.Database)

	filterInput := textinput.New()
	filterInput.Placeholder = "id > 10 AND status = 'active'"
	filterInput.Prompt = "WHERE "

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	m := Model{
		dbClient:   dbClient,
		conn:       opts.Conn,
		log:        opts.Logger,
		hostInput:  host,
		portInput:  port,
		userInput:  user,
		passInput:  pass,
		dbInput:    dbInput,
		focusIndex: 0,
		mode:       modeForm,
		status:     "Fill details and press Enter to connect.",
		style:      opts.Style,
		justify:    opts.Style.Justify,
		border:     !opts.Style.NoBorder,
		sortCol:    -1,
		pageSize:   pageSize,

		filterInput: filterInput,
	}

	if m.autoConnect() {
		m.loading = true
		m.status = "Connecting to DB..."
	}

	m.hostInput.Focus()
	return m
}

// autoConnect reports whether the connection settings are complete without the form.
func (m Model) autoConnect() bool {
	return m.conn.DSN != "" || (m.conn.Driver == "sqlite" && m.conn.Database != "")
}

func (m Model) Init() tea.Cmd {
	if m.autoConnect() {
		return connectCmd(m.dbClient, m.conn)
	}
	return textinput.Blink
}

// ----- Commands (async DB operations) -----

func connectCmd(client db.DB, cfg db.ConnConfig) tea.Cmd {
	return func() tea.Msg {
		err := client.Connect(context.Background(), cfg)
		return dbResultMsg{err: err}
	}
}

func listTablesCmd(client db.DB) tea.Cmd {
	return func() tea.Msg {
		tables, err := client.ListTables(context.Background())
		return tablesResultMsg{tables: tables, err: err}
	}
}

func fetchRowsCmd(client db.DB, tableName string, opts db.QueryOptions) tea.Cmd {
	return func() tea.Msg {
		page, err := client.FetchRows(context.Background(), tableName, opts)
		return rowsResultMsg{page: page, err: err}
	}
}

func (m Model) fetchPage(offset int) tea.Cmd {
	m.log.Debug().Str("table", m.selectedTable).Int("offset", offset).Str("filter", m.filter).Msg("fetching rows")
	return fetchRowsCmd(
		m.dbClient,
		m.selectedTable,
		db.QueryOptions{
			Limit:  m.pageSize,
			Offset: offset,
			Filter: m.filter,
		},
	)
}

func (m *Model) fail(prefix string, err error) {
	m.log.Error().Err(err).Msg(prefix)
	m.status = prefix + ": " + err.Error()
	m.failed = true
}

func (m *Model) info(status string) {
	m.status = status
	m.failed = false
}

// ----- Update -----

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// connection result
	case dbResultMsg:
		m.loading = false
		if msg.err != nil {
			m.fail("Connection failed", msg.err)
			m.mode = modeForm
			return m, nil
		}

		m.info("Connected! Fetching tables...")
		m.mode = modeTables
		m.loading = true
		return m, listTablesCmd(m.dbClient)

	// tables result
	case tablesResultMsg:
		m.loading = false
		if msg.err != nil {
			m.fail("Failed to fetch tables", msg.err)
			m.mode = modeForm
			return m, nil
		}
		m.tableNames = msg.tables
		m.tableCursor = 0
		if len(msg.tables) == 0 {
			m.info("Connected but no tables found.")
		} else {
			m.info(fmt.Sprintf("%d table(s).", len(msg.tables)))
		}
		return m, nil

	// rows result (with pagination info)
	case rowsResultMsg:
		m.loading = false
		if msg.err != nil {
			m.fail("Failed to fetch rows", msg.err)
			m.mode = modeTables
			return m, nil
		}
		m.columns = msg.page.Columns
		m.rows = msg.page.Rows
		m.totalRows = msg.page.TotalRows
		m.offset = msg.page.Offset
		m.sortCol = -1
		m.info(fmt.Sprintf("Showing rows (page size %d).", m.pageSize))
		m.mode = modeRows
		return m, nil

	// window size
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// ----- Key handling dispatcher -----

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateFormKey(msg)
	case modeTables:
		return m.updateTablesKey(msg)
	case modeRows:
		return m.updateRowsKey(msg)
	default:
		return m, nil
	}
}

// --- form mode ---

func (m Model) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focusIndex++
		if m.focusIndex > 4 {
			m.focusIndex = 4
		}
	case "shift+tab", "up":
		m.focusIndex--
		if m.focusIndex < 0 {
			m.focusIndex = 0
		}
	case "enter":
		// if last field -> connect
		if m.focusIndex == 4 {
			m.loading = true
			m.info("Connecting to DB...")
			m.conn.Host = m.hostInput.Value()
			m.conn.Port = m.portInput.Value()
			m.conn.User = m.userInput.Value()
			m.conn.Password = m.passInput.Value()
			m.conn.Database = m.dbInput.Value()
			return m, connectCmd(m.dbClient, m.conn)
		}
		// otherwise move focus
		m.focusIndex++
		if m.focusIndex > 4 {
			m.focusIndex = 4
		}
	}

	// manage focus + inputs only in form mode
	cmds := m.updateFocus()
	var cmd tea.Cmd
	switch m.focusIndex {
	case 0:
		m.hostInput, cmd = m.hostInput.Update(msg)
	case 1:
		m.portInput, cmd = m.portInput.Update(msg)
	case 2:
		m.userInput, cmd = m.userInput.Update(msg)
	case 3:
		m.passInput, cmd = m.passInput.Update(msg)
	case 4:
		m.dbInput, cmd = m.dbInput.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// --- tables mode ---

func (m Model) updateTablesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "up", "k":
		if m.tableCursor > 0 {
			m.tableCursor--
		}
	case "down", "j":
		if m.tableCursor < len(m.tableNames)-1 {
			m.tableCursor++
		}
	case "enter":
		if len(m.tableNames) == 0 {
			return m, nil
		}
		m.selectedTable = m.tableNames[m.tableCursor]
		m.loading = true
		m.offset = 0
		m.horizOffset = 0
		m.filter = ""
		m.info("Fetching rows from " + m.selectedTable + "...")
		return m, m.fetchPage(0)
	}
	return m, nil
}

// --- rows mode ---

func (m Model) updateRowsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// editing filter
	if m.editingFilter {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.editingFilter = false
			m.filter = ""
			m.loading = true
			m.info("Filter cancelled. Press '/' to filter again.")
			return m, m.fetchPage(0)
		case "enter":
			m.filter = strings.TrimSpace(m.filterInput.Value())
			m.editingFilter = false
			m.loading = true
			m.info("Applying filter...")
			return m, m.fetchPage(0)
		}

		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	// normal rows controls
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	// remove filters
	case "r":
		m.filter = ""
		m.loading = true
		m.info("Fetching rows from " + m.selectedTable + "...")
		return m, m.fetchPage(0)

	case "b":
		m.mode = modeTables
		m.info("Use ↑/↓ and Enter to select another table.")

	case "/":
		m.editingFilter = true
		m.filterInput.Placeholder = "Add Your Filter Here"
		m.filterInput.SetValue(m.filter)
		m.filterInput.Focus()
		m.info("Enter SQL WHERE clause (without 'WHERE'). Enter to apply, Esc to cancel.")
		return m, nil

	// layout toggles
	case "J":
		m.justify = !m.justify
	case "B":
		m.border = !m.border
	case "s":
		m.cycleSort()

	// pagination
	case "n":
		if m.totalRows == 0 {
			return m, nil
		}
		nextOffset := m.offset + m.pageSize
		if nextOffset >= m.totalRows {
			m.info("Already at last page.")
			return m, nil
		}
		m.loading = true
		m.info("Loading next page...")
		return m, m.fetchPage(nextOffset)

	case "p":
		if m.totalRows == 0 {
			return m, nil
		}
		prevOffset := max(m.offset-m.pageSize, 0)
		if prevOffset == m.offset {
			m.info("Already at first page.")
			return m, nil
		}
		m.loading = true
		m.info("Loading previous page...")
		return m, m.fetchPage(prevOffset)

	// fast horizontal scroll
	case "left", "h":
		m.horizOffset = max(m.horizOffset-4, 0)
	case "right", "l":
		m.horizOffset += 4
	case "shift+left":
		m.horizOffset = max(m.horizOffset-16, 0)
	case "shift+right":
		m.horizOffset += 16
	}

	return m, nil
}

// cycleSort sorts the current page by the next column, wrapping back to database order.
func (m *Model) cycleSort() {
	m.sortCol++
	if m.sortCol >= len(m.columns) {
		m.sortCol = -1
		m.info("Rows in database order.")
		return
	}
	m.info("Sorted page by " + m.columns[m.sortCol] + ".")
}

// ----- Focus handling for form -----

func (m *Model) updateFocus() []tea.Cmd {
	var cmds []tea.Cmd

	m.hostInput.Blur()
	m.portInput.Blur()
	m.userInput.Blur()
	m.passInput.Blur()
	m.dbInput.Blur()

	switch m.focusIndex {
	case 0:
		cmds = append(cmds, m.hostInput.Focus())
	case 1:
		cmds = append(cmds, m.portInput.Focus())
	case 2:
		cmds = append(cmds, m.userInput.Focus())
	case 3:
		cmds = append(cmds, m.passInput.Focus())
	case 4:
		cmds = append(cmds, m.dbInput.Focus())
	}

	return cmds
}

// ----- Views -----

func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeTables:
		return m.viewTables()
	case modeRows:
		return m.viewRows()
	default:
		return "Unknown state"
	}
}

func (m Model) statusLine() string {
	if m.failed {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) viewForm() string {
	loading := ""
	if m.loading {
		loading = "\n\n[Working...]"
	}

	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n%s\n%s\n\n%s%s\n\n%s\n",
		titleStyle.Render("Enter Database Credentials:"),
		m.hostInput.View(),
		m.portInput.View(),
		m.userInput.View(),
		m.passInput.View(),
		m.dbInput.View(),
		m.statusLine(),
		loading,
		helpStyle.Render("(ctrl+c/esc to quit)"),
	)
}

func (m Model) viewTables() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tables:") + "\n\n")

	if len(m.tableNames) == 0 && !m.loading {
		b.WriteString("  (no tables found)\n")
	}

	for i, t := range m.tableNames {
		cursor := "  "
		if i == m.tableCursor {
			cursor = "> "
		}
		b.WriteString(cursor + t + "\n")
	}

	if m.loading {
		b.WriteString("\nLoading...\n")
	}

	b.WriteString("\n" + m.statusLine() + "\n")
	b.WriteString("\n" + helpStyle.Render("Use ↑/↓ and Enter. Press q or ctrl+c to quit.") + "\n")

	return b.String()
}

// pageTable renders the current page with the configured style and the toggles.
func (m Model) pageTable() *table.Table {
	page := db.RowPage{Columns: m.columns, Rows: m.rows}
	t := page.Table("")
	if err := m.style.Apply(t); err != nil {
		m.log.Warn().Err(err).Msg("ignoring render style")
	}
	t.SetPrefix("")
	t.SetJustify(m.justify)
	if !m.border {
		t.RemoveBorder()
	}
	if m.sortCol >= 0 {
		t.SortColumn(m.sortCol, nil)
	}
	return t
}

func (m Model) viewRows() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Rows from table: "+m.selectedTable) + "\n\n")

	if m.filter != "" {
		fmt.Fprintf(&b, "Active filter: WHERE %s\n\n", m.filter)
	}

	if len(m.columns) == 0 {
		b.WriteString("(No rows or columns found)\n")
	} else {
		b.WriteString(m.pageTable().Render() + "\n")
	}

	if m.filter != "" {
		b.WriteString("\nPress 'r' to refresh the table (clear filter)\n")
	}

	// Pagination info
	if m.totalRows > 0 {
		start := m.offset + 1
		end := min(m.offset+len(m.rows), m.totalRows)
		totalPages := (m.totalRows + m.pageSize - 1) / m.pageSize
		currentPage := (m.offset / m.pageSize) + 1

		fmt.Fprintf(&b,
			"\nRows %d–%d of %d (Page %d/%d, page size %d)\n",
			start, end, m.totalRows, currentPage, totalPages, m.pageSize,
		)
	} else {
		b.WriteString("\n(No rows)\n")
	}

	if m.editingFilter {
		// the box is sized from plain text; the styled input view carries escapes
		box := table.New("")
		box.SetBorder(table.Border{Edge: "│", Fill: "─", Top: "─", Bottom: "─"})
		box.AddRow(table.Row{table.Text(m.filterInput.Prompt + m.filterInput.Value())})
		b.WriteString("\nFilter\n" + box.Render() + "\n")
	}

	b.WriteString("\n" + m.statusLine() + "\n")
	b.WriteString("\n" + helpStyle.Render("b: tables  q: quit  n/p: page  /: filter  s: sort  J: justify  B: border  ←/→ h/l: scroll") + "\n")

	// apply horizontal scroll based on terminal width and offset
	return table.ApplyHorizontalScroll(b.String(), m.horizOffset, m.width)
}
