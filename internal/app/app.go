package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dbtea/dbtea/internal/config"
	"github.com/dbtea/dbtea/internal/core"
	"github.com/dbtea/dbtea/internal/db/connection"
	"github.com/dbtea/dbtea/internal/db/metadata"
	"github.com/dbtea/dbtea/internal/db/query"
	"github.com/dbtea/dbtea/internal/export"
	"github.com/dbtea/dbtea/internal/history"
	"github.com/dbtea/dbtea/internal/keymap"
	"github.com/dbtea/dbtea/internal/models"
	"github.com/dbtea/dbtea/internal/nav"
	"github.com/dbtea/dbtea/internal/ui/components"
	"github.com/dbtea/dbtea/internal/ui/theme"
	"github.com/dbtea/dbtea/internal/vim"
)

const (
	defaultPageLimit = 100
	dbTimeout        = 30 * time.Second
)

// App is the main application model. Key events run synchronously through
// the core; every effect with real latency becomes a tea.Cmd whose
// completion message is routed back into the core on the update loop.
type App struct {
	cfg  *config.Config
	th   theme.Theme
	log  *logrus.Logger
	core *core.Core

	connections *connection.Manager
	history     *history.Store

	// views
	connectionsView *components.TreeView
	schemaView      *components.TreeView
	tableView       *components.TableView
	queryView       *components.EditorView
	commandView     *components.EditorView
	searchInput     *components.SearchInput
	showSearch      bool

	// retained result context; the foreign key follow needs the cell
	// value, which the effect's cell reference does not carry.
	resultColumns []string
	resultRows    [][]string
	currentSchema string
	currentTable  string
	sortColumn    string
	pageOffset    int
	pageLimit     int
	totalRows     int64

	schemaTree *models.TreeNode

	width, height int
	message       string
	lastErr       error
}

type schemaLoadedMsg struct {
	root *models.TreeNode
	err  error
}

type queryDoneMsg struct {
	id  uuid.UUID
	sql string
	res models.QueryResult
}

type lookupDoneMsg struct {
	id  uuid.UUID
	loc models.TargetLocation
	res models.QueryResult
	err error
}

type historyFoundMsg struct {
	query string
	found bool
}

type pageDoneMsg struct {
	schema string
	table  string
	page   metadata.Page
	err    error
}

type pingDoneMsg struct {
	latency time.Duration
	err     error
}

// New creates the application model
func New(cfg *config.Config, keys *keymap.Table, editing models.EditingMode, log *logrus.Logger, conns *connection.Manager, hist *history.Store) *App {
	th := theme.GetTheme(cfg.UI.Theme)

	reg := vim.NewRegister()
	reg.SyncClipboard = true
	c := core.New(keys, editing, reg)

	emptyRoot := models.NewTreeNode("root", models.TreeNodeTypeRoot, "no connection")
	emptyRoot.Expanded = true

	a := &App{
		cfg:             cfg,
		th:              th,
		log:             log,
		core:            c,
		connections:     conns,
		history:         hist,
		connectionsView: components.NewTreeView(nil, th),
		schemaView:      components.NewTreeView(emptyRoot, th),
		tableView:       components.NewTableView(th),
		searchInput:     components.NewSearchInput(th),
		pageLimit:       defaultPageLimit,
		schemaTree:      emptyRoot,
	}

	if box := c.Nav().Boxes().Active(models.PaneQueryInput); box != nil {
		a.queryView = components.NewEditorView(box.Editor, th)
	}
	if box := c.Nav().Boxes().Active(models.PaneCommandLine); box != nil {
		a.commandView = components.NewEditorView(box.Editor, th)
		a.commandView.Height = 1
	}

	a.rebuildConnections()
	return a
}

// rebuildConnections refreshes the connections pane from the manager
// and resizes its cursor.
func (a *App) rebuildConnections() {
	root := models.NewTreeNode("root", models.TreeNodeTypeRoot, "connections")
	root.Expanded = true

	active := a.connections.ActiveID()
	for _, conn := range a.connections.GetAll() {
		label := conn.ID
		switch {
		case conn.Err != nil:
			label += " (error)"
		case !conn.Connected:
			label += " (closed)"
		case conn.ID == active:
			label += " *"
		}
		root.AddChild(models.NewTreeNode("conn:"+conn.ID, models.TreeNodeTypeConnection, label))
	}

	a.connectionsView.SetRoot(root)
	a.core.SetConnectionCount(len(root.Children))
}

// Init loads the schema tree for the active connection.
func (a *App) Init() tea.Cmd {
	return a.loadSchema
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.showSearch {
			var cmd tea.Cmd
			a.searchInput, cmd = a.searchInput.Update(msg)
			return a, cmd
		}
		ev, ok := translateKey(msg)
		if !ok {
			return a, nil
		}
		a.message = ""
		a.lastErr = nil
		return a, a.apply(a.core.HandleKey(ev))

	case components.SearchInputMsg:
		a.showSearch = false
		return a, a.searchHistory(msg.Query)

	case components.CloseSearchMsg:
		a.showSearch = false
		return a, nil

	case historyFoundMsg:
		if !msg.found {
			a.message = "no matching history"
			return a, nil
		}
		if box := a.core.Nav().Boxes().Active(models.PaneQueryInput); box != nil && box.Editor != nil {
			box.Editor.SetContent(msg.query)
		}
		a.core.Nav().FocusPane(models.PaneQueryInput)
		return a, nil

	case schemaLoadedMsg:
		if msg.err == nil && msg.root != nil {
			a.schemaTree = msg.root
			a.schemaView.SetRoot(msg.root)
		}
		return a, a.apply(a.core.OnSchemaLoaded(msg.root, msg.err))

	case pingDoneMsg:
		a.rebuildConnections()
		if msg.err != nil {
			return a, a.apply(nav.ShowError(msg.err))
		}
		a.message = fmt.Sprintf("pong in %s", msg.latency.Round(time.Millisecond))
		return a, nil

	case queryDoneMsg:
		eff := a.core.OnQueryComplete(msg.id, msg.res)
		if eff.Kind == nav.EffectFocusChanged {
			a.retainResults("", "", msg.res)
			a.totalRows = int64(len(msg.res.Rows))
			a.pageOffset = 0
			a.sortColumn = ""
			a.message = fmt.Sprintf("%d rows in %s", len(msg.res.Rows), msg.res.Duration.Round(time.Millisecond))
		}
		return a, a.apply(eff)

	case lookupDoneMsg:
		eff := a.core.OnLookupComplete(msg.id, msg.loc, msg.res, msg.err)
		if eff.Kind == nav.EffectFocusChanged {
			a.retainResults(msg.loc.Schema, msg.loc.Table, msg.res)
			a.totalRows = int64(len(msg.res.Rows))
			a.pageOffset = 0
			a.sortColumn = ""
		}
		return a, a.apply(eff)

	case pageDoneMsg:
		if msg.err != nil {
			return a, a.apply(nav.ShowError(msg.err))
		}
		eff := a.core.LoadResults(msg.schema, msg.table, msg.page.Result)
		if eff.Kind == nav.EffectBufferChanged {
			a.retainResults(msg.schema, msg.table, msg.page.Result)
			a.totalRows = msg.page.TotalRows
			a.pageOffset = msg.page.Offset
			a.message = fmt.Sprintf("%s.%s rows %d-%d of %d",
				msg.schema, msg.table,
				msg.page.Offset+1, msg.page.Offset+len(msg.page.Result.Rows), msg.page.TotalRows)
		}
		return a, a.apply(eff)
	}

	return a, nil
}

// retainResults mirrors the data backing the results pane so that effects
// referencing cells by position can be resolved to values.
func (a *App) retainResults(schema, table string, res models.QueryResult) {
	a.resultColumns = res.Columns
	a.resultRows = res.Rows
	a.currentSchema = schema
	a.currentTable = table
	a.core.SetResultContext(schema, table)
	a.tableView.SetData(res.Columns, res.Rows)
}

// apply performs one core effect, returning the follow-up command.
func (a *App) apply(eff nav.Effect) tea.Cmd {
	switch eff.Kind {
	case nav.EffectRequestQuit:
		return tea.Quit

	case nav.EffectRequestQuery:
		a.message = "running query"
		return a.runQuery(eff.RequestID, eff.Query)

	case nav.EffectRequestForeignKeyFollow:
		value, ok := a.cellValue(eff.Cell)
		if !ok {
			return nil
		}
		return a.followForeignKey(eff.RequestID, eff.Cell, value)

	case nav.EffectRequestPageChange:
		return a.changePage(eff.Page)

	case nav.EffectRequestSort:
		if eff.Column < 0 || eff.Column >= len(a.resultColumns) || a.currentTable == "" {
			return nil
		}
		a.sortColumn = a.resultColumns[eff.Column]
		return a.loadPage(a.currentSchema, a.currentTable, 0)

	case nav.EffectRequestSearch:
		a.showSearch = true
		a.searchInput.Reset()
		return nil

	case nav.EffectRequestConfirm:
		return a.confirm(eff.Command)

	case nav.EffectShowError:
		a.lastErr = eff.Err
		a.log.WithError(eff.Err).Error("operation failed")
		return nil
	}
	return nil
}

// cellValue resolves a cell reference against the retained result rows.
func (a *App) cellValue(cell models.CellRef) (string, bool) {
	col := -1
	for i, name := range a.resultColumns {
		if name == cell.Column {
			col = i
			break
		}
	}
	if col < 0 || cell.Row < 0 || cell.Row >= len(a.resultRows) {
		return "", false
	}
	row := a.resultRows[cell.Row]
	if col >= len(row) {
		return "", false
	}
	return row[col], true
}

func (a *App) changePage(dir nav.PageDirection) tea.Cmd {
	if a.currentTable == "" {
		a.message = "no table open"
		return nil
	}

	offset := a.pageOffset
	switch dir {
	case nav.PageFirst:
		offset = 0
	case nav.PageLast:
		if a.totalRows > 0 {
			offset = int((a.totalRows - 1) / int64(a.pageLimit) * int64(a.pageLimit))
		}
	case nav.PageNext:
		if int64(offset+a.pageLimit) < a.totalRows {
			offset += a.pageLimit
		}
	case nav.PagePrev:
		offset -= a.pageLimit
		if offset < 0 {
			offset = 0
		}
	}
	if offset == a.pageOffset && dir != nav.PageFirst {
		return nil
	}
	return a.loadPage(a.currentSchema, a.currentTable, offset)
}

// confirm interprets a confirm effect: an explicit command from the
// command line, or an activation of whatever the focused cursor is on.
func (a *App) confirm(command string) tea.Cmd {
	if command != "" {
		return a.runCommand(command)
	}

	switch a.core.Nav().Focused() {
	case models.PaneConnections:
		return a.activateConnection()
	case models.PaneSchemaExplorer:
		return a.activateTreeNode()
	}
	return nil
}

// activateConnection switches the active connection to the one under
// the connections cursor and reloads its schema.
func (a *App) activateConnection() tea.Cmd {
	box := a.core.Nav().ActiveBox()
	if box == nil {
		return nil
	}
	conns := a.connections.GetAll()
	idx := box.List.Index
	if idx < 0 || idx >= len(conns) {
		return nil
	}
	if err := a.connections.SetActive(conns[idx].ID); err != nil {
		a.lastErr = err
		return nil
	}
	a.rebuildConnections()
	a.message = "active connection: " + conns[idx].ID
	return a.loadSchema
}

// activateTreeNode opens the table under the tree cursor, or toggles a
// schema node's expansion.
func (a *App) activateTreeNode() tea.Cmd {
	box := a.core.Nav().ActiveBox()
	if box == nil || a.schemaTree == nil {
		return nil
	}
	visible := a.schemaTree.Flatten()
	idx := box.List.Index
	if idx < 0 || idx >= len(visible) {
		return nil
	}
	node := visible[idx]

	if node.Type == models.TreeNodeTypeTable {
		schema, table, ok := splitTableID(node.ID)
		if !ok {
			return nil
		}
		a.sortColumn = ""
		return a.loadPage(schema, table, 0)
	}

	node.Toggle()
	return func() tea.Msg {
		return schemaLoadedMsg{root: a.schemaTree}
	}
}

// splitTableID unpacks a "table:schema.name" tree node ID.
func splitTableID(id string) (schema, table string, ok bool) {
	qualified, found := strings.CutPrefix(id, "table:")
	if !found {
		return "", "", false
	}
	schema, table, found = strings.Cut(qualified, ".")
	if !found || schema == "" || table == "" {
		return "", "", false
	}
	return schema, table, true
}

// runCommand executes a colon command.
func (a *App) runCommand(command string) tea.Cmd {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "q", "quit":
		return tea.Quit
	case "theme":
		if len(fields) < 2 {
			a.message = "usage: theme <name>"
			return nil
		}
		a.setTheme(fields[1])
		return nil
	case "limit":
		if len(fields) < 2 {
			a.message = "usage: limit <rows>"
			return nil
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			a.message = "limit must be a positive number"
			return nil
		}
		a.pageLimit = n
		a.message = fmt.Sprintf("page size set to %d", n)
		return nil
	case "export":
		if len(fields) < 3 {
			a.message = "usage: export csv|json <path>"
			return nil
		}
		return a.exportResults(fields[1], fields[2])
	case "disconnect":
		id := a.connections.ActiveID()
		if len(fields) > 1 {
			id = fields[1]
		}
		if id == "" {
			a.message = "no active connection"
			return nil
		}
		return a.disconnect(id)
	case "ping":
		return a.pingActive
	case "refresh":
		return a.loadSchema
	default:
		a.message = fmt.Sprintf("unknown command: %s", fields[0])
		return nil
	}
}

func (a *App) exportResults(format, path string) tea.Cmd {
	if len(a.resultColumns) == 0 {
		a.message = "nothing to export"
		return nil
	}

	var err error
	switch format {
	case "csv":
		err = export.ExportCSV(a.resultColumns, a.resultRows, path)
	case "json":
		err = export.ExportJSON(a.resultColumns, a.resultRows, path)
	default:
		a.message = "export format must be csv or json"
		return nil
	}
	if err != nil {
		a.lastErr = err
		a.log.WithError(err).Error("export failed")
		return nil
	}
	a.message = fmt.Sprintf("exported %d rows to %s", len(a.resultRows), path)
	return nil
}

func (a *App) setTheme(name string) {
	a.th = theme.GetTheme(name)
	a.connectionsView.Theme = a.th
	a.schemaView.Theme = a.th
	a.tableView.Theme = a.th
	a.searchInput.Theme = a.th
	if a.queryView != nil {
		a.queryView.Theme = a.th
	}
	if a.commandView != nil {
		a.commandView.Theme = a.th
	}
	a.message = "theme: " + a.th.Name
}

// disconnect closes one connection and reloads the schema for whichever
// connection got promoted, or clears the tree when none remains.
func (a *App) disconnect(id string) tea.Cmd {
	if err := a.connections.Disconnect(id); err != nil {
		a.lastErr = err
		return nil
	}
	a.rebuildConnections()
	a.message = "disconnected " + id

	if a.connections.ActiveID() == "" {
		empty := models.NewTreeNode("root", models.TreeNodeTypeRoot, "no connection")
		empty.Expanded = true
		return func() tea.Msg {
			return schemaLoadedMsg{root: empty}
		}
	}
	return a.loadSchema
}

// pingActive checks the active connection's liveness.
func (a *App) pingActive() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	start := time.Now()
	err := a.connections.Ping(ctx)
	return pingDoneMsg{latency: time.Since(start), err: err}
}

// loadSchema fetches the schema tree for the active connection.
func (a *App) loadSchema() tea.Msg {
	conn, err := a.connections.GetActive()
	if err != nil {
		return schemaLoadedMsg{err: err}
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	root, err := metadata.FetchSchemaTree(ctx, conn.Pool)
	return schemaLoadedMsg{root: root, err: err}
}

func (a *App) runQuery(id uuid.UUID, sql string) tea.Cmd {
	return func() tea.Msg {
		conn, err := a.connections.GetActive()
		if err != nil {
			return queryDoneMsg{id: id, sql: sql, res: models.QueryResult{Err: err}}
		}
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		res := query.Execute(ctx, conn.Pool.GetPool(), sql)
		a.recordHistory(conn, sql, res)
		return queryDoneMsg{id: id, sql: sql, res: res}
	}
}

func (a *App) recordHistory(conn *connection.Connection, sql string, res models.QueryResult) {
	if a.history == nil {
		return
	}
	entry := history.Entry{
		ConnectionName: conn.Config.Name,
		DatabaseName:   conn.Config.Database,
		Query:          sql,
		ExecutedAt:     time.Now(),
		Duration:       res.Duration,
		RowsAffected:   res.RowsAffected,
		Success:        res.Err == nil,
	}
	if res.Err != nil {
		entry.ErrorMessage = res.Err.Error()
	}
	if err := a.history.Add(entry); err != nil {
		a.log.WithError(err).Warn("failed to record query history")
	}
}

func (a *App) followForeignKey(id uuid.UUID, cell models.CellRef, value string) tea.Cmd {
	return func() tea.Msg {
		conn, err := a.connections.GetActive()
		if err != nil {
			return lookupDoneMsg{id: id, err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		loc, sql, err := metadata.FollowForeignKey(ctx, conn.Pool, cell, value)
		if err != nil {
			return lookupDoneMsg{id: id, err: err}
		}
		res := query.Execute(ctx, conn.Pool.GetPool(), sql)
		return lookupDoneMsg{id: id, loc: loc, res: res}
	}
}

func (a *App) loadPage(schema, table string, offset int) tea.Cmd {
	sortColumn := a.sortColumn
	limit := a.pageLimit
	return func() tea.Msg {
		conn, err := a.connections.GetActive()
		if err != nil {
			return pageDoneMsg{schema: schema, table: table, err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		page, err := metadata.FetchPage(ctx, conn.Pool, schema, table, sortColumn, offset, limit)
		return pageDoneMsg{schema: schema, table: table, page: page, err: err}
	}
}

// searchHistory looks up the most recent matching query; the hit is
// applied on the update loop via historyFoundMsg.
func (a *App) searchHistory(q string) tea.Cmd {
	hist := a.history
	log := a.log
	return func() tea.Msg {
		if hist == nil {
			return historyFoundMsg{}
		}
		entries, err := hist.Search(q, 1)
		if err != nil {
			log.WithError(err).Warn("history search failed")
			return historyFoundMsg{}
		}
		if len(entries) == 0 {
			return historyFoundMsg{}
		}
		return historyFoundMsg{query: entries[0].Query, found: true}
	}
}

// translateKey converts a bubbletea key message into a key event.
func translateKey(msg tea.KeyMsg) (keymap.Event, bool) {
	s := msg.String()

	var mods keymap.Modifier
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+"):
			mods |= keymap.ModCtrl
			s = s[len("ctrl+"):]
		case strings.HasPrefix(s, "alt+"):
			mods |= keymap.ModAlt
			s = s[len("alt+"):]
		case strings.HasPrefix(s, "shift+"):
			mods |= keymap.ModShift
			s = s[len("shift+"):]
		default:
			return buildEvent(s, mods)
		}
	}
}

var specialKeys = map[string]string{
	"esc":       "Esc",
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PgUp",
	"pgdown":    "PgDown",
}

func buildEvent(s string, mods keymap.Modifier) (keymap.Event, bool) {
	if name, ok := specialKeys[s]; ok {
		return keymap.SpecialEvent(name, mods), true
	}
	if s == " " || s == "space" {
		return keymap.RuneEvent(' ', mods), true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return keymap.RuneEvent(runes[0], mods), true
	}
	return keymap.Event{}, false
}

// View renders the interface
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading..."
	}

	focused := a.core.Nav().Focused()

	leftWidth := a.width * 3 / 10
	if leftWidth < 20 {
		leftWidth = 20
	}
	rightWidth := a.width - leftWidth - 4

	bodyHeight := a.height - 3
	if bodyHeight < 6 {
		bodyHeight = 6
	}
	connHeight := bodyHeight / 2
	schemaHeight := bodyHeight - connHeight
	queryHeight := bodyHeight / 4
	if queryHeight < 3 {
		queryHeight = 3
	}
	resultsHeight := bodyHeight - queryHeight

	a.syncCursors()

	a.connectionsView.Width = leftWidth
	a.connectionsView.Height = connHeight - 3
	connPanel := components.Panel{
		Title:   a.connectionTitle(),
		Content: a.connectionsView.View(),
		Width:   leftWidth,
		Height:  connHeight - 2,
		Focused: focused == models.PaneConnections,
		Theme:   a.th,
	}

	a.schemaView.Width = leftWidth
	a.schemaView.Height = schemaHeight - 3
	schemaPanel := components.Panel{
		Title:   "Schema",
		Content: a.schemaView.View(),
		Width:   leftWidth,
		Height:  schemaHeight - 2,
		Focused: focused == models.PaneSchemaExplorer,
		Theme:   a.th,
	}

	var queryContent string
	if a.queryView != nil {
		a.queryView.Width = rightWidth
		a.queryView.Height = queryHeight - 3
		queryContent = a.queryView.View()
	}
	queryPanel := components.Panel{
		Title:   "Query",
		Content: queryContent,
		Width:   rightWidth,
		Height:  queryHeight - 2,
		Focused: focused == models.PaneQueryInput,
		Theme:   a.th,
	}

	a.tableView.Width = rightWidth
	a.tableView.Height = resultsHeight - 3
	resultsPanel := components.Panel{
		Title:   a.resultsTitle(),
		Content: a.tableView.View(),
		Width:   rightWidth,
		Height:  resultsHeight - 2,
		Focused: focused == models.PaneResults,
		Theme:   a.th,
	}

	left := lipgloss.JoinVertical(lipgloss.Left, connPanel.View(), schemaPanel.View())
	right := lipgloss.JoinVertical(lipgloss.Left, queryPanel.View(), resultsPanel.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := components.StatusBar{
		Mode:    a.core.Nav().ModeIndicator(),
		Pane:    focused.String(),
		Message: a.message,
		Err:     a.lastErr,
		Width:   a.width,
		Theme:   a.th,
	}

	sections := []string{body, a.commandLineView(focused), status.View()}
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if a.showSearch {
		a.searchInput.Width = a.width / 2
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.Place(a.width, 4, lipgloss.Center, lipgloss.Top, a.searchInput.View()),
			out)
	}
	return out
}

// syncCursors pushes the navigation cursor state into the views.
func (a *App) syncCursors() {
	boxes := a.core.Nav().Boxes()
	if box := boxes.Active(models.PaneConnections); box != nil {
		a.connectionsView.CursorIndex = box.List.Index
	}
	if box := boxes.Active(models.PaneSchemaExplorer); box != nil {
		a.schemaView.CursorIndex = box.List.Index
	}
	if box := boxes.Active(models.PaneResults); box != nil {
		a.tableView.SetCursor(box.Table.Row, box.Table.Col)
	}
}

func (a *App) connectionTitle() string {
	conn, err := a.connections.GetActive()
	if err != nil {
		return "Connections"
	}
	return "Connections: " + conn.Pool.Name()
}

func (a *App) resultsTitle() string {
	if a.currentTable == "" {
		return "Results"
	}
	title := fmt.Sprintf("Results: %s.%s", a.currentSchema, a.currentTable)
	if a.sortColumn != "" {
		title += " by " + a.sortColumn
	}
	return title
}

func (a *App) commandLineView(focused models.PaneKind) string {
	prefix := ":"
	var content string
	if a.commandView != nil && a.commandView.Editor != nil {
		content = a.commandView.Editor.Content()
	}
	if focused != models.PaneCommandLine && content == "" {
		return lipgloss.NewStyle().Width(a.width).Render("")
	}
	style := lipgloss.NewStyle().Foreground(a.th.Foreground)
	if focused == models.PaneCommandLine {
		style = style.Foreground(a.th.Info)
	}
	return style.Render(prefix + content)
}
