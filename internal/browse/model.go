// Package browse is the interactive terminal view of the advocate directory.
package browse

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"advocates/internal/client"
	"advocates/internal/model"
)

// DefaultDebounce is how long typing must pause before a search is issued.
const DefaultDebounce = 300 * time.Millisecond

// PageSizes are the selectable page sizes, cycled with tab.
var PageSizes = []int{5, 10, 25, 50, 100}

// Fetcher loads one page of advocates. *client.Client implements it.
type Fetcher interface {
	ListAdvocates(ctx context.Context, q client.Query) (*model.AdvocatePage, error)
}

type (
	// debounceMsg fires when the debounce timer tagged seq elapses.
	debounceMsg struct{ seq int }

	// resultMsg carries the outcome of the fetch tagged seq.
	resultMsg struct {
		seq  int
		page *model.AdvocatePage
		err  error
	}

	refreshMsg struct{}
)

// Options configure a Model.
type Options struct {
	Debounce time.Duration
	Limit    int
	Logger   *zap.Logger
}

// Model holds the browse state: the raw and debounced search text, the page
// and page size, and the last page of results.
type Model struct {
	fetcher  Fetcher
	log      *zap.Logger
	debounce time.Duration
	keys     keyMap
	help     help.Model

	table table.Model
	input textinput.Model

	search string
	page   int
	limit  int

	debounceSeq int
	fetchSeq    int
	cancel      context.CancelFunc
	loading     bool

	rows       []model.Advocate
	pagination model.Pagination
	expanded   string

	width int
}

// New returns a Model that loads advocates through f.
func New(f Fetcher, opts Options) Model {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Limit <= 0 {
		opts.Limit = PageSizes[1]
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Search by name, city, degree, specialty..."
	ti.Prompt = "Search: "
	ti.CharLimit = 100
	ti.Width = 50
	ti.Focus()

	t := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(opts.Limit)),
	)
	t.SetStyles(tableStyles())

	return Model{
		fetcher:  f,
		log:      opts.Logger,
		debounce: opts.Debounce,
		keys:     defaultKeyMap(),
		help:     help.New(),
		table:    t,
		input:    ti,
		page:     1,
		limit:    opts.Limit,
		width:    defaultWidth,
	}
}

// Init focuses the search box and issues the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return refreshMsg{} })
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetColumns(columns(msg.Width))
		m.table.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		return m, m.fetch()

	case debounceMsg:
		if msg.seq != m.debounceSeq {
			return m, nil
		}
		return m, m.setSearch(m.input.Value())

	case resultMsg:
		return m.applyResult(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.input.SetValue("")
		m.debounceSeq++
		return m, m.setSearch("")

	case key.Matches(msg, m.keys.Next):
		if !m.pagination.HasNextPage {
			return m, nil
		}
		m.page++
		return m, m.fetch()

	case key.Matches(msg, m.keys.Prev):
		if !m.pagination.HasPreviousPage {
			return m, nil
		}
		m.page--
		return m, m.fetch()

	case key.Matches(msg, m.keys.Limit):
		m.limit = nextPageSize(m.limit)
		m.page = 1
		m.table.SetHeight(tableHeight(m.limit))
		return m, m.fetch()

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		m.toggleExpanded()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	m.debounceSeq++
	seq := m.debounceSeq
	tick := tea.Tick(m.debounce, func(time.Time) tea.Msg { return debounceMsg{seq: seq} })
	return m, tea.Batch(cmd, tick)
}

// setSearch commits a debounced search term. A new term, or a term applied
// away from the first page, starts over at page 1 with a fresh fetch.
func (m *Model) setSearch(term string) tea.Cmd {
	if term == m.search && m.page == 1 {
		return nil
	}
	m.search = term
	m.page = 1
	return m.fetch()
}

// fetch cancels any in-flight request and loads the current search, page and limit.
func (m *Model) fetch() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.fetchSeq++
	m.loading = true
	m.expanded = ""

	seq := m.fetchSeq
	q := client.Query{Search: m.search, Page: m.page, Limit: m.limit}
	f := m.fetcher
	return func() tea.Msg {
		page, err := f.ListAdvocates(ctx, q)
		return resultMsg{seq: seq, page: page, err: err}
	}
}

func (m Model) applyResult(msg resultMsg) Model {
	if msg.seq != m.fetchSeq {
		return m
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = false

	if msg.err != nil || msg.page == nil {
		m.log.Error("fetch advocates failed",
			zap.String("search", m.search),
			zap.Int("page", m.page),
			zap.Int("limit", m.limit),
			zap.Error(msg.err),
		)
		m.rows = nil
		m.pagination = model.Pagination{Page: m.page, Limit: m.limit}
		m.table.SetRows(nil)
		return m
	}

	m.rows = msg.page.Data
	m.pagination = msg.page.Pagination
	m.table.SetRows(tableRows(m.rows))
	m.table.SetCursor(0)
	return m
}

func (m *Model) toggleExpanded() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return
	}
	id := m.rows[i].ID
	if m.expanded == id {
		m.expanded = ""
		return
	}
	m.expanded = id
}

func nextPageSize(current int) int {
	for _, n := range PageSizes {
		if n > current {
			return n
		}
	}
	return PageSizes[0]
}
