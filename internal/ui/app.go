package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/config"
	"github.com/five82/satchel/internal/listing"
	"github.com/five82/satchel/internal/prefs"
	"github.com/five82/satchel/internal/state"
)

// Category is the product tab shown in the list.
type Category int

const (
	CategoryAll Category = iota
	CategoryTextbooks
	CategoryWorkbooks
	CategoryHandouts
)

var categoryOrder = []Category{CategoryAll, CategoryTextbooks, CategoryWorkbooks, CategoryHandouts}

// Label returns the tab label.
func (c Category) Label() string {
	switch c {
	case CategoryTextbooks:
		return catalog.SourceTextbook.Label()
	case CategoryWorkbooks:
		return catalog.SourceWorkbook.Label()
	case CategoryHandouts:
		return catalog.SourceHandout.Label()
	default:
		return "All"
	}
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Command   listing.ProductsCommand
	Store     *state.Store
	Config    *config.Config
	Logger    *logrus.Logger
	ThemeName string
	Sort      string
	Keyword   string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	config    *config.Config
	log       *logrus.Logger
	prefsPath string
	keys      keyMap

	// Controller and its collaborators
	vm     *listing.ViewModel
	router *router
	notes  *notifier

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	category    Category
	selectedRow int
	busy        int
	lastUpdated time.Time

	spinner   spinner.Model
	search    textinput.Model
	searching bool

	// Overlays, topmost last
	modals []Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	pageLimit := catalog.DefaultPageLimit
	if opts.Config != nil && opts.Config.PageLimit > 0 {
		pageLimit = opts.Config.PageLimit
	}

	nav := &router{}
	notes := &notifier{}
	vm := listing.New(listing.Props{
		Command:   opts.Command,
		Store:     opts.Store,
		Navigator: nav,
		Notifier:  notes,
		PageLimit: pageLimit,
		Keyword:   opts.Keyword,
		Logger:    logger,
	})
	if opts.Sort != "" {
		vm.Sorting(opts.Sort)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		config:    opts.Config,
		log:       logger,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		vm:        vm,
		router:    nav,
		notes:     notes,
		theme:     GetTheme(themeName),
		spinner:   sp,
	}
	m.initSearchInput()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.runAction(actionInit, func(ctx context.Context) (bool, error) {
			return true, m.vm.Initialize(ctx)
		}),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width/3, 20)
		m.ready = true
		return m, nil

	case actionStartedMsg:
		m.busy++
		return m, nil

	case actionDoneMsg:
		return m.handleActionDone(msg), nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if n := len(m.modals); n > 0 {
		return m.modals[n-1].View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	if m.router.Current() == listing.CartRoute {
		b.WriteString(m.renderCart())
	} else {
		b.WriteString(m.renderProducts())
	}
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if n := len(m.modals); n > 0 {
		return m.updateModal(msg)
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.modals = append(m.modals, helpModal{})
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.modals = append(m.modals, newLogModal(m.logPath()))
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if !m.router.Back() && m.vm.Keyword() != "" {
			m.vm.SetKeyword("")
			m.search.SetValue("")
			m.clampSelection()
		}
		return m, nil
	}

	if m.router.Current() == listing.CartRoute {
		return m, nil
	}
	return m.handleListKey(msg)
}

// handleListKey processes keys for the product list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.currentItems()

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(items)-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = max(len(items)-1, 0)

	case key.Matches(msg, m.keys.NextCategory):
		m.category = categoryOrder[(int(m.category)+1)%len(categoryOrder)]
		m.selectedRow = 0

	case key.Matches(msg, m.keys.PrevPage), key.Matches(msg, m.keys.NextPage):
		page := m.vm.Pagination()
		target := page.Index() + 1
		if key.Matches(msg, m.keys.PrevPage) {
			target = page.Index() - 1
		}
		if target < 0 || (page.Total > 0 && target >= page.Count()) {
			return m, nil
		}
		m.selectedRow = 0
		return m, m.runAction(actionPage, func(ctx context.Context) (bool, error) {
			return true, m.vm.GoToPage(ctx, target)
		})

	case key.Matches(msg, m.keys.LoadMore):
		return m, m.runAction(actionLoadMore, func(ctx context.Context) (bool, error) {
			return m.vm.OnLoadMore(ctx), nil
		})

	case key.Matches(msg, m.keys.Refresh):
		return m, m.runAction(actionRefresh, func(ctx context.Context) (bool, error) {
			return m.vm.OnRefresh(ctx), nil
		})

	case key.Matches(msg, m.keys.Search):
		cmd := m.startSearch()
		return m, cmd

	case key.Matches(msg, m.keys.CycleSort):
		next := listing.SortName
		if m.vm.SortKey() == listing.SortName {
			next = listing.SortPrice
		}
		m.vm.Sorting(string(next))
		m.savePrefs()

	case key.Matches(msg, m.keys.Cart):
		if err := m.vm.OnCart(m.ctx); err != nil {
			m.log.WithError(err).Warn("cart navigation failed")
		}

	case key.Matches(msg, m.keys.FilterModal):
		m.modals = append(m.modals, newFilterModal(m.vm))

	case key.Matches(msg, m.keys.Drawer):
		m.vm.OnShowMobileFilter()

	case key.Matches(msg, m.keys.ResetFilter):
		m.vm.OnResetFilter()
		m.search.SetValue("")
		m.clampSelection()

	case key.Matches(msg, m.keys.Confirm):
		if len(items) == 0 {
			m.vm.OnEmptyClick()
			m.search.SetValue("")
			m.clampSelection()
			return m, nil
		}
		m.selectedRow = min(m.selectedRow, len(items)-1)
		m.vm.OnItemClick(items[m.selectedRow])
		m.modals = append(m.modals, m.notes.drain()...)
	}

	return m, nil
}

// updateModal routes a key to the topmost overlay.
func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := len(m.modals) - 1
	updated, cmd, closed := m.modals[top].Update(msg, m.keys)
	if !closed {
		m.modals[top] = updated
		return m, cmd
	}
	if _, wasError := m.modals[top].(*errorModal); wasError {
		m.vm.ClearErrors()
	}
	m.modals = m.modals[:top]
	return m, cmd
}

func (m Model) handleActionDone(msg actionDoneMsg) Model {
	if m.busy > 0 {
		m.busy--
	}
	entry := m.log.WithFields(logrus.Fields{"action": msg.kind.String(), "ran": msg.ran})
	if msg.err != nil {
		entry.WithError(msg.err).Debug("action failed")
	} else if msg.ran {
		m.lastUpdated = time.Now()
		entry.Debug("action completed")
	}
	m.modals = append(m.modals, m.notes.drain()...)
	m.clampSelection()
	return m
}

// currentItems returns the rows for the active tab with the keyword applied.
func (m Model) currentItems() []catalog.ProductListItem {
	switch m.category {
	case CategoryTextbooks:
		return m.vm.FilterKeyword(m.vm.TextBooks())
	case CategoryWorkbooks:
		return m.vm.FilterKeyword(m.vm.Workbooks())
	case CategoryHandouts:
		return m.vm.FilterKeyword(m.vm.Handouts())
	default:
		return m.vm.VisibleItems()
	}
}

func (m *Model) clampSelection() {
	count := len(m.currentItems())
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Sort: string(m.vm.SortKey())}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.WithError(err).Warn("save prefs failed")
	}
}

// Messages

type actionKind int

const (
	actionInit actionKind = iota
	actionPage
	actionLoadMore
	actionRefresh
)

func (k actionKind) String() string {
	switch k {
	case actionInit:
		return "init"
	case actionPage:
		return "page"
	case actionLoadMore:
		return "load_more"
	case actionRefresh:
		return "refresh"
	}
	return "unknown"
}

type actionStartedMsg struct{}

type actionDoneMsg struct {
	kind actionKind
	ran  bool
	err  error
}

// Commands

// runAction runs a controller operation off the update loop, marking the
// model busy until it reports back.
func (m Model) runAction(kind actionKind, fn func(ctx context.Context) (bool, error)) tea.Cmd {
	parent := m.ctx
	return tea.Sequence(
		func() tea.Msg { return actionStartedMsg{} },
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(parent, ActionTimeout)
			defer cancel()
			ran, err := fn(ctx)
			return actionDoneMsg{kind: kind, ran: ran, err: err}
		},
	)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	defer m.vm.Dispose()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}

func (m Model) logPath() string {
	if m.config == nil {
		return ""
	}
	return m.config.LogFile
}
