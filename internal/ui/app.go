package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/seaward/perch/internal/config"
	"github.com/seaward/perch/internal/content"
	"github.com/seaward/perch/internal/history"
	"github.com/seaward/perch/internal/log"
	"github.com/seaward/perch/internal/prefs"
	"github.com/seaward/perch/internal/reddit"
	"github.com/seaward/perch/internal/state"
)

const (
	minWidth  = 20
	minHeight = 10

	// snapshotInterval is how often the UI picks up the poller's
	// account snapshot.
	snapshotInterval = time.Second
)

// View selects the page renderer and key handler for the content on
// screen.
type View int

const (
	ViewSubreddit View = iota
	ViewSubmission
	ViewSubscription
	ViewInbox
)

// Options configure the UI runtime.
type Options struct {
	Client    *reddit.Client
	Store     *state.Store
	Config    *config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	History   *history.History

	// StartTarget is the location opened on launch: a listing name or
	// a comment-thread permalink. Empty means the front page.
	StartTarget string
	Version     string
}

// pageState is one entry of the page stack: the content on screen and
// the cursor position within it.
type pageState struct {
	view    View
	content content.Content
	nav     *content.Navigator
	query   string
}

func newPage(view View, c content.Content, query string) *pageState {
	return &pageState{
		view:    view,
		content: c,
		nav:     content.NewNavigator(content.Validator(c), content.MinIndex(c)),
		query:   query,
	}
}

// pendingMove is a cursor move deferred until a lazy listing fetch
// finishes, then replayed.
type pendingMove int

const (
	pendingNone pendingMove = iota
	pendingDown
	pendingPageDown
)

// Model is the bubbletea model for the whole application.
type Model struct {
	ctx       context.Context
	client    *reddit.Client
	store     *state.Store
	config    *config.Config
	history   *history.History
	prefs     prefs.Prefs
	prefsPath string
	logger    zerolog.Logger

	keys   keyMap
	theme  Theme
	styles Styles
	glyphs Glyphs

	width  int
	height int

	page  *pageState
	stack []*pageState

	// windows and contentLines are the laid-out page, rebuilt by
	// drawContent whenever the cursor, content, or size changes.
	windows      []window
	contentLines []string

	notice   notice
	loader   loader
	flashing bool
	modal    Modal
	pending  pendingMove

	snapshot      state.Snapshot
	lastSubreddit string
	startTarget   string
	version       string
}

var _ tea.Model = (*Model)(nil)

// New builds the application model. The first page loads from Init.
func New(ctx context.Context, opts Options) (*Model, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("ui requires an api client")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("ui requires a state store")
	}
	if opts.Config == nil {
		opts.Config = config.NewConfig()
	}
	if opts.History == nil {
		opts.History = history.New("", 0)
	}

	keys := DefaultKeyMap()
	if err := keys.ApplyKeymap(opts.Config.Keymap); err != nil {
		return nil, err
	}

	themeName := opts.Prefs.Theme
	if themeName == "" {
		themeName = opts.Config.UI.Theme
	}
	theme := GetTheme(themeName)

	target := opts.StartTarget
	if target == "" {
		target = "/r/front"
	}

	m := &Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		config:      opts.Config,
		history:     opts.History,
		prefs:       opts.Prefs,
		prefsPath:   opts.PrefsPath,
		logger:      log.WithComponent("ui"),
		keys:        keys,
		theme:       theme,
		styles:      theme.Styles(),
		glyphs:      GlyphSet(opts.Config.UI.Ascii || opts.Prefs.Ascii),
		snapshot:    opts.Store.Snapshot(),
		startTarget: target,
		version:     opts.Version,
	}
	return m, nil
}

// Run drives the UI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m, err := New(ctx, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTargetCmd(m.startTarget, false), snapshotTickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.drawContent()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadedMsg:
		return m.handleLoaded(msg)

	case extendedMsg:
		return m.handleExtended(msg)

	case toggleDoneMsg:
		return m.handleToggleDone(msg)

	case actionMsg:
		return m.handleAction(msg)

	case execDoneMsg:
		return m.handleExecDone(msg)

	case submittedMsg:
		m.notice = successNotice("Submitted")
		return m, m.openSubmissionCmd(msg.permalink, "", true)

	case pagerDoneMsg:
		if msg.err != nil {
			m.notice = errorNotice(msg.err)
		}
		return m, nil

	case snapshotTickMsg:
		snap := m.store.Snapshot()
		if snap.UnreadCount > m.snapshot.UnreadCount {
			m.notice = infoNotice("You have new mail")
		}
		m.snapshot = snap
		return m, snapshotTickCmd()

	case loaderTickMsg:
		if m.loader.advance(msg.seq) {
			return m, loaderTickCmd(msg.seq, loaderInterval)
		}
		return m, nil

	case flashClearMsg:
		if m.flashing {
			m.flashing = false
			m.drawContent()
		}
		return m, nil
	}

	// Cursor blinks and other component messages belong to the open
	// modal.
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.notice.empty() {
		m.notice = notice{}
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.modal = newHelpModal(m.keys, m.version)
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m, m.refreshCmd()

	case key.Matches(msg, keys.Prompt):
		m.modal = newPromptModal("go to: ", func(target string) tea.Cmd {
			return m.loadTargetCmd(target, false)
		})
		return m, textinput.Blink

	case key.Matches(msg, keys.Back):
		return m, m.popPage()

	case key.Matches(msg, keys.Compose):
		return m, m.composeCmd()

	case key.Matches(msg, keys.PrevTheme):
		return m, m.cycleTheme(-1)

	case key.Matches(msg, keys.NextTheme):
		return m, m.cycleTheme(1)

	case key.Matches(msg, keys.YankPermalink):
		it := m.selectedItem()
		if it == nil || it.Permalink == "" {
			return m, m.flash()
		}
		return m, yankCmd("Permalink", strings.TrimRight(m.config.API.BaseURL, "/")+it.Permalink)

	case key.Matches(msg, keys.YankURL):
		it := m.selectedItem()
		if it == nil || it.URL == "" {
			return m, m.flash()
		}
		return m, yankCmd("Link", it.URL)
	}

	if m.page != nil {
		if cmd, handled := m.handleMoveKey(msg); handled {
			return m, cmd
		}
		var cmd tea.Cmd
		var handled bool
		switch m.page.view {
		case ViewSubmission:
			cmd, handled = m.handleSubmissionKey(msg)
		case ViewSubscription:
			cmd, handled = m.handleSubscriptionKey(msg)
		case ViewInbox:
			cmd, handled = m.handleInboxKey(msg)
		default:
			cmd, handled = m.handleSubredditKey(msg)
		}
		if handled {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.Frontpage):
		return m, m.loadSubredditCmd("/r/front", "", "", false)

	case key.Matches(msg, keys.Inbox):
		return m, m.loadInboxCmd("", true)

	case key.Matches(msg, keys.Subscriptions):
		return m, m.loadSubscriptionsCmd(true)

	case key.Matches(msg, keys.Multireddits):
		return m, m.loadMultiredditsCmd(true)
	}

	return m, m.flash()
}

func (m *Model) handleMoveKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Up):
		return m.moveCursor(-1), true
	case key.Matches(msg, keys.Down):
		return m.moveCursor(1), true
	case key.Matches(msg, keys.PageUp):
		return m.movePage(-1), true
	case key.Matches(msg, keys.PageDown):
		return m.movePage(1), true
	case key.Matches(msg, keys.Top):
		m.page.nav.MoveTop()
		m.drawContent()
		return nil, true
	case key.Matches(msg, keys.Bottom):
		m.page.nav.MoveBottom()
		m.drawContent()
		return nil, true
	}
	return nil, false
}

// moveCursor steps the selection one item. Running off the loaded tail
// of an extendable listing fetches more and replays the move.
func (m *Model) moveCursor(direction int) tea.Cmd {
	valid, _ := m.page.nav.Move(direction, len(m.windows))
	if valid {
		m.drawContent()
		return nil
	}
	if direction > 0 {
		if cmd := m.extendCmd(pendingDown); cmd != nil {
			return cmd
		}
	}
	return m.flash()
}

func (m *Model) movePage(direction int) tea.Cmd {
	valid, _ := m.page.nav.MovePage(direction, maxInt(len(m.windows)-1, 1))
	if valid {
		m.drawContent()
		return nil
	}
	if direction > 0 {
		if cmd := m.extendCmd(pendingPageDown); cmd != nil {
			return cmd
		}
	}
	return m.flash()
}

func (m *Model) extendCmd(pending pendingMove) tea.Cmd {
	ext, ok := m.page.content.(content.Extender)
	if !ok || ext.Exhausted() {
		return nil
	}
	m.pending = pending
	upTo := ext.Len() + 1
	ctx := m.ctx
	seq, tick := m.startLoader("Loading")
	return tea.Batch(tick, func() tea.Msg {
		return extendedMsg{seq: seq, err: ext.Extend(ctx, upTo)}
	})
}

// popPage returns to the page below on the stack.
func (m *Model) popPage() tea.Cmd {
	if len(m.stack) == 0 {
		return m.flash()
	}
	m.page = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.drawContent()
	return nil
}

// selectedItem resolves the cursor to its content item, nil when no
// page is loaded or the index is out of range.
func (m *Model) selectedItem() *content.Item {
	if m.page == nil {
		return nil
	}
	it, err := m.page.content.Get(m.page.nav.AbsoluteIndex(), m.width-2)
	if err != nil {
		return nil
	}
	return it
}

// sortIndex maps a digit sort key to its zero-based order index, -1
// for any other key.
func (m *Model) sortIndex(msg tea.KeyMsg) int {
	sorts := []key.Binding{
		m.keys.Sort1, m.keys.Sort2, m.keys.Sort3, m.keys.Sort4,
		m.keys.Sort5, m.keys.Sort6, m.keys.Sort7,
	}
	for i, b := range sorts {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}

// flash blinks the cursor row to signal invalid input.
func (m *Model) flash() tea.Cmd {
	if !m.config.UI.Flash {
		return nil
	}
	m.flashing = true
	m.drawContent()
	return flashClearCmd()
}

// startLoader arms the status-line loader and returns its sequence
// plus the delayed first animation tick.
func (m *Model) startLoader(message string) (int, tea.Cmd) {
	seq := m.loader.start(message)
	return seq, loaderTickCmd(seq, loaderDelay)
}

func (m *Model) ownItem(it *content.Item) bool {
	return it != nil && m.snapshot.Account != nil && it.Author == m.snapshot.Account.Name
}

func (m *Model) cycleTheme(direction int) tea.Cmd {
	name := NextTheme(m.theme.Name)
	if direction < 0 {
		name = PrevTheme(m.theme.Name)
	}
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.prefs.Theme = name
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.notice = errorNotice(err)
	} else {
		m.notice = infoNotice("Theme: " + name)
	}
	m.drawContent()
	return nil
}

// Message handlers

func (m *Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loader.seq {
		return m, nil
	}
	m.loader.stop()
	m.pending = pendingNone
	if msg.err != nil {
		m.notice = errorNotice(msg.err)
		m.logger.Warn().Err(msg.err).Msg("page load failed")
		return m, nil
	}
	if msg.push && m.page != nil {
		m.stack = append(m.stack, m.page)
	}
	m.page = newPage(msg.view, msg.c, msg.query)
	m.drawContent()
	return m, nil
}

func (m *Model) handleExtended(msg extendedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loader.seq {
		return m, nil
	}
	m.loader.stop()
	pending := m.pending
	m.pending = pendingNone
	if msg.err != nil {
		m.notice = errorNotice(msg.err)
		m.logger.Warn().Err(msg.err).Msg("listing extend failed")
		return m, nil
	}

	var cmd tea.Cmd
	switch pending {
	case pendingDown:
		if valid, _ := m.page.nav.Move(1, len(m.windows)); !valid {
			cmd = m.flash()
		}
	case pendingPageDown:
		if valid, _ := m.page.nav.MovePage(1, maxInt(len(m.windows)-1, 1)); !valid {
			cmd = m.flash()
		}
	}
	m.drawContent()
	return m, cmd
}

func (m *Model) handleToggleDone(msg toggleDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loader.seq {
		return m, nil
	}
	m.loader.stop()
	if msg.err != nil {
		m.notice = errorNotice(msg.err)
		m.logger.Warn().Err(msg.err).Msg("comment expand failed")
		return m, nil
	}
	if m.page.nav.AbsoluteIndex() == msg.index {
		m.foldCursorFix()
	}
	m.drawContent()
	return m, nil
}

func (m *Model) handleAction(msg actionMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = errorNotice(msg.err)
		m.logger.Warn().Err(msg.err).Msg("action failed")
		return m, nil
	}
	if msg.apply != nil {
		msg.apply()
	}
	if !msg.notice.empty() {
		m.notice = msg.notice
	}
	if msg.refresh {
		return m, m.refreshCmd()
	}
	m.drawContent()
	return m, nil
}

func (m *Model) handleExecDone(msg execDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = errorNotice(msg.err)
		m.logger.Warn().Err(msg.err).Msg("editor failed")
		return m, nil
	}
	if msg.text == "" {
		m.notice = infoNotice("Canceled")
		return m, nil
	}

	client, ctx := m.client, m.ctx
	switch msg.kind {
	case execReply:
		target, text := msg.target, msg.text
		return m, func() tea.Msg {
			if _, err := client.Reply(ctx, target, text); err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{notice: successNotice("Replied"), refresh: true}
		}

	case execEdit:
		target, text := msg.target, msg.text
		return m, func() tea.Msg {
			if err := client.Edit(ctx, target, text); err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{notice: successNotice("Edited"), refresh: true}
		}

	case execPost:
		title, body := parseSubmission(msg.text)
		if title == "" {
			m.notice = errorNotice(errors.New("submission needs a title"))
			return m, nil
		}
		subreddit := msg.target
		return m, func() tea.Msg {
			permalink, err := client.Submit(ctx, subreddit, title, body, "")
			if err != nil {
				return actionMsg{err: err}
			}
			return submittedMsg{permalink: permalink}
		}

	case execMessage:
		to, subject, body, err := parseMessage(msg.text)
		if err != nil {
			m.notice = errorNotice(err)
			return m, nil
		}
		return m, func() tea.Msg {
			if err := client.Compose(ctx, to, subject, body); err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{notice: successNotice("Message sent")}
		}
	}
	return m, nil
}

// Actions

func (m *Model) actionCmd(success string, call func() error, apply func()) tea.Cmd {
	if !m.client.Authenticated() {
		m.notice = errorNotice(content.ErrNotLoggedIn)
		return nil
	}
	return func() tea.Msg {
		if err := call(); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{notice: successNotice(success), apply: apply}
	}
}

// voteCmd applies an arrow press with toggle semantics: pressing the
// current direction again clears the vote.
func (m *Model) voteCmd(it *content.Item, dir int) tea.Cmd {
	if it == nil || (it.Type != content.ItemSubmission && it.Type != content.ItemComment) {
		return m.flash()
	}
	if it.Archived {
		m.notice = errorNotice(errors.New("cannot vote on archived posts"))
		return nil
	}
	target := dir
	if it.Likes != nil && ((dir > 0 && *it.Likes) || (dir < 0 && !*it.Likes)) {
		target = 0
	}
	success := "Vote cleared"
	switch {
	case target > 0:
		success = "Upvoted"
	case target < 0:
		success = "Downvoted"
	}
	fullname := it.Fullname
	client, ctx := m.client, m.ctx
	return m.actionCmd(success, func() error {
		return client.Vote(ctx, fullname, target)
	}, func() {
		switch target {
		case 0:
			it.Likes = nil
		case 1:
			up := true
			it.Likes = &up
		default:
			down := false
			it.Likes = &down
		}
	})
}

func (m *Model) saveCmd(it *content.Item) tea.Cmd {
	if it == nil || (it.Type != content.ItemSubmission && it.Type != content.ItemComment) {
		return m.flash()
	}
	call, success := m.client.Save, "Saved"
	if it.Saved {
		call, success = m.client.Unsave, "Unsaved"
	}
	fullname, ctx := it.Fullname, m.ctx
	return m.actionCmd(success, func() error {
		return call(ctx, fullname)
	}, func() {
		it.Saved = !it.Saved
	})
}

// replyCmd opens the editor on a reply template quoting the selected
// item.
func (m *Model) replyCmd(it *content.Item) tea.Cmd {
	if it == nil {
		return m.flash()
	}
	if !m.client.Authenticated() {
		m.notice = errorNotice(content.ErrNotLoggedIn)
		return nil
	}
	if it.Archived {
		m.notice = errorNotice(errors.New("cannot reply to archived posts"))
		return nil
	}
	var kind, quoted string
	switch it.Type {
	case content.ItemSubmission:
		kind, quoted = "submission", it.Body
		if quoted == "" {
			quoted = it.Title
		}
	case content.ItemComment:
		kind, quoted = "comment", it.Body
	case content.ItemMessage:
		kind, quoted = "message", it.Body
	default:
		return m.flash()
	}
	return editorCmd(execReply, it.Fullname, fmt.Sprintf(replyTemplate, it.Author, kind, quoted))
}

func (m *Model) editCmd(it *content.Item) tea.Cmd {
	if it == nil || (it.Type != content.ItemSubmission && it.Type != content.ItemComment) {
		return m.flash()
	}
	if !m.ownItem(it) {
		m.notice = errorNotice(errors.New("you can only edit your own posts"))
		return nil
	}
	if it.Type == content.ItemSubmission && it.URLType != content.URLSelf {
		m.notice = errorNotice(errors.New("cannot edit link posts"))
		return nil
	}
	noun := "comment"
	if it.Type == content.ItemSubmission {
		noun = "submission"
	}
	return editorCmd(execEdit, it.Fullname, fmt.Sprintf(editTemplate, noun+" "+it.Fullname, it.Body))
}

func (m *Model) deleteConfirm(it *content.Item) tea.Cmd {
	if it == nil || (it.Type != content.ItemSubmission && it.Type != content.ItemComment) {
		return m.flash()
	}
	if !m.ownItem(it) {
		m.notice = errorNotice(errors.New("you can only delete your own posts"))
		return nil
	}
	fullname := it.Fullname
	client, ctx := m.client, m.ctx
	m.modal = &confirmModal{
		question: "Are you sure you want to delete this?",
		confirm: func() tea.Cmd {
			return func() tea.Msg {
				if err := client.Delete(ctx, fullname); err != nil {
					return actionMsg{err: err}
				}
				return actionMsg{notice: successNotice("Deleted"), refresh: true}
			}
		},
	}
	return nil
}

func (m *Model) composeCmd() tea.Cmd {
	if !m.client.Authenticated() {
		m.notice = errorNotice(content.ErrNotLoggedIn)
		return nil
	}
	return editorCmd(execMessage, "", messageTemplate)
}

// Page loading

// loadTargetCmd routes a location string: comment-thread permalinks
// open as a submission page, anything else parses as a listing.
func (m *Model) loadTargetCmd(target string, push bool) tea.Cmd {
	if strings.Contains(target, "/comments/") {
		return m.openSubmissionCmd(target, "", push)
	}
	return m.loadSubredditCmd(target, "", "", push)
}

// loadContentCmd runs a content build off the update loop and posts
// the result. The loader sequence drops answers from superseded loads.
func (m *Model) loadContentCmd(view View, push bool, query, message string, build func(ctx context.Context) (content.Content, error)) tea.Cmd {
	ctx := m.ctx
	seq, tick := m.startLoader(message)
	return tea.Batch(tick, func() tea.Msg {
		c, err := build(ctx)
		return loadedMsg{seq: seq, view: view, c: c, push: push, query: query, err: err}
	})
}

func (m *Model) loadSubredditCmd(name, order, query string, push bool) tea.Cmd {
	client := m.client
	return m.loadContentCmd(ViewSubreddit, push, query, "Loading "+displayName(name), func(ctx context.Context) (content.Content, error) {
		return content.FromName(ctx, client, name, order, query)
	})
}

func (m *Model) openSubmissionCmd(permalink, order string, push bool) tea.Cmd {
	return m.openSubmissionWith(permalink, reddit.CommentsOptions{Sort: order}, push)
}

func (m *Model) openSubmissionWith(permalink string, fetch reddit.CommentsOptions, push bool) tea.Cmd {
	client := m.client
	indent, maxLevel := m.config.UI.IndentSize, m.config.UI.MaxIndentLevel
	return m.loadContentCmd(ViewSubmission, push, "", "Loading comments", func(ctx context.Context) (content.Content, error) {
		return content.LoadSubmission(ctx, client, permalink, fetch, content.WithIndent(indent, maxLevel))
	})
}

func (m *Model) loadInboxCmd(order string, push bool) tea.Cmd {
	if !m.client.Authenticated() {
		m.notice = errorNotice(content.ErrNotLoggedIn)
		return nil
	}
	if order == "" {
		order = "all"
	}
	client := m.client
	return m.loadContentCmd(ViewInbox, push, "", "Loading inbox", func(ctx context.Context) (content.Content, error) {
		return content.NewInbox(ctx, client, order)
	})
}

func (m *Model) loadSubscriptionsCmd(push bool) tea.Cmd {
	if !m.client.Authenticated() {
		m.notice = errorNotice(content.ErrNotLoggedIn)
		return nil
	}
	client := m.client
	return m.loadContentCmd(ViewSubscription, push, "", "Loading subscriptions", func(ctx context.Context) (content.Content, error) {
		return content.NewSubscriptions(ctx, client)
	})
}

func (m *Model) loadMultiredditsCmd(push bool) tea.Cmd {
	if !m.client.Authenticated() {
		m.notice = errorNotice(content.ErrNotLoggedIn)
		return nil
	}
	client := m.client
	return m.loadContentCmd(ViewSubscription, push, "", "Loading multireddits", func(ctx context.Context) (content.Content, error) {
		return content.NewMultireddits(ctx, client)
	})
}

// refreshCmd reloads the current page in place, keeping its order and
// search query. The cursor returns to the top.
func (m *Model) refreshCmd() tea.Cmd {
	if m.page == nil {
		return nil
	}
	order := m.page.content.Order()
	switch m.page.view {
	case ViewSubmission:
		return m.openSubmissionCmd(m.page.content.Name(), order, false)
	case ViewInbox:
		return m.loadInboxCmd(order, false)
	case ViewSubscription:
		if m.page.content.Name() == "My Multireddits" {
			return m.loadMultiredditsCmd(false)
		}
		return m.loadSubscriptionsCmd(false)
	default:
		return m.loadSubredditCmd(m.page.content.Name(), order, m.page.query, false)
	}
}

// Rendering

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d minimum)", minWidth, minHeight)
	}

	var b strings.Builder

	var name, query, order string
	view := ViewSubreddit
	if m.page != nil {
		name = m.page.content.Name()
		query = m.page.query
		order = m.page.content.Order()
		view = m.page.view
	}

	account := accountLabel(m.snapshot, m.glyphs.Mail)
	b.WriteString(m.styles.TitleBar.Render(headerText(name, query, account, m.width)))
	b.WriteString("\n")

	if m.page != nil && view != ViewSubscription {
		orders := subredditOrders
		if view == ViewInbox {
			orders = inboxOrders
		}
		b.WriteString(m.renderBanner(orders, order, m.width))
		b.WriteString("\n")
	}

	rows, _ := m.contentSize()
	if m.modal != nil {
		b.WriteString(overlay(m.modal.View(&m.styles, m.width, rows), m.width, rows))
		b.WriteString("\n")
	} else {
		for i := 0; i < rows; i++ {
			if i < len(m.contentLines) {
				b.WriteString(m.contentLines[i])
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine is the bottom row: an active notice wins, then the
// loader, then the per-view key hints.
func (m *Model) statusLine() string {
	st := &m.styles
	switch {
	case !m.notice.empty():
		return m.notice.style(st).Render(padRight(truncate(m.notice.text, m.width), m.width))
	case m.loader.active && m.loader.visible:
		return st.NoticeLoading.Render(padRight(clip(m.loader.text(), m.width), m.width))
	default:
		view := ViewSubreddit
		if m.page != nil {
			view = m.page.view
		}
		return st.HelpBar.Render(padRight(clip(footerText(view), m.width), m.width))
	}
}

// Messages

// loadedMsg delivers freshly built page content.
type loadedMsg struct {
	seq   int
	view  View
	c     content.Content
	push  bool
	query string
	err   error
}

// extendedMsg reports a lazy listing fetch.
type extendedMsg struct {
	seq int
	err error
}

// toggleDoneMsg reports an async comment-stub expansion.
type toggleDoneMsg struct {
	seq   int
	index int
	err   error
}

// actionMsg reports a fire-and-forget API call: the success notice, a
// local state patch, and whether the page should reload after.
type actionMsg struct {
	notice  notice
	apply   func()
	refresh bool
	err     error
}

// submittedMsg carries the permalink of a freshly created post.
type submittedMsg struct {
	permalink string
}

type snapshotTickMsg time.Time

type loaderTickMsg struct {
	seq int
}

type flashClearMsg struct{}

// Commands

func snapshotTickCmd() tea.Cmd {
	return tea.Tick(snapshotInterval, func(t time.Time) tea.Msg {
		return snapshotTickMsg(t)
	})
}

func loaderTickCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return loaderTickMsg{seq: seq}
	})
}

func flashClearCmd() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{}
	})
}
