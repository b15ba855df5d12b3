package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/sounds-of-canada/internal/browse"
	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	AlbumListView ViewState = iota
	GenreDrawerView
	YearDrawerView
	FavouritesView
)

const (
	heading       = "Explore Canadian Albums"
	defaultNotice = "Viewing 2024 Canadian Albums"
	emptyNotice   = "Looking pretty empty here..."
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	fetcher    services.AlbumFetcher
	session    *browse.Session
	favourites *browse.Favourites
	draft      *browse.Draft
	albumList  list.Model
	drawer     list.Model
	favList    list.Model
	logger     *log.Logger
	width      int
	height     int
	help       help.Model
	keys       keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
//
// A nil favourites list is replaced with an in-memory one.
func NewModel(ctx context.Context, fetcher services.AlbumFetcher, favourites *browse.Favourites, logger *log.Logger) *Model {
	if favourites == nil {
		favourites = browse.NewFavourites()
	}

	m := &Model{
		ctx:        ctx,
		view:       AlbumListView,
		fetcher:    fetcher,
		session:    browse.NewSession(),
		favourites: favourites,
		draft:      browse.NewDraft(),
		logger:     logger,
		help:       help.New(),
		keys:       newKeyMap(),
	}
	m.albumList = newList(nil, "Albums", true)
	m.favList = newList(nil, "Favourites", true)
	m.drawer = newList(nil, "", false)
	return m
}

// Init starts the first fetch for the default filters.
func (m *Model) Init() tea.Cmd {
	return m.fetch(m.session.Refresh())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case AlbumListView:
			return m.handleAlbumListKeys(msg)
		case GenreDrawerView, YearDrawerView:
			return m.handleDrawerKeys(msg)
		case FavouritesView:
			return m.handleFavouritesKeys(msg)
		}

	case Msg:
		switch msg.kind {
		case MsgAlbumsFetched:
			res := msg.data.(browse.Result)
			if !m.session.Complete(res) {
				m.logger.Debug("discarded stale result", "generation", res.Generation)
				return m, nil
			}
			if res.Err != nil {
				m.logger.Error("failed to fetch albums", "generation", res.Generation, "err", res.Err)
			}
			m.refreshAlbums()
			return m, nil

		case MsgFavouriteToggled:
			t := msg.data.(favouriteToggled)
			if t.err != nil {
				m.logger.Error("failed to update favourites", "album", t.album.ID, "err", t.err)
			}
			m.refreshAlbums()
			m.refreshFavourites()
			return m, nil
		}
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case GenreDrawerView:
		return m.renderDrawer("Genre")
	case YearDrawerView:
		return m.renderDrawer("Year")
	case FavouritesView:
		return m.renderFavourites()
	default:
		return m.renderAlbumList()
	}
}

func (m *Model) handleAlbumListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.genres):
		m.openDrawer(GenreDrawerView)
		return m, nil
	case key.Matches(msg, m.keys.years):
		m.openDrawer(YearDrawerView)
		return m, nil
	case key.Matches(msg, m.keys.favourites):
		m.refreshFavourites()
		m.view = FavouritesView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if album, ok := m.selectedAlbum(m.albumList); ok {
			ref := browse.ArtistRef{ReleaseID: album.ID, Name: album.Artist}
			return m, m.fetch(m.session.SelectArtist(ref))
		}
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		if album, ok := m.selectedAlbum(m.albumList); ok {
			return m, m.toggleFavourite(album)
		}
		return m, nil
	case key.Matches(msg, m.keys.clear):
		return m, m.clearLastChip()
	case key.Matches(msg, m.keys.clearAll):
		return m, m.fetch(m.session.ClearAll())
	}

	var cmd tea.Cmd
	m.albumList, cmd = m.albumList.Update(msg)
	return m, cmd
}

func (m *Model) handleDrawerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	facet := m.drawerFacet()

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = AlbumListView
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		if item, ok := m.drawer.SelectedItem().(choiceItem); ok {
			m.draft.Pick(facet, item.value)
			m.refreshDrawer()
		}
		return m, nil
	case key.Matches(msg, m.keys.enter):
		item, ok := m.drawer.SelectedItem().(choiceItem)
		if ok && (facet == browse.FacetYear || m.draft.Facet() != facet || len(m.draft.Values()) == 0) {
			m.draft.Pick(facet, item.value)
		}
		m.view = AlbumListView
		req, err := m.draft.Save(m.session)
		if err != nil {
			m.logger.Error("failed to apply filter", "facet", facet, "err", err)
			return m, nil
		}
		return m, m.fetch(req)
	}

	var cmd tea.Cmd
	m.drawer, cmd = m.drawer.Update(msg)
	return m, cmd
}

func (m *Model) handleFavouritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.favourites):
		m.view = AlbumListView
		return m, nil
	case key.Matches(msg, m.keys.toggle):
		if album, ok := m.selectedAlbum(m.favList); ok {
			return m, m.toggleFavourite(album)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.favList, cmd = m.favList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case AlbumListView:
		m.albumList, cmd = m.albumList.Update(msg)
	case GenreDrawerView, YearDrawerView:
		m.drawer, cmd = m.drawer.Update(msg)
	case FavouritesView:
		m.favList, cmd = m.favList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetch(req browse.Request) tea.Cmd {
	return func() tea.Msg {
		return albumsFetchedMsg(browse.Fetch(m.ctx, m.fetcher, req))
	}
}

func (m *Model) toggleFavourite(album models.Album) tea.Cmd {
	return func() tea.Msg {
		present, err := m.favourites.Toggle(m.ctx, album)
		return favouriteToggledMsg(album, present, err)
	}
}

// clearLastChip removes the most recently shown filter chip.
func (m *Model) clearLastChip() tea.Cmd {
	chips := m.session.Snapshot().Filters.Chips()
	if len(chips) == 0 {
		return nil
	}

	last := chips[len(chips)-1]
	req, err := m.session.ClearFilter(last.Facet, last.Value)
	if err != nil {
		m.logger.Error("failed to clear filter", "facet", last.Facet, "err", err)
		return nil
	}
	return m.fetch(req)
}

func (m *Model) openDrawer(view ViewState) {
	m.view = view
	m.drawer = newList(nil, "", false)
	m.drawer.SetSize(m.listSize())
	m.refreshDrawer()
}

func (m *Model) drawerFacet() browse.Facet {
	if m.view == YearDrawerView {
		return browse.FacetYear
	}
	return browse.FacetGenre
}

func (m *Model) refreshDrawer() {
	facet := m.drawerFacet()
	active := m.session.Snapshot().Filters

	choices := browse.Genres
	current := active.Genre
	title := "Genres"
	if facet == browse.FacetYear {
		choices = browse.Years()
		current = active.Year
		title = "Year"
	}

	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem{value: c, selected: m.draft.Selected(facet, c) || slices.Contains(current, c)}
	}
	m.drawer.Title = title
	m.drawer.SetItems(items)
}

func (m *Model) refreshAlbums() {
	st := m.session.Snapshot()
	m.albumList.SetItems(albumItems(st.Albums, m.favourites.Contains))
}

func (m *Model) refreshFavourites() {
	m.favList.SetItems(albumItems(m.favourites.List(), m.favourites.Contains))
}

func (m *Model) selectedAlbum(l list.Model) (models.Album, bool) {
	item, ok := l.SelectedItem().(albumItem)
	if !ok {
		return models.Album{}, false
	}
	return item.album, true
}

func (m *Model) resize() {
	w, h := m.listSize()
	m.albumList.SetSize(w, h)
	m.drawer.SetSize(w, h)
	m.favList.SetSize(w, h)
}

func (m *Model) listSize() (int, int) {
	return max(m.width-4, 0), max(m.height-10, 0)
}

func (m *Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(styles.title.Render(heading))
	b.WriteString("\n")

	st := m.session.Snapshot()
	chips := st.Filters.Chips()
	if len(chips) == 0 {
		b.WriteString("Filters: " + styles.ok.Render(defaultNotice))
	} else {
		parts := []string{"Filters: "}
		for _, c := range chips {
			parts = append(parts, styles.chip.Render(c.Label+" ×"), " ")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, parts...))
	}
	return b.String()
}

func (m *Model) renderAlbumList() string {
	st := m.session.Snapshot()

	var body string
	switch {
	case st.Loading:
		body = styles.ok.Render("Loading...")
	case st.Err != nil:
		body = styles.err.Render(fmt.Sprintf("Error: %v", st.Err))
	case len(st.Albums) == 0:
		body = styles.warn.Render("No albums found")
	default:
		body = m.albumList.View()
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.toggle, m.keys.genres, m.keys.years, m.keys.favourites, m.keys.clear, m.keys.clearAll, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s\n\n%s", m.renderHeader(), body, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderDrawer(name string) string {
	save := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	pick := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick"))
	helpKeys := []key.Binding{pick, save, m.keys.back, m.keys.quit}

	title := styles.title.Render(fmt.Sprintf("Filter by %s", name))
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.drawer.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderFavourites() string {
	remove := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "remove"))
	helpKeys := []key.Binding{remove, m.keys.back, m.keys.quit}

	body := m.favList.View()
	if m.favourites.Len() == 0 {
		body = styles.ok.Render(emptyNotice)
	}
	return fmt.Sprintf("%s\n%s\n\n%s", styles.title.Render("Favourites"), body, m.help.ShortHelpView(helpKeys))
}
