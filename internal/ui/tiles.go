package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/gallery"
	"folio/internal/ui/textutil"
)

// tileItem implements list.Item for a gallery item.
type tileItem struct {
	item   gallery.Item
	images int
}

func (t tileItem) FilterValue() string { return t.item.Title }
func (t tileItem) Title() string       { return t.item.Title }
func (t tileItem) Description() string {
	desc := textutil.Truncate(t.item.Description, 72)
	switch t.images {
	case 0:
		return desc
	case 1:
		return desc + "  [1 image]"
	default:
		return desc + fmt.Sprintf("  [%d images]", t.images)
	}
}

// TileList is the selectable list of tiles for one gallery collection.
type TileList struct {
	Kind  gallery.Kind
	Items []gallery.Item
	list  list.Model
}

var _ View = (*TileList)(nil)

// NewTileList creates a tile list over items.
func NewTileList(kind gallery.Kind, items []gallery.Item) *TileList {
	l := list.New(nil, NewTileDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	t := &TileList{Kind: kind, list: l}
	t.SetItems(items)
	return t
}

// SetItems replaces the tiles.
func (t *TileList) SetItems(items []gallery.Item) {
	t.Items = items
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = tileItem{item: it, images: len(gallery.Resolve(it))}
	}
	t.list.SetItems(li)
}

// Selected returns the index of the highlighted tile, or -1 when empty.
func (t *TileList) Selected() int {
	if len(t.Items) == 0 {
		return -1
	}
	return t.list.Index()
}

// Select moves the highlight to index i.
func (t *TileList) Select(i int) {
	t.list.Select(i)
}

// SetSize sets the list dimensions.
func (t *TileList) SetSize(width, height int) {
	t.list.SetSize(width, height)
}

// Init implements View.
func (t *TileList) Init() tea.Cmd {
	return nil
}

// Update implements View. The list handles j/k/g/G itself; enter is
// handled by AppModel.
func (t *TileList) Update(msg tea.Msg) (View, tea.Cmd) {
	if len(t.Items) == 0 {
		return t, nil
	}
	var cmd tea.Cmd
	t.list, cmd = t.list.Update(msg)
	return t, cmd
}

// View implements View.
func (t *TileList) View() string {
	if len(t.Items) == 0 {
		return Styles.Empty.Render("Nothing here yet.")
	}
	if t.list.Width() == 0 {
		t.list.SetWidth(80)
	}
	if t.list.Height() == 0 {
		t.list.SetHeight(20)
	}
	return t.list.View()
}
