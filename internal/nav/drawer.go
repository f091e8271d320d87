package nav

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// NoSelection is the drawer selection before any item was clicked. The default view is attached
// directly by the host and is not modelled as a drawer selection.
const NoSelection = -1

// Snapshot keys written by the drawer.
const (
	keyDrawerOpen     = "drawer.open"
	keyDrawerSelected = "drawer.selected"
	keyDrawerCursor   = "drawer.cursor"
)

// Drawer is the side menu controller. It knows nothing about the views, it only reports which
// item identifier was clicked.
type Drawer struct {
	primary  []MenuItem
	sticky   []MenuItem
	open     bool
	selected int
	cursor   int
	onClick  func(id int)
}

// BuildDrawer creates a drawer for the given items and restores its ui state from saved, which
// may be nil.
func BuildDrawer(primary []MenuItem, sticky []MenuItem, saved Snapshot) *Drawer {
	drawer := &Drawer{
		primary:  slices.Clone(primary),
		sticky:   slices.Clone(sticky),
		selected: NoSelection,
	}

	drawer.restore(saved)

	return drawer
}

func (d *Drawer) restore(saved Snapshot) {
	if saved == nil {
		return
	}

	if open, err := strconv.ParseBool(saved[keyDrawerOpen]); err == nil {
		d.open = open
	}

	if selected, err := strconv.Atoi(saved[keyDrawerSelected]); err == nil && d.indexOf(selected) >= 0 {
		d.selected = selected
	}

	if cursor, err := strconv.Atoi(saved[keyDrawerCursor]); err == nil && cursor >= 0 && cursor < len(d.Items()) {
		d.cursor = cursor
	}
}

// SaveState merges the drawer fields into snapshot and returns it. Keys owned by other
// collaborators are left alone.
func (d *Drawer) SaveState(snapshot Snapshot) Snapshot {
	if snapshot == nil {
		snapshot = Snapshot{}
	}

	snapshot[keyDrawerOpen] = strconv.FormatBool(d.open)
	snapshot[keyDrawerSelected] = strconv.Itoa(d.selected)
	snapshot[keyDrawerCursor] = strconv.Itoa(d.cursor)

	return snapshot
}

// OnItemClick registers the single click callback, replacing any previous one.
func (d *Drawer) OnItemClick(fn func(id int)) {
	d.onClick = fn
}

// Click selects the item and notifies the callback. Clicking the already selected item still
// fires the callback.
func (d *Drawer) Click(id int) {
	index := d.indexOf(id)
	if index < 0 {
		return
	}

	d.selected = id
	d.cursor = index

	if d.onClick != nil {
		d.onClick(id)
	}
}

// ClickCursor clicks the item under the keyboard cursor.
func (d *Drawer) ClickCursor() {
	items := d.Items()
	if len(items) == 0 {
		return
	}

	d.Click(items[d.cursor].ID)
}

// MoveCursor moves the keyboard cursor by delta items, wrapping around both ends.
func (d *Drawer) MoveCursor(delta int) {
	count := len(d.primary) + len(d.sticky)
	if count == 0 {
		return
	}

	d.cursor = ((d.cursor+delta)%count + count) % count
}

func (d *Drawer) Cursor() int {
	return d.cursor
}

func (d *Drawer) Selected() int {
	return d.selected
}

func (d *Drawer) IsOpen() bool {
	return d.open
}

func (d *Drawer) Open() {
	d.open = true
}

func (d *Drawer) Close() {
	d.open = false
}

func (d *Drawer) Toggle() {
	d.open = !d.open
}

// Items returns the primary items followed by the sticky items.
func (d *Drawer) Items() []MenuItem {
	return append(slices.Clone(d.primary), d.sticky...)
}

func (d *Drawer) Primary() []MenuItem {
	return d.primary
}

func (d *Drawer) Sticky() []MenuItem {
	return d.sticky
}

func (d *Drawer) indexOf(id int) int {
	return slices.IndexFunc(d.Items(), func(item MenuItem) bool {
		return item.ID == id
	})
}
