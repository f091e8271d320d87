package nav

// View is a content view the host can place in its content region.
type View interface {
	// Attach is called when the view becomes the displayed content.
	Attach()
	// Detach is called when the view is replaced by another one.
	Detach()
}

// FabContainer is the optional capability of views that own a floating action button whose
// vertical position can be adjusted.
type FabContainer interface {
	FabMoveUp(offset int)
	FabRestorePosition()
}

// FabOf queries the FAB capability of a view.
func FabOf(view View) (FabContainer, bool) {
	if view == nil {
		return nil, false
	}

	fab, ok := view.(FabContainer)

	return fab, ok
}

// Factory creates a new instance of a content view.
type Factory func(kind ViewKind) View

// ViewCache holds at most one live instance per ViewKind.
type ViewCache struct {
	views   map[ViewKind]View
	factory Factory
}

func NewViewCache(factory Factory) *ViewCache {
	return &ViewCache{views: map[ViewKind]View{}, factory: factory}
}

// Get returns the cached instance for kind, creating and caching it first when missing.
func (c *ViewCache) Get(kind ViewKind) View {
	if view, found := c.views[kind]; found {
		return view
	}

	view := c.factory(kind)
	c.views[kind] = view

	return view
}

// Peek returns the cached instance without creating one.
func (c *ViewCache) Peek(kind ViewKind) (View, bool) {
	view, found := c.views[kind]

	return view, found
}

// Retain drops every cached instance except the one for kind.
func (c *ViewCache) Retain(kind ViewKind) {
	for cached := range c.views {
		if cached != kind {
			delete(c.views, cached)
		}
	}
}

// Clear drops every cached instance.
func (c *ViewCache) Clear() {
	clear(c.views)
}

func (c *ViewCache) Len() int {
	return len(c.views)
}
