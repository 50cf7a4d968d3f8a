package site

// View is the rendered state of the blog index after a change.
type View struct {
	Criteria  Criteria
	Visible   []bool // parallel to Controller.Items
	Showing   int
	Count     string // result count text
	NoResults bool
}

// Controller owns the filter state of one blog index.
type Controller struct {
	items    []Item
	criteria Criteria
}

// NewController sorts items latest first and selects everything.
func NewController(items []Item) *Controller {
	return &Controller{items: SortByLatest(items), criteria: DefaultCriteria()}
}

// Items returns the items in display order.
func (c *Controller) Items() []Item {
	return c.items
}

// Criteria returns the current selection.
func (c *Controller) Criteria() Criteria {
	return c.criteria
}

// Select sets one dimension and returns the new view. On error the state
// is unchanged.
func (c *Controller) Select(dim Dimension, value string) (View, error) {
	next, err := c.criteria.With(dim, value)
	if err != nil {
		return c.View(), err
	}
	c.criteria = next
	return c.View(), nil
}

// Clear resets every dimension to All.
func (c *Controller) Clear() View {
	c.criteria = DefaultCriteria()
	return c.View()
}

// View computes the view of the current state.
func (c *Controller) View() View {
	visible := Visible(c.items, c.criteria)
	showing := 0
	for _, v := range visible {
		if v {
			showing++
		}
	}
	return View{
		Criteria:  c.criteria,
		Visible:   visible,
		Showing:   showing,
		Count:     ResultCount(showing, len(c.items)),
		NoResults: showing == 0,
	}
}
