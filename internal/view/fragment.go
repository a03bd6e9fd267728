package view

// Action is what activating a bound element does.
type Action int

const (
	// ActionNavigate sets the location hash to Binding.Target.
	ActionNavigate Action = iota + 1
	// ActionFilterTag applies Binding.Target as the readings tag filter.
	ActionFilterTag
	// ActionClearFilter removes the readings tag filter.
	ActionClearFilter
)

func (a Action) String() string {
	switch a {
	case ActionNavigate:
		return "navigate"
	case ActionFilterTag:
		return "filter"
	case ActionClearFilter:
		return "clear"
	default:
		return "unknown"
	}
}

// Binding attaches an Action to an element of a Fragment.
type Binding struct {
	Action Action
	Target string // hash fragment or tag, depending on Action
	Label  string // visible text of the element
}

// Fragment is rendered markup plus the interactive bindings it carries.
// HTML is already escaped; it is painted as-is.
type Fragment struct {
	HTML     string
	Bindings []Binding
}

// Text returns the fragment's readable text.
func (f Fragment) Text() string {
	return Text(f.HTML)
}

// BindingsFor returns the bindings performing action, in document order.
func (f Fragment) BindingsFor(action Action) []Binding {
	var out []Binding
	for _, b := range f.Bindings {
		if b.Action == action {
			out = append(out, b)
		}
	}
	return out
}
