package guard

// Decision is the guard's verdict on a navigation attempt. The zero value
// allows the transition; a non-empty Redirect names the route the browser
// must be sent to instead.
type Decision struct {
	Redirect string `json:"redirect,omitempty"`
}

// Proceed allows the navigation.
var Proceed = Decision{}

// RedirectTo bounces the navigation to the named route.
func RedirectTo(routeName string) Decision {
	return Decision{Redirect: routeName}
}

// Allowed reports whether the navigation may proceed as requested.
func (d Decision) Allowed() bool { return d.Redirect == "" }
