package domain

import "strings"

// Destination is a logical page the view can display.
type Destination string

const (
	PageHome           Destination = "home"
	PageLoading        Destination = "loading"
	PageLogin          Destination = "login"
	PageDashboard      Destination = "dashboard"
	PageProfile        Destination = "profile"
	PageRegistration   Destination = "registration"
	PageForgotPassword Destination = "forgotPassword"
)

var pathAliases = map[string]Destination{
	"home":             PageHome,
	"loading":          PageLoading,
	"login":            PageLogin,
	"dashboard":        PageDashboard,
	"profile":          PageProfile,
	"registration":     PageRegistration,
	"userregistration": PageRegistration,
	"forgotpassword":   PageForgotPassword,
	"forgot-password":  PageForgotPassword,
}

// ResolvePath maps a view path such as "/login" to a destination.
// Empty and unknown paths resolve to PageHome.
func ResolvePath(path string) Destination {
	p := strings.ToLower(strings.Trim(strings.TrimSpace(path), "/"))
	if d, ok := pathAliases[p]; ok {
		return d
	}
	return PageHome
}

// Path returns the canonical view path of d.
func (d Destination) Path() string {
	return "/" + string(d)
}
