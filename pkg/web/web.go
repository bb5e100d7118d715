// Package web renders the coming-soon page and serves its static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/navarrastar/coming-soon/pkg/form"
	"github.com/navarrastar/coming-soon/pkg/i18n"
	"github.com/navarrastar/coming-soon/pkg/models"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded /static assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// PageView is everything the ComingSoon component needs.
type PageView struct {
	Lang        string
	AltLang     string
	Name        string
	Email       string
	Phone       string
	Placeholder string
	Options     []form.Option
	Status      string
	Message     string
	Submitting  bool

	printer *message.Printer
}

// NewPageView builds the view for a form state in the given language.
func NewPageView(tag language.Tag, st *form.State) PageView {
	alt := i18n.Supported()[1]
	if tag != i18n.Default() {
		alt = i18n.Default()
	}
	v := PageView{
		Lang:        tag.String(),
		AltLang:     alt.String(),
		Name:        st.Name,
		Email:       st.Email,
		Phone:       st.Phone,
		Placeholder: models.PlaceholderModel,
		Options:     st.Dropdown.Options(),
		Submitting:  st.Submitting(),
		printer:     i18n.Printer(tag),
	}
	switch st.Status() {
	case form.StatusSucceeded:
		v.Status = "success"
		v.Message = v.T(i18n.MsgThanks)
	case form.StatusFailed:
		v.Status = "error"
		v.Message = st.Message()
		if slices.Contains(clientMessages, v.Message) {
			v.Message = v.T(v.Message)
		}
	}
	return v
}

// Messages the form produces itself; server messages are shown verbatim.
var clientMessages = []string{form.MsgFillAll, form.MsgInvalidEmail, form.MsgSubmitFailed, form.MsgNetworkError}

// T translates a page string.
func (v PageView) T(key string) string {
	if v.printer == nil {
		return key
	}
	return v.printer.Sprintf(key)
}

// SubmitLabel is the button text for the current state.
func (v PageView) SubmitLabel() string {
	if v.Submitting {
		return v.T(i18n.MsgSubmitting)
	}
	return v.T(i18n.MsgNotify)
}

// StatusClasses returns the CSS classes of the status line.
func (v PageView) StatusClasses() []string {
	if v.Status == "" {
		return []string{"status"}
	}
	return []string{"status", "status-" + v.Status}
}

// StatusText is the status line content, prefixed with a check or a cross.
func (v PageView) StatusText() string {
	switch v.Status {
	case "success":
		return "✓ " + v.Message
	case "error":
		return "✗ " + v.Message
	default:
		return ""
	}
}
