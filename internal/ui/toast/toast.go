package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/gradebook/internal/i18n"
	"github.com/riordanpawley/gradebook/internal/types"
	"github.com/riordanpawley/gradebook/internal/ui/styles"
)

// maxWidth caps the toast box when the config does not set one
const maxWidth = 40

// icons maps icon asset keys to terminal glyphs
var icons = map[string]string{
	types.IconWarning: "⚠",
}

// ToastRenderer handles rendering of the active toast
type ToastRenderer struct {
	styles    *styles.Styles
	colors    styles.ColorResolver
	localizer i18n.Localizer
	maxWidth  int
}

// New creates a new ToastRenderer. A non-positive width cap uses the default.
func New(s *styles.Styles, colors styles.ColorResolver, localizer i18n.Localizer, widthCap int) *ToastRenderer {
	if widthCap <= 0 {
		widthCap = maxWidth
	}
	return &ToastRenderer{
		styles:    s,
		colors:    colors,
		localizer: localizer,
		maxWidth:  widthCap,
	}
}

// Render renders the toast in a box a third of the screen wide.
// Returns empty string if the slot is empty.
func (r *ToastRenderer) Render(t *types.ToastyMessage, width int) string {
	if t == nil {
		return ""
	}

	toastWidth := min(width/3, r.maxWidth)

	color := r.colors.Resolve(t.Type.Color())
	body := t.Message
	if glyph := Icon(t.Type.IconName()); glyph != "" {
		body = glyph + " " + body
	}

	// Manual-dismiss toasts tell the user how to get rid of them
	if !t.Type.AutoDismiss() {
		hint := r.styles.ToastHint.Render(r.localizer.Localize(i18n.KeyDismissHint))
		body = lipgloss.JoinVertical(lipgloss.Left, body, hint)
	}

	return r.styles.Toast(color).Width(toastWidth).Render(body)
}

// Icon returns the glyph for an icon key, or "" when the key is unknown
func Icon(name string) string {
	return icons[name]
}
