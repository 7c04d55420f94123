package types

import (
	"time"

	"github.com/riordanpawley/gradebook/internal/domain"
)

// ToastyType is the closed set of toast categories
type ToastyType int

const (
	ToastyError ToastyType = iota
)

// IconWarning is the icon key used by error toasts
const IconWarning = "exclamationmark.triangle.fill"

type toastyTypeInfo struct {
	name    string
	color   domain.ColorName
	icon    string
	timeout time.Duration
}

// toastyTypes holds the per-variant constants. Adding a category means
// adding a constant above and a row here.
var toastyTypes = map[ToastyType]toastyTypeInfo{
	ToastyError: {
		name:    "error",
		color:   domain.ColorRed,
		icon:    IconWarning,
		timeout: 0,
	},
}

// AllToastyTypes lists every variant in declaration order
func AllToastyTypes() []ToastyType {
	return []ToastyType{ToastyError}
}

// IsValid reports whether t is a declared variant
func (t ToastyType) IsValid() bool {
	_, ok := toastyTypes[t]
	return ok
}

// Color returns the display color for the category
func (t ToastyType) Color() domain.ColorName {
	return t.info().color
}

// IconName returns the icon asset key for the category
func (t ToastyType) IconName() string {
	return t.info().icon
}

// Timeout returns how long the toast stays up. Zero means it stays until dismissed.
func (t ToastyType) Timeout() time.Duration {
	return t.info().timeout
}

// AutoDismiss reports whether the presentation layer should dismiss on its own
func (t ToastyType) AutoDismiss() bool {
	return t.Timeout() > 0
}

func (t ToastyType) String() string {
	if info, ok := toastyTypes[t]; ok {
		return info.name
	}
	return "unknown"
}

func (t ToastyType) info() toastyTypeInfo {
	if info, ok := toastyTypes[t]; ok {
		return info
	}
	return toastyTypes[ToastyError]
}

// ToastyMessage is the content of a single toast. Comparable with ==.
type ToastyMessage struct {
	Message string // Already localized display text
	Type    ToastyType
}

// NewToastyMessage creates a toast. Empty text is allowed.
func NewToastyMessage(message string, t ToastyType) ToastyMessage {
	return ToastyMessage{Message: message, Type: t}
}
