package domain

import "strconv"

// Grade bounds (inclusive)
const (
	MinGrade = 0
	MaxGrade = 10
)

// Band is a contiguous range of grade values sharing one label and color
type Band int

const (
	BandUngraded Band = iota
	BandPoor
	BandFair
	BandGood
	BandExcellent
)

func (b Band) String() string {
	switch b {
	case BandPoor:
		return "poor"
	case BandFair:
		return "fair"
	case BandGood:
		return "good"
	case BandExcellent:
		return "excellent"
	default:
		return "ungraded"
	}
}

// LabelKey is a localization key for a grade description
type LabelKey string

const (
	LabelUngraded  LabelKey = "grade.ungraded"
	LabelPoor      LabelKey = "grade.poor"
	LabelFair      LabelKey = "grade.fair"
	LabelGood      LabelKey = "grade.good"
	LabelExcellent LabelKey = "grade.excellent"
)

// ColorName is a symbolic color, resolved to a concrete color by the UI
type ColorName string

const (
	ColorRed    ColorName = "red"
	ColorOrange ColorName = "orange"
	ColorGreen  ColorName = "green"
	ColorBlue   ColorName = "blue"
	ColorGray   ColorName = "gray"
)

// Grade is an immutable score clamped to [MinGrade, MaxGrade].
// The zero value is an ungraded score. Grades are comparable with ==.
type Grade struct {
	value int
}

// NewGrade clamps raw into range. Out-of-range input is normalized, never rejected.
func NewGrade(raw int) Grade {
	return Grade{value: max(MinGrade, min(raw, MaxGrade))}
}

// Value returns the clamped score
func (g Grade) Value() int {
	return g.value
}

// Band classifies the score
func (g Grade) Band() Band {
	switch {
	case g.value >= 1 && g.value <= 3:
		return BandPoor
	case g.value >= 4 && g.value <= 6:
		return BandFair
	case g.value >= 7 && g.value <= 8:
		return BandGood
	case g.value >= 9 && g.value <= 10:
		return BandExcellent
	default:
		return BandUngraded
	}
}

// Description returns the localization key for the score's band
func (g Grade) Description() LabelKey {
	switch g.Band() {
	case BandPoor:
		return LabelPoor
	case BandFair:
		return LabelFair
	case BandGood:
		return LabelGood
	case BandExcellent:
		return LabelExcellent
	default:
		return LabelUngraded
	}
}

// Color returns the symbolic color for the score's band
func (g Grade) Color() ColorName {
	switch g.Band() {
	case BandPoor:
		return ColorRed
	case BandFair:
		return ColorOrange
	case BandGood:
		return ColorGreen
	case BandExcellent:
		return ColorBlue
	default:
		return ColorGray
	}
}

// Add returns a new grade offset by delta, clamped
func (g Grade) Add(delta int) Grade {
	return NewGrade(g.value + delta)
}

func (g Grade) String() string {
	return strconv.Itoa(g.value) + "/" + strconv.Itoa(MaxGrade)
}
