package types

import (
	"testing"
	"time"

	"github.com/riordanpawley/gradebook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToastyType_Error(t *testing.T) {
	assert.Equal(t, domain.ColorRed, ToastyError.Color())
	assert.Equal(t, "exclamationmark.triangle.fill", ToastyError.IconName())
	assert.Equal(t, time.Duration(0), ToastyError.Timeout())
	assert.False(t, ToastyError.AutoDismiss())
	assert.Equal(t, "error", ToastyError.String())
}

func TestToastyType_AllVariantsDeclared(t *testing.T) {
	for _, tt := range AllToastyTypes() {
		t.Run(tt.String(), func(t *testing.T) {
			assert.True(t, tt.IsValid())
			assert.NotEmpty(t, tt.Color())
			assert.NotEmpty(t, tt.IconName())
			assert.GreaterOrEqual(t, tt.Timeout(), time.Duration(0))
		})
	}
}

func TestToastyType_Unknown(t *testing.T) {
	unknown := ToastyType(99)

	assert.False(t, unknown.IsValid())
	assert.Equal(t, "unknown", unknown.String())
	// Projections fall back to the error variant
	assert.Equal(t, ToastyError.Color(), unknown.Color())
}

func TestToastyMessage_Equality(t *testing.T) {
	a := NewToastyMessage("x", ToastyError)
	b := NewToastyMessage("x", ToastyError)
	c := NewToastyMessage("y", ToastyError)

	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.Equal(t, "", NewToastyMessage("", ToastyError).Message)
}
