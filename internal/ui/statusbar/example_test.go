package statusbar_test

import (
	"fmt"

	"github.com/riordanpawley/gradebook/internal/types"
	"github.com/riordanpawley/gradebook/internal/ui/statusbar"
	"github.com/riordanpawley/gradebook/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	keys := statusbar.DefaultKeyMap()

	sb := statusbar.New(types.ModeNormal, 80, styles.New()).
		WithHints(keys.Hints(types.ModeNormal, false))

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	// For this example, we just verify it's not empty
	fmt.Println(len(rendered) > 0)
	// Output: true
}

// ExampleKeyMap_Hints lists the help keys for edit mode
func ExampleKeyMap_Hints() {
	keys := statusbar.DefaultKeyMap()
	for _, b := range keys.Hints(types.ModeEdit, false) {
		fmt.Println(b.Help().Key, b.Help().Desc)
	}
	// Output:
	// 0-9 set
	// + raise
	// - lower
	// esc done
}
