package expand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/levelwalk/expand"
)

// countdown is a custom provider built from expand.Func: node n expands to
// n-1 until it hits zero. It carries no state beyond the function itself.
func countdown() expand.Expander[int] {
	var f expand.Func[int]
	f = func(n int) ([]int, expand.Expander[int]) {
		if n <= 0 {
			return nil, f
		}

		return []int{n - 1}, f
	}

	return f
}

// TestFunc_Adapter verifies a plain function satisfies the capability.
func TestFunc_Adapter(t *testing.T) {
	x := countdown()

	kids, next := x.Expand(3)
	assert.Equal(t, []int{2}, kids)

	kids, _ = next.Expand(0)
	assert.Empty(t, kids, "base case is total")
}
