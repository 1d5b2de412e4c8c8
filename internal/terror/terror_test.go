package terror_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipsql-go/kipsql/internal/terror"
)

func TestWithArgsFormatsMessage(t *testing.T) {
	class := terror.NewClass("test")
	tpl := class.New(1, "column %q not found")
	err := tpl.WithArgs("c1")

	assert.Equal(t, `[test:1]column "c1" not found`, err.Error())
}

func TestIsMatchesSameClassAndCode(t *testing.T) {
	class := terror.NewClass("test")
	tpl := class.New(2, "bad thing: %s")

	a := tpl.WithArgs("x")
	b := tpl.WithArgs("y")
	assert.True(t, a.Is(b))

	other := terror.NewClass("other").New(2, "bad thing: %s").WithArgs("x")
	assert.False(t, a.Is(other))
}
