package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c2fo/webftp/options"
)

type widget struct {
	name  string
	count int
}

func TestApplyOptions(t *testing.T) {
	w := &widget{}
	options.ApplyOptions(w,
		options.Func("name", func(w *widget) { w.name = "first" }),
		nil,
		options.Func("count", func(w *widget) { w.count = 3 }),
		options.Func("name", func(w *widget) { w.name = "second" }),
	)

	assert.Equal(t, "second", w.name, "later options win")
	assert.Equal(t, 3, w.count)
}

func TestFuncOptionName(t *testing.T) {
	opt := options.Func("count", func(w *widget) {})
	assert.Equal(t, "count", opt.OptionName())
}
