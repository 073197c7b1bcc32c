package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_SlotsPersistAcrossRenders(t *testing.T) {
	inst := New("counter")
	inits := 0

	var get func() any
	var set func(any)
	render := func() {
		get, set = inst.State(func() any {
			inits++
			return 1
		})
	}

	inst.Render(render)
	require.Equal(t, 1, get())

	set(2)
	assert.True(t, inst.Dirty())

	inst.Render(render)
	assert.Equal(t, 2, get())
	assert.Equal(t, 1, inits, "init should only run on the first render")
	assert.False(t, inst.Dirty())
	assert.Equal(t, 2, inst.Renders())
}

func TestInstance_EffectsRunOnceAfterFirstRender(t *testing.T) {
	inst := New("effects")
	var order []string

	render := func() {
		order = append(order, "render")
		inst.Effect(func() func() {
			order = append(order, "setup")
			return func() { order = append(order, "cleanup") }
		})
	}

	inst.Render(render)
	inst.Render(render)
	assert.True(t, inst.Mounted())
	assert.Equal(t, []string{"render", "setup", "render"}, order)

	inst.Dispose()
	inst.Dispose()
	assert.Equal(t, []string{"render", "setup", "render", "cleanup"}, order)
}

func TestInstance_CleanupsRunInReverseOrder(t *testing.T) {
	inst := New("cleanups")
	var order []int

	inst.Render(func() {
		for n := 1; n <= 3; n++ {
			inst.Effect(func() func() {
				return func() { order = append(order, n) }
			})
		}
	})
	inst.Dispose()

	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestInstance_FlushOnlyWhenDirty(t *testing.T) {
	invalidated := 0
	inst := New("flush", OnInvalidate(func() { invalidated++ }))

	var set func(any)
	render := func() { _, set = inst.State(func() any { return "a" }) }
	inst.Render(render)

	assert.False(t, inst.Flush(render))
	assert.Equal(t, 1, inst.Renders())

	set("b")
	assert.Equal(t, 1, invalidated)
	assert.True(t, inst.Flush(render))
	assert.Equal(t, 2, inst.Renders())
}

func TestInstance_DisposedIgnoresRendersAndSets(t *testing.T) {
	inst := New("gone")

	var get func() any
	var set func(any)
	render := func() { get, set = inst.State(func() any { return 0 }) }
	inst.Render(render)
	inst.Dispose()

	set(5)
	assert.Equal(t, 0, get())
	assert.False(t, inst.Dirty())

	inst.Render(render)
	assert.Equal(t, 1, inst.Renders())
	assert.True(t, inst.Disposed())
}

func TestInstance_DisposeBeforeMountSkipsEffects(t *testing.T) {
	inst := New("never")
	ran := false
	inst.Effect(func() func() {
		ran = true
		return nil
	})
	inst.Dispose()
	inst.Render(func() {})

	assert.False(t, ran)
	assert.Equal(t, "never", inst.String())
}
