package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/keepspec/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.List())
}

func TestRegister(t *testing.T) {
	reg := New[testItem](Kind("flag"))

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("dontshrink", testItem{ID: 1}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("  ", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "flag name cannot be empty")
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("dontshrink", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, "dontshrink", errors.GetErrorDetails(err)["name"])
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("text", testItem{ID: 1, Name: "text"}))

	got, err := reg.Get("text")
	require.NoError(t, err)
	assert.Equal(t, testItem{ID: 1, Name: "text"}, got)

	_, err = reg.Get("TEXT")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "case-sensitive by default")
}

func TestCaseInsensitive(t *testing.T) {
	reg := New[testItem](CaseInsensitive())
	require.NoError(t, reg.Register("DontShrink", testItem{ID: 1}))

	assert.True(t, reg.Has("dontshrink"))
	assert.True(t, reg.Has("DONTSHRINK"))
	got, err := reg.Get("dontSHRINK")
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, []string{"dontshrink"}, reg.List())

	err = reg.Register("dontshrink", testItem{ID: 2})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestRemove(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("a", testItem{ID: 1}))

	require.NoError(t, reg.Remove("a"))
	assert.False(t, reg.Has("a"))

	err := reg.Remove("a")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestListAndValuesAreSorted(t *testing.T) {
	reg := New[testItem]()
	for i, name := range []string{"yaml", "json", "text", "xml"} {
		require.NoError(t, reg.Register(name, testItem{ID: i, Name: name}))
	}

	assert.Equal(t, []string{"json", "text", "xml", "yaml"}, reg.List())

	var names []string
	for _, v := range reg.Values() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"json", "text", "xml", "yaml"}, names)
}

func TestMustRegister(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "once", testItem{})
	assert.Panics(t, func() { MustRegister(reg, "once", testItem{}) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[testItem]()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("item%d", i), testItem{ID: i})
			_ = reg.Has(fmt.Sprintf("item%d", i))
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, reg.Count())
}
