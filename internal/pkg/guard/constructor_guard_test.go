package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markReadyQuery struct {
	guard guard.ConstructorGuard
}

func newMarkReadyQuery() markReadyQuery {
	return markReadyQuery{guard: guard.NewConstructorGuard()}
}

func (q markReadyQuery) Validate() error {
	return q.guard.Validate(errors.New("query is not constructed"))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("order command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Same(t, expected, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_Embedded(t *testing.T) {
	t.Run("constructor_built_value_is_valid", func(t *testing.T) {
		require.NoError(t, newMarkReadyQuery().Validate())
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		err := markReadyQuery{}.Validate()

		require.EqualError(t, err, "query is not constructed")
	})
}
