package guard_test

import (
	"errors"
	"testing"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/application/usecases/commands"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_validates", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuard_CommandUsage verifies the guard through a real command
// type: a zero-value command fails validation with its sentinel, while one
// built via the constructor passes.
func TestConstructorGuard_CommandUsage(t *testing.T) {
	t.Run("zero_value_command_is_rejected", func(t *testing.T) {
		// Given
		var cmd commands.CancelParcelCommand // zero value

		// When
		err := cmd.Validate()

		// Then
		assert.ErrorIs(t, err, commands.ErrCancelParcelCommandIsNotConstructed)
	})

	t.Run("constructed_command_passes", func(t *testing.T) {
		// Given
		cmd, err := commands.NewCancelParcelCommand(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		// Then
		require.NoError(t, cmd.Validate())
	})

	t.Run("builder_copy_keeps_the_guard", func(t *testing.T) {
		// Given
		cmd, err := commands.NewCancelParcelCommand(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, err)

		// When
		copied := cmd.ByAdmin()

		// Then
		require.NoError(t, copied.Validate())
	})
}

// TestConstructorGuardConcurrency verifies that a constructed guard is safe
// for concurrent validation.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
