package kernel_test

import (
	"regexp"
	"testing"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("valid_tracking_number", func(t *testing.T) {
		tn, err := kernel.NewTrackingNumber("BR7F3K9Q2MX1")

		require.NoError(t, err)
		require.NoError(t, tn.Validate())
		assert.Equal(t, "BR7F3K9Q2MX1", tn.String())
	})

	t.Run("empty_string_is_required_error", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_shapes_are_rejected", func(t *testing.T) {
		testCases := []struct {
			name  string
			value string
		}{
			{name: "wrong_prefix", value: "XX7F3K9Q2MX1"},
			{name: "lowercase_characters", value: "BR7f3k9q2mx1"},
			{name: "too_short", value: "BR7F3K9Q2"},
			{name: "too_long", value: "BR7F3K9Q2MX1A"},
			{name: "disallowed_characters", value: "BR7F3K-Q2MX1"},
			{name: "prefix_only", value: "BR"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewTrackingNumber(tc.value)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var tn kernel.TrackingNumber

		err := tn.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTrackingNumber_Equals(t *testing.T) {
	first, err := kernel.NewTrackingNumber("BRAAAAAAAAAA")
	require.NoError(t, err)
	same, err := kernel.NewTrackingNumber("BRAAAAAAAAAA")
	require.NoError(t, err)
	other, err := kernel.NewTrackingNumber("BRBBBBBBBBBB")
	require.NoError(t, err)

	assert.True(t, first.Equals(same))
	assert.False(t, first.Equals(other))
}

func TestRandomTrackingNumberGenerator_Generate(t *testing.T) {
	generator := kernel.NewRandomTrackingNumberGenerator()
	pattern := regexp.MustCompile(`^BR[A-Z0-9]{10}$`)

	t.Run("generated_numbers_match_fixed_shape", func(t *testing.T) {
		for range 100 {
			tn, err := generator.Generate()

			require.NoError(t, err)
			require.NoError(t, tn.Validate())
			assert.Regexp(t, pattern, tn.String())
		}
	})

	t.Run("generated_numbers_are_distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			tn, err := generator.Generate()
			require.NoError(t, err)
			assert.False(t, seen[tn.String()], "generated duplicate %s", tn)
			seen[tn.String()] = true
		}
	})
}
