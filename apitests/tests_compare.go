package apitests

import (
	"github.com/apicheck/api-contract-tests/checker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoCompareTests checks that a species and the pokemon with the same identifier share a name.
// The identifiers are chosen at random; rerun with the same -seed to repeat a failure.
func DoCompareTests(t *T) {
	species := t.Config().Species
	ids := t.IDs().IDs(species.RandomIDs, species.RandomIDMin, species.RandomIDMax)
	t.Debug("comparing identifiers %v (seed %d)", ids, t.IDs().Seed())

	for _, id := range ids {
		t.Run("id "+id, func(t *T) {
			outcome, err := t.Comparator().Compare(t.Context(), id, resourceSpecies, resourcePokemon, checker.DefaultCompareField)
			require.NoError(t, err)
			t.Debug("outcome: %s", outcome)
			assert.Equal(t, checker.Match, outcome.Kind, outcome.String())
		})
	}

	t.Run("known match", func(t *T) {
		outcome, err := t.Comparator().Compare(t.Context(), "25", resourceSpecies, resourcePokemon, "")
		require.NoError(t, err)
		require.Equal(t, checker.Match, outcome.Kind, outcome.String())
		assert.Equal(t, "pikachu", outcome.Value())
	})

	t.Run("missing id is not found", func(t *T) {
		outcome, err := t.Comparator().Compare(t.Context(), species.MissingID, resourceSpecies, resourcePokemon, "")
		require.NoError(t, err)
		require.Equal(t, checker.NotFound, outcome.Kind, outcome.String())
		assert.Equal(t, resourceSpecies, outcome.MissingFrom.ResourceType)
	})
}
