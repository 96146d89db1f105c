package apitests

import (
	"net/http"

	"github.com/apicheck/api-contract-tests/checker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	resourceSpecies = "pokemon-species"
	resourcePokemon = "pokemon"
)

type dataCase struct {
	resourceType string
	identifier   string
	exists       bool
}

func (d dataCase) name() string {
	return d.resourceType + " " + d.identifier
}

func DoSpeciesTests(t *T) {
	missingID := t.Config().Species.MissingID

	t.Run("has data", func(t *T) {
		for _, p := range []dataCase{
			{resourceSpecies, "25", true},
			{resourcePokemon, "27", true},
			{resourcePokemon, "pikachu", true},
			{resourceSpecies, missingID, false},
		} {
			t.Run(p.name(), func(t *T) {
				verdict, err := t.Checker().CheckHasData(t.Context(), p.resourceType, p.identifier)
				require.NoError(t, err)
				t.Debug("verdict: %s", verdict)

				if p.exists {
					assert.True(t, verdict.Success, "expected data at %s: %s", verdict.URL, verdict.Reason)
					assert.Equal(t, checker.ReasonHasData, verdict.Reason)
				} else {
					assert.False(t, verdict.Success, "expected no data at %s", verdict.URL)
					assert.NotEqual(t, checker.ReasonHasData, verdict.Reason)
				}
			})
		}
	})

	t.Run("has no data", func(t *T) {
		// Existing resources have data, and a missing one is a non-2xx status: both are failures.
		for _, p := range []dataCase{
			{resourceSpecies, "25", true},
			{resourcePokemon, "pikachu", true},
			{resourceSpecies, missingID, false},
		} {
			t.Run(p.name(), func(t *T) {
				verdict, err := t.Checker().CheckHasNoData(t.Context(), p.resourceType, p.identifier)
				require.NoError(t, err)
				t.Debug("verdict: %s", verdict)

				assert.False(t, verdict.Success, "unexpected success at %s: %s", verdict.URL, verdict.Reason)
				if p.exists {
					assert.Equal(t, checker.ReasonHasData, verdict.Reason)
				}
			})
		}
	})

	t.Run("listing is not a server error", func(t *T) {
		for _, resourceType := range []string{resourceSpecies, resourcePokemon} {
			t.Run(resourceType, func(t *T) {
				isServerError, err := t.Checker().CheckServerError(t.Context(), resourceType)
				require.NoError(t, err)
				assert.False(t, isServerError, "listing of %s returned a 5xx status", resourceType)
			})
		}
	})

	t.Run("strict fetch of missing id fails with 404", func(t *T) {
		_, err := t.Checker().FetchStrict(t.Context(), resourceSpecies, missingID)
		var statusErr *checker.HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.Status)
	})

	t.Run("names match across endpoints", DoCompareTests)

	t.Run("idempotent verdicts", func(t *T) {
		first, err := t.Checker().CheckHasData(t.Context(), resourceSpecies, "25")
		require.NoError(t, err)
		second, err := t.Checker().CheckHasData(t.Context(), resourceSpecies, "25")
		require.NoError(t, err)

		assert.Equal(t, first.Success, second.Success)
		assert.Equal(t, first.Reason, second.Reason)
		assert.Equal(t, first.StatusCode, second.StatusCode)
		assert.True(t, first.Payload.Equal(second.Payload), "payload changed between requests")
	})
}
