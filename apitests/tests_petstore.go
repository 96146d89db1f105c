package apitests

import (
	"github.com/apicheck/api-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPetName     = "doggie"
	testPetCategory = "Dogs"
)

func DoPetstoreTests(t *T) {
	t.Run("create pet", func(t *T) {
		id := t.Config().Petstore.PetID
		pet, err := t.Petstore().CreatePet(t.Context(), id, testPetName, testPetCategory, []string{"friendly"})
		require.NoError(t, err)

		assert.Equal(t, id, pet.ID)
		assert.Equal(t, testPetName, pet.Name)
		assert.Equal(t, servicedef.PetStatusAvailable, pet.Status)
		if assert.NotNil(t, pet.Category) {
			assert.Equal(t, testPetCategory, pet.Category.Name)
		}
	})

	t.Run("update pet status", func(t *T) {
		id := t.Config().Petstore.PetID
		_, err := t.Petstore().CreatePet(t.Context(), id, testPetName, testPetCategory, nil)
		require.NoError(t, err)

		pet, err := t.Petstore().UpdatePetStatus(t.Context(), id, servicedef.PetStatusSold)
		require.NoError(t, err)
		assert.Equal(t, id, pet.ID)
		assert.Equal(t, servicedef.PetStatusSold, pet.Status)
	})

	t.Run("fourth available pet name", func(t *T) {
		expected := t.Config().Petstore.FourthAvailableName
		if expected == "" {
			t.Skip("no expected name configured")
		}
		verdict, err := t.Petstore().VerifyNthPetName(t.Context(), servicedef.PetStatusAvailable, 3, expected)
		require.NoError(t, err)
		assert.True(t, verdict.Success, verdict.Reason)
	})

	t.Run("sold pets all have sold status", func(t *T) {
		pets, verdict, err := t.Petstore().ValidatePetsStatus(t.Context(), servicedef.PetStatusSold)
		require.NoError(t, err)
		t.Debug("found %d sold pets", len(pets))
		assert.True(t, verdict.Success, verdict.Reason)
	})
}
