package petstore

import (
	"testing"

	"github.com/apicheck/api-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

func TestCheckNthPetName(t *testing.T) {
	pets := []servicedef.Pet{{ID: 1, Name: "doggie"}, {ID: 2, Name: "sample1"}}

	t.Run("match", func(t *testing.T) {
		v := CheckNthPetName(pets, 1, "sample1")
		assert.True(t, v.Success)
	})

	t.Run("payload is the examined pet", func(t *testing.T) {
		v := CheckNthPetName(pets, 1, "sample1")
		assert.Equal(t, 2, v.Payload.GetByKey("id").IntValue())
		assert.Equal(t, "sample1", v.Payload.GetByKey("name").StringValue())
		assert.Equal(t, 0, v.Payload.GetByKey("photoUrls").Count())
	})

	t.Run("mismatch", func(t *testing.T) {
		v := CheckNthPetName(pets, 1, "Puff")
		assert.False(t, v.Success)
		assert.Equal(t, `expected name "Puff", but got "sample1"`, v.Reason)
	})

	t.Run("not enough pets", func(t *testing.T) {
		v := CheckNthPetName(pets, 3, "Puff")
		assert.False(t, v.Success)
		assert.Equal(t, "only 2 pets available, need at least 4", v.Reason)
		assert.True(t, v.Payload.IsNull())
	})
}

func TestCheckPetsStatus(t *testing.T) {
	t.Run("all match", func(t *testing.T) {
		v := CheckPetsStatus([]servicedef.Pet{{ID: 1, Status: "sold"}, {ID: 2, Status: "sold"}}, "sold")
		assert.True(t, v.Success)
		assert.Equal(t, "all 2 pets have the status sold", v.Reason)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.True(t, CheckPetsStatus(nil, "sold").Success)
	})

	t.Run("some differ", func(t *testing.T) {
		v := CheckPetsStatus([]servicedef.Pet{
			{ID: 1, Status: "sold"}, {ID: 7, Status: "available"}, {ID: 9, Status: "pending"},
		}, "sold")
		assert.False(t, v.Success)
		assert.Equal(t, "pet IDs 7, 9 do not have the status sold", v.Reason)
	})
}
