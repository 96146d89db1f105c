package petstore

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/apicheck/api-contract-tests/checker"
	"github.com/apicheck/api-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CheckNthPetName verifies that pets[index] exists and has the expected name. The Verdict's
// Payload is the pet that was examined.
func CheckNthPetName(pets []servicedef.Pet, index int, expectedName string) checker.Verdict {
	if index < 0 || index >= len(pets) {
		return checker.Verdict{
			Reason:  fmt.Sprintf("only %d pets available, need at least %d", len(pets), index+1),
			Payload: ldvalue.Null(),
		}
	}
	pet := pets[index]
	v := checker.Verdict{
		Success: pet.Name == expectedName,
		Payload: petPayload(pet),
	}
	if v.Success {
		v.Reason = fmt.Sprintf("pet %d is named %q", index+1, expectedName)
	} else {
		v.Reason = fmt.Sprintf("expected name %q, but got %q", expectedName, pet.Name)
	}
	return v
}

// CheckPetsStatus verifies that every pet has the given status. On failure the Reason lists the
// IDs of the pets that do not.
func CheckPetsStatus(pets []servicedef.Pet, status string) checker.Verdict {
	var wrong []string
	for _, p := range pets {
		if p.Status != status {
			wrong = append(wrong, strconv.FormatInt(p.ID, 10))
		}
	}
	if len(wrong) > 0 {
		return checker.Verdict{
			Reason:  fmt.Sprintf("pet IDs %s do not have the status %s", strings.Join(wrong, ", "), status),
			Payload: ldvalue.Null(),
		}
	}
	return checker.Verdict{
		Success: true,
		Reason:  fmt.Sprintf("all %d pets have the status %s", len(pets), status),
		Payload: ldvalue.Null(),
	}
}

func petPayload(pet servicedef.Pet) ldvalue.Value {
	data, err := json.Marshal(pet)
	if err != nil {
		return ldvalue.Null()
	}
	return ldvalue.Parse(data)
}
