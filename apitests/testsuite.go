package apitests

import (
	"github.com/apicheck/api-contract-tests/framework"
)

func RunTestSuite(
	env *Environment,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env)

		t.Run("species", DoSpeciesTests)
		t.Run("petstore", DoPetstoreTests)
	})
}
