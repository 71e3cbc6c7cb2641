package hcl

import (
	"os"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// envObject exposes the process environment as the `env` object, so study
// files can write `bucket = env.RESULTS_BUCKET`.
func envObject(environ []string) cty.Value {
	envMap := make(map[string]cty.Value)
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && pair[0] != "" {
			envMap[pair[0]] = cty.StringVal(pair[1])
		}
	}
	if len(envMap) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(envMap)
}

func processEnv() cty.Value {
	return envObject(os.Environ())
}
