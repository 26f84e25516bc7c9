package randdist

import "github.com/fsbench-sim/fsbench-sim/vars"

func init() {
	vars.NewDistributionFunc = func() vars.Distribution {
		return New()
	}
}
