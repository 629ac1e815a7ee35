//go:build baremetal || (unix && !hurd && !linux && !solaris)

package functions

import (
	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/zclconf/go-cty/cty/function"
)

func realtimeFunctions(*sigext.Mapper) map[string]function.Function {
	return nil
}
