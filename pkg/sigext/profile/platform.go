package profile

import (
	"runtime"

	"github.com/tsarna/sigext/pkg/sigext"
	"github.com/tsarna/sigext/pkg/sigext/platform"
	"github.com/zclconf/go-cty/cty"
)

// GetPlatformObject describes the build target: its GOOS, whether it has a
// real-time window and one boolean per platform category.
//
//	platform.goos         # "linux"
//	platform.realtime     # true
//	platform.linux_like   # true
//	platform.categories   # ["linux_like", "linux_kernel"]
func GetPlatformObject() cty.Value {
	attrs := map[string]cty.Value{
		"goos":     cty.StringVal(runtime.GOOS),
		"realtime": cty.BoolVal(sigext.HasRealtime),
	}

	names := platform.Current.Names()
	categories := make([]cty.Value, len(names))
	for i, name := range names {
		categories[i] = cty.StringVal(name)
	}
	if len(categories) == 0 {
		attrs["categories"] = cty.ListValEmpty(cty.String)
	} else {
		attrs["categories"] = cty.ListVal(categories)
	}

	for _, c := range platform.All() {
		attrs[c.String()] = cty.BoolVal(platform.Current.Has(c))
	}

	return cty.ObjectVal(attrs)
}
