package profile

import (
	"github.com/hashicorp/hcl/v2"
)

var blockSchema = []hcl.BlockHeaderSchema{
	{
		Type:       "alias",
		LabelNames: []string{"name"},
	},
	{
		Type:       "assert",
		LabelNames: []string{"name"},
	},
	{
		Type:       "const",
		LabelNames: []string{},
	},
}

var profileSchema = &hcl.BodySchema{
	Blocks: blockSchema,
}
