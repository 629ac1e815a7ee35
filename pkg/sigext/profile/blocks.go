package profile

import "github.com/hashicorp/hcl/v2"

type BlockHandler interface {
	Preprocess(block *hcl.Block) hcl.Diagnostics
	FinishPreprocessing(p *Profile) hcl.Diagnostics
	Process(p *Profile, block *hcl.Block) hcl.Diagnostics
}

type BlockHandlerBase struct {
}

func (b *BlockHandlerBase) Preprocess(block *hcl.Block) hcl.Diagnostics {
	return nil
}

func (b *BlockHandlerBase) FinishPreprocessing(p *Profile) hcl.Diagnostics {
	return nil
}

func (b *BlockHandlerBase) Process(p *Profile, block *hcl.Block) hcl.Diagnostics {
	return nil
}

// Constants are evaluated before aliases, and asserts see both.
var blockHandlerOrder = []string{"const", "alias", "assert"}

func GetBlockHandlers() map[string]BlockHandler {
	return map[string]BlockHandler{
		"alias":  NewAliasBlockHandler(),
		"assert": NewAssertBlockHandler(),
		"const":  NewConstBlockHandler(),
	}
}
