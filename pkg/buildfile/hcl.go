// SPDX-License-Identifier: MPL-2.0

package buildfile

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// evalContext exposes the loader's environment to HCL expressions as env.NAME
// (or env["NAME"] for names that are not identifiers).
func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(l.env))
	for k, v := range l.env {
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

func decodeHCL(data []byte, filename string, evalCtx *hcl.EvalContext) (*Descriptor, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}

	var d Descriptor
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &d); diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	return &d, nil
}
