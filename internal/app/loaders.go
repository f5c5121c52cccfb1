package app

import (
	"github.com/specialistvlad/opendrivego/internal/hcl_adapter"
	"github.com/specialistvlad/opendrivego/internal/registry"
	"github.com/specialistvlad/opendrivego/internal/xodr"
)

// NewDefaultRegistry returns a registry holding every document format that
// is compiled into the opendrivego binary.
func NewDefaultRegistry() *registry.Registry {
	reg := registry.New()
	reg.Register(hcl_adapter.NewLoader(), hcl_adapter.Extension)
	reg.Register(xodr.NewLoader(), xodr.Extensions...)
	return reg
}
