package testdump

import (
	"github.com/alextanhongpin/lambda/internal"
	"github.com/google/go-cmp/cmp"
)

type YAMLOption struct {
	Hooks []Hook[any]
	Body  []cmp.Option
}

// YAML snapshots v as YAML. Struct fields keep their declaration order.
func YAML(rw readerWriter, v any, opt *YAMLOption) error {
	if opt == nil {
		opt = new(YAMLOption)
	}

	s := &snapshot[any]{
		MarshalFunc:   internal.MarshalYAMLPreserveKeysOrder,
		UnmarshalFunc: internal.UnmarshalYAML[any],
		CompareFunc: func(snapshot, received any) error {
			return internal.ANSIDiff(snapshot, received, opt.Body...)
		},
	}

	return Snapshot(rw, v, s, opt.Hooks...)
}
