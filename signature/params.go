package signature

import (
	"fmt"
	"go/ast"
)

// ParamNames returns the names of the receiver (if any) followed by every parameter of decl, in
// declaration order. Grouped parameters such as `b, c string` yield one name each.
//
// A blank (`_`) or unnamed receiver or parameter cannot be referenced by name and fails with
// ErrUnsupportedParam.
func ParamNames(decl *ast.FuncDecl) ([]string, error) {
	names := make([]string, 0, decl.Type.Params.NumFields()+decl.Recv.NumFields())

	if decl.Recv != nil {
		recv, err := fieldNames(decl.Recv, "receiver")
		if err != nil {
			return nil, err
		}
		names = append(names, recv...)
	}

	params, err := fieldNames(decl.Type.Params, "parameter")
	if err != nil {
		return nil, err
	}

	return append(names, params...), nil
}

func fieldNames(list *ast.FieldList, what string) ([]string, error) {
	if list == nil {
		return nil, nil
	}

	names := make([]string, 0, list.NumFields())
	for i, field := range list.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%w: %s #%d has no name", ErrUnsupportedParam, what, i+1)
		}
		for _, name := range field.Names {
			if name.Name == "_" {
				return nil, fmt.Errorf("%w: %s %q cannot be logged", ErrUnsupportedParam, what, name.Name)
			}
			names = append(names, name.Name)
		}
	}

	return names, nil
}
