package main

import "github.com/BTETON/solidity"

// demoModule builds the fixed sample module described by this binary's
// usage text: a main function with a local, a loop guarded by br_if, a
// global, and one embedded sub-module referenced through dataoffset and
// datasize.
func demoModule() *wasmbe.Module {
	sub := &wasmbe.Module{
		Funcs: []wasmbe.FunctionDefinition{
			{Name: "main", Result: "i64", Body: []wasmbe.Expr{wasmbe.Literal{Value: 1}}},
		},
		SubModules: wasmbe.NewSubModules(),
	}

	subModules := wasmbe.NewSubModules()
	subModules.Add("payload", sub)

	main := wasmbe.FunctionDefinition{
		Name:   "main",
		Result: "i64",
		Locals: []wasmbe.Local{{Name: "i"}},
		Body: []wasmbe.Expr{
			wasmbe.LocalAssignment{Name: "i", Value: wasmbe.Literal{Value: 0}},
			wasmbe.Loop{
				Label: "countUp",
				Body: []wasmbe.Expr{
					wasmbe.LocalAssignment{
						Name: "i",
						Value: wasmbe.BuiltinCall{
							Name: "i64.add",
							Args: []wasmbe.Expr{wasmbe.LocalVariable{Name: "i"}, wasmbe.Literal{Value: 1}},
						},
					},
					wasmbe.BreakIf{
						Label: "countUp",
						Cond: wasmbe.BuiltinCall{
							Name: "i64.lt_s",
							Args: []wasmbe.Expr{wasmbe.LocalVariable{Name: "i"}, wasmbe.Literal{Value: 10}},
						},
					},
				},
			},
			wasmbe.GlobalAssignment{Name: "total", Value: wasmbe.LocalVariable{Name: "i"}},
			wasmbe.BuiltinCall{Name: "dataoffset", Args: []wasmbe.Expr{wasmbe.StringLiteral{Value: "payload"}}},
			wasmbe.BuiltinCall{Name: "datasize", Args: []wasmbe.Expr{wasmbe.StringLiteral{Value: "payload"}}},
			wasmbe.BuiltinCall{
				Name: "i64.add",
				Args: []wasmbe.Expr{wasmbe.GlobalVariable{Name: "total"}, wasmbe.Literal{Value: 0}},
			},
		},
	}

	return &wasmbe.Module{
		Globals:    []wasmbe.Global{{Name: "total"}},
		Funcs:      []wasmbe.FunctionDefinition{main},
		SubModules: subModules,
	}
}
