package wasmbe

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
)

// TestEncodeExecutable proves the emitted bytes are not merely
// byte-pattern-correct but a loadable, instantiable, callable Wasm module:
// it runs the output through wazero, the same engine the reference stack
// uses to execute compiled Wasm.
func TestEncodeExecutable(t *testing.T) {
	m := &Module{
		Globals: []Global{{Name: "total"}},
		Funcs: []FunctionDefinition{
			{
				Name:   "main",
				Result: "i64",
				Locals: []Local{{Name: "acc"}},
				Body: []Expr{
					LocalAssignment{Name: "acc", Value: Literal{Value: 40}},
					GlobalAssignment{
						Name: "total",
						Value: BuiltinCall{
							Name: "i64.add",
							Args: []Expr{LocalVariable{Name: "acc"}, Literal{Value: 2}},
						},
					},
					GlobalVariable{Name: "total"},
				},
			},
		},
		SubModules: NewSubModules(),
	}
	bin := Encode(m)

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, bin)
	if err != nil {
		t.Fatalf("CompileModule: %v", err)
	}
	instance, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("InstantiateModule: %v", err)
	}
	defer instance.Close(ctx)

	main := instance.ExportedFunction("main")
	if main == nil {
		t.Fatal("no exported \"main\" function")
	}
	results, err := main.Call(ctx)
	if err != nil {
		t.Fatalf("call main: %v", err)
	}
	if len(results) != 1 || int64(results[0]) != 42 {
		t.Fatalf("main() = %v, want [42]", results)
	}

	if instance.Memory() == nil {
		t.Fatal("expected an exported \"memory\"")
	}
}

// TestEncodeSubModuleExecutable proves a module with an embedded sub-module
// still instantiates, and that datasize resolves to the length of the
// sub-module's encoded bytes carried in the custom section.
func TestEncodeSubModuleExecutable(t *testing.T) {
	sub := &Module{Funcs: []FunctionDefinition{{Name: "main"}}, SubModules: NewSubModules()}

	subMods := NewSubModules()
	subMods.Add("payload", sub)

	m := &Module{
		Funcs: []FunctionDefinition{
			{
				Name:   "main",
				Result: "i64",
				Body: []Expr{
					BuiltinCall{Name: "datasize", Args: []Expr{StringLiteral{Value: "payload"}}},
				},
			},
		},
		SubModules: subMods,
	}
	bin := Encode(m)

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, bin)
	if err != nil {
		t.Fatalf("CompileModule: %v", err)
	}
	instance, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		t.Fatalf("InstantiateModule: %v", err)
	}
	defer instance.Close(ctx)

	results, err := instance.ExportedFunction("main").Call(ctx)
	if err != nil {
		t.Fatalf("call main: %v", err)
	}
	wantSize := int64(len(Encode(sub)))
	if int64(results[0]) != wantSize {
		t.Fatalf("datasize(\"payload\") = %d, want %d", int64(results[0]), wantSize)
	}
}
