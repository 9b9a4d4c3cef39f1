package wasmbe

import "go.uber.org/zap"

// Encode serializes m into a standard Wasm binary module: magic, version,
// then the fixed section order (Type, Import, Function, Memory, Global,
// Export, one Custom section per sub-module, Code). It panics with an
// *EncodeError on any fatal condition listed in the package's error
// taxonomy; it never returns a partial module.
//
// Encode is deterministic: encoding the same Module value twice yields
// byte-identical output.
func Encode(m *Module) []byte {
	res := newResolver(m)
	tb := newTypeBuilder()
	for _, imp := range m.Imports {
		tb.register(imp.Name, signatureOf(imp.Params, imp.Result))
	}
	for _, fn := range m.Funcs {
		tb.register(fn.Name, definitionSignature(fn))
	}
	sigs := tb.build()

	out := append([]byte{}, wasmMagic...)
	out = append(out, wasmVersion...)
	out = append(out, buildTypeSection(sigs)...)
	out = append(out, buildImportSection(m, tb)...)
	out = append(out, buildFunctionSection(m, tb)...)
	out = append(out, buildMemorySection()...)
	out = append(out, buildGlobalSection(m)...)
	out = append(out, buildExportSection(res)...)

	var subMod map[string]subModuleInfo
	out, subMod = embedSubModules(out, m)

	out = append(out, buildCodeSection(m, res, tb, subMod)...)

	Logger().Info("encoded module",
		zap.Int("bytes", len(out)),
		zap.Int("functions", len(res.functions)),
		zap.Int("submodules", m.SubModules.Len()),
	)
	return out
}
