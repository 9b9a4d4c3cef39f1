package wasmbe

// writeSection length-prefixes payload per the binary format's section law:
// one id byte, LEB128 payload length, then payload.
func writeSection(id sectionID, payload []byte) []byte {
	out := []byte{byte(id)}
	out = append(out, lebEncode(uint64(len(payload)))...)
	return append(out, payload...)
}

func encodeVec(count int, items [][]byte) []byte {
	out := lebEncode(uint64(count))
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

func encodeName(s string) []byte {
	out := lebEncode(uint64(len(s)))
	return append(out, []byte(s)...)
}

func buildTypeSection(sigs []signature) []byte {
	items := make([][]byte, len(sigs))
	for i, sig := range sigs {
		items[i] = encodeFunctionType(sig)
	}
	return writeSection(secType, encodeVec(len(items), items))
}

func buildImportSection(m *Module, tb *typeBuilder) []byte {
	items := make([][]byte, len(m.Imports))
	for i, imp := range m.Imports {
		entry := encodeName(imp.ExternModule)
		entry = append(entry, encodeName(imp.ExternName)...)
		entry = append(entry, externKindFunc)
		entry = append(entry, lebEncode(uint64(tb.typeIndex(imp.Name)))...)
		items[i] = entry
	}
	return writeSection(secImport, encodeVec(len(items), items))
}

func buildFunctionSection(m *Module, tb *typeBuilder) []byte {
	items := make([][]byte, len(m.Funcs))
	for i, fn := range m.Funcs {
		items[i] = lebEncode(uint64(tb.typeIndex(fn.Name)))
	}
	return writeSection(secFunction, encodeVec(len(items), items))
}

// buildMemorySection always declares exactly one memory of one initial
// page, per this profile's fixed Memory (0x05) section contents.
func buildMemorySection() []byte {
	entry := []byte{limitMinOnly}
	entry = append(entry, lebEncode(1)...)
	return writeSection(secMemory, encodeVec(1, [][]byte{entry}))
}

func buildGlobalSection(m *Module) []byte {
	items := make([][]byte, len(m.Globals))
	for i := range m.Globals {
		entry := []byte{valTypeI64, globalMutable}
		entry = append(entry, opI64Const)
		entry = append(entry, lebEncodeSigned(0)...)
		entry = append(entry, opEnd)
		items[i] = entry
	}
	return writeSection(secGlobal, encodeVec(len(items), items))
}

func buildExportSection(res *resolver) []byte {
	mainIdx, ok := res.functions["main"]
	if !ok {
		failf(ErrMissingMain, "main", "module has no function named \"main\"")
	}
	memExport := encodeName("memory")
	memExport = append(memExport, externKindMemory)
	memExport = append(memExport, lebEncode(0)...)

	mainExport := encodeName("main")
	mainExport = append(mainExport, externKindFunc)
	mainExport = append(mainExport, lebEncode(uint64(mainIdx))...)

	return writeSection(secExport, encodeVec(2, [][]byte{memExport, mainExport}))
}

// buildCustomSection returns the section's bytes together with the byte
// offset, within those bytes, at which payload begins — needed by the
// caller to translate it into an absolute offset in the final module.
func buildCustomSection(name string, payload []byte) (section []byte, payloadOffset int) {
	inner := encodeName(name)
	payloadOffset = len(inner)
	inner = append(inner, payload...)
	section = writeSection(secCustom, inner)
	// section = [id][leb128 len][inner...]; payload begins after id+len+name.
	headerLen := len(section) - len(inner)
	return section, headerLen + payloadOffset
}

func buildCodeSection(m *Module, res *resolver, tb *typeBuilder, subMod map[string]subModuleInfo) []byte {
	items := make([][]byte, len(m.Funcs))
	for i, fn := range m.Funcs {
		items[i] = encodeFunctionBody(fn, res, subMod)
	}
	return writeSection(secCode, encodeVec(len(items), items))
}

// encodeFunctionBody emits one Code-section entry: locals header, lowered
// body, end, length-prefixed.
func encodeFunctionBody(fn FunctionDefinition, res *resolver, subMod map[string]subModuleInfo) []byte {
	locals := newLocalScope(fn.Params, fn.Locals)
	ctx := &lowerCtx{res: res, locals: locals, subMod: subMod}

	// Always exactly one run-length group: this profile has only i64
	// locals, so a single group of count len(fn.Locals) covers them all
	// (count 0 is a valid, explicit empty group, not an omitted one).
	var body []byte
	body = append(body, lebEncode(1)...)
	body = append(body, lebEncode(uint64(len(fn.Locals)))...)
	body = append(body, valTypeI64)
	body = append(body, ctx.lowerSeq(fn.Body)...)
	body = append(body, opEnd)

	out := lebEncode(uint64(len(body)))
	return append(out, body...)
}
