package wasmbe

import "sort"

// signature is the (parameter bytes, result bytes) key used to deduplicate
// function types.
type signature struct {
	params string // value-type bytes, one per parameter, as a string key
	result string // "" or one value-type byte
}

// typeBuilder deduplicates function signatures and assigns each a type
// index, in a deterministic order so that equal modules yield equal type
// sections regardless of map iteration order.
type typeBuilder struct {
	order     []signature      // insertion order is irrelevant; index is reassigned by build()
	index     map[signature]uint32
	funcTypes map[string]uint32 // function name -> type index
}

func newTypeBuilder() *typeBuilder {
	return &typeBuilder{
		index:     map[signature]uint32{},
		funcTypes: map[string]uint32{},
	}
}

func signatureOf(paramTypes []string, resultType string) signature {
	params := make([]byte, len(paramTypes))
	for i, t := range paramTypes {
		params[i] = valueTypeByte(t)
	}
	var result string
	if resultType != "" {
		result = string(valueTypeByte(resultType))
	}
	return signature{params: string(params), result: result}
}

// definitionSignature returns the implicit i64-everywhere signature of a
// function definition: every parameter and, when present, the result is i64.
func definitionSignature(f FunctionDefinition) signature {
	params := make([]byte, len(f.Params))
	for i := range f.Params {
		params[i] = valTypeI64
	}
	var result string
	if f.HasResult() {
		result = string(valTypeI64)
	}
	return signature{params: string(params), result: result}
}

// register records funcName's signature, assigning it a type index later in
// build(). It may be called in any order; build() fixes the final indices.
func (b *typeBuilder) register(funcName string, sig signature) {
	if _, ok := b.index[sig]; !ok {
		b.index[sig] = uint32(len(b.order))
		b.order = append(b.order, sig)
	}
	b.funcTypes[funcName] = b.index[sig]
}

// build finalises the type section's entry order: lexicographic on the
// signature key, total and deterministic. Function-to-type-index mappings
// are rewritten to match the finalised order.
func (b *typeBuilder) build() []signature {
	sorted := append([]signature(nil), b.order...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].params != sorted[j].params {
			return sorted[i].params < sorted[j].params
		}
		return sorted[i].result < sorted[j].result
	})
	remap := make(map[signature]uint32, len(sorted))
	for i, sig := range sorted {
		remap[sig] = uint32(i)
	}
	for name, oldIdx := range b.funcTypes {
		b.funcTypes[name] = remap[b.order[oldIdx]]
	}
	return sorted
}

func (b *typeBuilder) typeIndex(funcName string) uint32 {
	idx, ok := b.funcTypes[funcName]
	if !ok {
		failf(ErrUnresolvedName, funcName, "no registered signature")
	}
	return idx
}

// encodeFunctionType emits one Type-section entry: form byte, params, results.
func encodeFunctionType(sig signature) []byte {
	out := []byte{funcTypeForm}
	out = append(out, lebEncode(uint64(len(sig.params)))...)
	out = append(out, []byte(sig.params)...)
	if sig.result == "" {
		out = append(out, lebEncode(0)...)
	} else {
		out = append(out, lebEncode(1)...)
		out = append(out, []byte(sig.result)...)
	}
	return out
}
