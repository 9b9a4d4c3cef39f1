package wasmbe

// resolver assigns and answers lookups for the function and global index
// spaces. It is built once per Encode invocation and never mutated after
// initialisation.
type resolver struct {
	functions map[string]uint32
	globals   map[string]uint32
	funcOrder []string // name at each function index, for diagnostics/export lookup
}

func newResolver(m *Module) *resolver {
	r := &resolver{
		functions: map[string]uint32{},
		globals:   map[string]uint32{},
	}
	for i, g := range m.Globals {
		if _, dup := r.globals[g.Name]; dup {
			failf(ErrDuplicateSignature, g.Name, "duplicate global name")
		}
		r.globals[g.Name] = uint32(i)
	}
	idx := uint32(0)
	for _, imp := range m.Imports {
		if _, dup := r.functions[imp.Name]; dup {
			failf(ErrDuplicateSignature, imp.Name, "duplicate function name")
		}
		r.functions[imp.Name] = idx
		r.funcOrder = append(r.funcOrder, imp.Name)
		idx++
	}
	for _, fn := range m.Funcs {
		if _, dup := r.functions[fn.Name]; dup {
			failf(ErrDuplicateSignature, fn.Name, "duplicate function name")
		}
		r.functions[fn.Name] = idx
		r.funcOrder = append(r.funcOrder, fn.Name)
		idx++
	}
	return r
}

func (r *resolver) functionIndex(name string) uint32 {
	idx, ok := r.functions[name]
	if !ok {
		failf(ErrUnresolvedName, name, "unresolved function")
	}
	return idx
}

func (r *resolver) globalIndex(name string) uint32 {
	idx, ok := r.globals[name]
	if !ok {
		failf(ErrUnresolvedName, name, "unresolved global")
	}
	return idx
}

// localScope resolves local (parameter/local) names for a single function
// body. It is rebuilt fresh for each function.
type localScope struct {
	index map[string]uint32
}

func newLocalScope(params []string, locals []Local) *localScope {
	s := &localScope{index: map[string]uint32{}}
	n := uint32(0)
	for _, p := range params {
		s.index[p] = n
		n++
	}
	for _, l := range locals {
		s.index[l.Name] = n
		n++
	}
	return s
}

func (s *localScope) get(name string) uint32 {
	idx, ok := s.index[name]
	if !ok {
		failf(ErrUnresolvedName, name, "unresolved local")
	}
	return idx
}
