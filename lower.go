package wasmbe

// labelFrame is one entry of the enclosing-block stack used to resolve
// Break/BreakIf targets to a structured branch depth. Block introduces an
// unnamed frame: it still counts towards depth, but can never itself be a
// branch target (per this profile, Break/BreakIf only ever name a Loop's
// label).
type labelFrame struct {
	name    string
	isLabel bool
}

// lowerCtx carries the state that is valid only while lowering the body of
// a single function: the local scope and the enclosing-block stack. The
// resolver and sub-module offset table are shared read-only state threaded
// in from the encoder.
type lowerCtx struct {
	res    *resolver
	locals *localScope
	labels []labelFrame
	subMod map[string]subModuleInfo
}

func (c *lowerCtx) pushLabel(name string, isLabel bool) {
	c.labels = append(c.labels, labelFrame{name: name, isLabel: isLabel})
}

func (c *lowerCtx) popLabel() {
	c.labels = c.labels[:len(c.labels)-1]
}

// depthOf computes the branch depth for a named label: the innermost
// matching frame is depth 0, counting outward.
func (c *lowerCtx) depthOf(name string) uint32 {
	for i := len(c.labels) - 1; i >= 0; i-- {
		if c.labels[i].isLabel && c.labels[i].name == name {
			return uint32(len(c.labels) - 1 - i)
		}
	}
	failf(ErrLabelNotFound, name, "no enclosing loop with this label")
	return 0
}

// lowerSeq lowers an ordered sequence of statements, concatenating their
// byte output in order.
func (c *lowerCtx) lowerSeq(exprs []Expr) []byte {
	var out []byte
	for _, e := range exprs {
		out = append(out, c.lower(e)...)
	}
	return out
}

func (c *lowerCtx) lower(e Expr) []byte {
	switch n := e.(type) {
	case Literal:
		out := []byte{opI64Const}
		return append(out, lebEncodeSigned(n.Value)...)

	case LocalVariable:
		out := []byte{opLocalGet}
		return append(out, lebEncode(uint64(c.locals.get(n.Name)))...)

	case GlobalVariable:
		out := []byte{opGlobalGet}
		return append(out, lebEncode(uint64(c.res.globalIndex(n.Name)))...)

	case LocalAssignment:
		out := c.lower(n.Value)
		out = append(out, opLocalSet)
		return append(out, lebEncode(uint64(c.locals.get(n.Name)))...)

	case GlobalAssignment:
		out := c.lower(n.Value)
		out = append(out, opGlobalSet)
		return append(out, lebEncode(uint64(c.res.globalIndex(n.Name)))...)

	case FunctionCall:
		var out []byte
		for _, a := range n.Args {
			out = append(out, c.lower(a)...)
		}
		out = append(out, opCall)
		return append(out, lebEncode(uint64(c.res.functionIndex(n.Name)))...)

	case BuiltinCall:
		return c.lowerBuiltin(n)

	case If:
		out := c.lower(n.Cond)
		out = append(out, opIf, blockTypeVoid)
		c.pushLabel("", false)
		out = append(out, c.lowerSeq(n.Then)...)
		if n.Else != nil {
			out = append(out, opElse)
			out = append(out, c.lowerSeq(n.Else)...)
		}
		c.popLabel()
		return append(out, opEnd)

	case Loop:
		out := []byte{opLoop, blockTypeVoid}
		c.pushLabel(n.Label, true)
		out = append(out, c.lowerSeq(n.Body)...)
		c.popLabel()
		return append(out, opEnd)

	case Block:
		out := []byte{opBlock, blockTypeVoid}
		c.pushLabel("", false)
		out = append(out, c.lowerSeq(n.Body)...)
		c.popLabel()
		return append(out, opEnd)

	case Break:
		out := []byte{opBr}
		return append(out, lebEncode(uint64(c.depthOf(n.Label)))...)

	case BreakIf:
		out := c.lower(n.Cond)
		out = append(out, opBrIf)
		return append(out, lebEncode(uint64(c.depthOf(n.Label)))...)

	case StringLiteral:
		failf(ErrUnsupportedExpr, n.Value, "string literal outside dataoffset/datasize")
		return nil

	default:
		failf(ErrUnsupportedExpr, "", "unhandled expression variant")
		return nil
	}
}

func (c *lowerCtx) lowerBuiltin(n BuiltinCall) []byte {
	switch n.Name {
	case "dataoffset":
		name := subModuleArgName(n)
		info, ok := c.subMod[name]
		if !ok {
			failf(ErrMissingSubModule, name, "dataoffset refers to an unembedded sub-module")
		}
		out := []byte{opI64Const}
		return append(out, lebEncodeSigned(int64(info.offset))...)

	case "datasize":
		name := subModuleArgName(n)
		info, ok := c.subMod[name]
		if !ok {
			failf(ErrMissingSubModule, name, "datasize refers to an unembedded sub-module")
		}
		out := []byte{opI64Const}
		return append(out, lebEncodeSigned(int64(info.size))...)

	case "unreachable":
		var out []byte
		for _, a := range n.Args {
			out = append(out, c.lower(a)...)
		}
		return append(out, opUnreachable)

	default:
		opcode, ok := builtinOpcodes[n.Name]
		if !ok {
			failf(ErrUnknownBuiltin, n.Name, "not a recognised Wasm instruction")
		}
		var out []byte
		for _, a := range n.Args {
			out = append(out, c.lower(a)...)
		}
		out = append(out, opcode)
		if isLoadStore(n.Name) {
			out = append(out, memarg...)
		}
		return out
	}
}

// subModuleArgName extracts the sub-module name from a dataoffset/datasize
// call: arg[0] must be a StringLiteral.
func subModuleArgName(n BuiltinCall) string {
	if len(n.Args) == 0 {
		failf(ErrUnsupportedExpr, n.Name, "missing sub-module name argument")
	}
	s, ok := n.Args[0].(StringLiteral)
	if !ok {
		failf(ErrUnsupportedExpr, n.Name, "sub-module name argument must be a string literal")
	}
	return s.Value
}
