package wasmbe

import "strings"

// Wasm binary format constants: magic, version, section ids, value types,
// and the fixed structured-control / numeric-instruction opcodes this
// profile emits. Reproduced exactly from the WebAssembly binary format
// specification; never mutated at runtime.

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d}
var wasmVersion = []byte{0x01, 0x00, 0x00, 0x00}

type sectionID byte

const (
	secCustom   sectionID = 0x00
	secType     sectionID = 0x01
	secImport   sectionID = 0x02
	secFunction sectionID = 0x03
	secTable    sectionID = 0x04
	secMemory   sectionID = 0x05
	secGlobal   sectionID = 0x06
	secExport   sectionID = 0x07
	secStart    sectionID = 0x08
	secElement  sectionID = 0x09
	secCode     sectionID = 0x0a
	secData     sectionID = 0x0b
)

const (
	funcTypeForm byte = 0x60

	valTypeI32 byte = 0x7f
	valTypeI64 byte = 0x7e

	limitMinOnly byte = 0x00
	limitMinMax  byte = 0x01

	externKindFunc   byte = 0x00
	externKindTable  byte = 0x01
	externKindMemory byte = 0x02
	externKindGlobal byte = 0x03

	globalMutable byte = 0x01

	blockTypeVoid byte = 0x40
)

const (
	opUnreachable byte = 0x00
	opBlock       byte = 0x02
	opLoop        byte = 0x03
	opIf          byte = 0x04
	opElse        byte = 0x05
	opEnd         byte = 0x0b
	opBr          byte = 0x0c
	opBrIf        byte = 0x0d
	opCall        byte = 0x10
	opLocalGet    byte = 0x20
	opLocalSet    byte = 0x21
	opGlobalGet   byte = 0x23
	opGlobalSet   byte = 0x24
	opI64Const    byte = 0x42
)

// memarg is always {align: 3, offset: 0} in this profile (natural alignment
// for an 8-byte i64 access; this backend never computes a tighter offset).
var memarg = []byte{0x03, 0x00}

// builtinOpcodes maps a builtin name to its single opcode byte, covering the
// numeric instruction subset this profile emits: loads/stores, memory.size
// /memory.grow, comparisons, bit-counting, arithmetic, bitwise ops, and the
// i32/i64 width conversions.
var builtinOpcodes = map[string]byte{
	"i32.load":    0x28,
	"i64.load":    0x29,
	"i32.load8_s": 0x2c,
	"i32.load8_u": 0x2d,
	"i32.load16_s": 0x2e,
	"i32.load16_u": 0x2f,
	"i64.load8_s":  0x30,
	"i64.load8_u":  0x31,
	"i64.load16_s": 0x32,
	"i64.load16_u": 0x33,
	"i64.load32_s": 0x34,
	"i64.load32_u": 0x35,
	"i32.store":    0x36,
	"i64.store":    0x37,
	"i32.store8":   0x3a,
	"i32.store16":  0x3b,
	"i64.store8":   0x3c,
	"i64.store16":  0x3d,
	"i64.store32":  0x3e,

	"memory.size": 0x3f,
	"memory.grow": 0x40,

	"i32.eqz": 0x45,
	"i32.eq":  0x46,
	"i32.ne":  0x47,
	"i32.lt_s": 0x48,
	"i32.lt_u": 0x49,
	"i32.gt_s": 0x4a,
	"i32.gt_u": 0x4b,
	"i32.le_s": 0x4c,
	"i32.le_u": 0x4d,
	"i32.ge_s": 0x4e,
	"i32.ge_u": 0x4f,

	"i64.eqz": 0x50,
	"i64.eq":  0x51,
	"i64.ne":  0x52,
	"i64.lt_s": 0x53,
	"i64.lt_u": 0x54,
	"i64.gt_s": 0x55,
	"i64.gt_u": 0x56,
	"i64.le_s": 0x57,
	"i64.le_u": 0x58,
	"i64.ge_s": 0x59,
	"i64.ge_u": 0x5a,

	"i32.clz":    0x67,
	"i32.ctz":    0x68,
	"i32.popcnt": 0x69,
	"i32.add":    0x6a,
	"i32.sub":    0x6b,
	"i32.mul":    0x6c,
	"i32.div_s":  0x6d,
	"i32.div_u":  0x6e,
	"i32.rem_s":  0x6f,
	"i32.rem_u":  0x70,
	"i32.and":    0x71,
	"i32.or":     0x72,
	"i32.xor":    0x73,
	"i32.shl":    0x74,
	"i32.shr_s":  0x75,
	"i32.shr_u":  0x76,
	"i32.rotl":   0x77,
	"i32.rotr":   0x78,

	"i64.clz":    0x79,
	"i64.ctz":    0x7a,
	"i64.popcnt": 0x7b,
	"i64.add":    0x7c,
	"i64.sub":    0x7d,
	"i64.mul":    0x7e,
	"i64.div_s":  0x7f,
	"i64.div_u":  0x80,
	"i64.rem_s":  0x81,
	"i64.rem_u":  0x82,
	"i64.and":    0x83,
	"i64.or":     0x84,
	"i64.xor":    0x85,
	"i64.shl":    0x86,
	"i64.shr_s":  0x87,
	"i64.shr_u":  0x88,
	"i64.rotl":   0x89,
	"i64.rotr":   0x8a,

	"i32.wrap_i64":    0xa7,
	"i64.extend_i32_s": 0xac,
	"i64.extend_i32_u": 0xad,
}

// isLoadStore reports whether name is followed by a memarg: every load and
// store instruction in builtinOpcodes contains ".load" or ".store".
func isLoadStore(name string) bool {
	return strings.Contains(name, ".load") || strings.Contains(name, ".store")
}

// valueTypeByte maps a declared type name to its Wasm value-type byte.
// Unsupported type names are a fatal encoder error.
func valueTypeByte(name string) byte {
	switch name {
	case "i32":
		return valTypeI32
	case "i64":
		return valTypeI64
	default:
		failf(ErrUnsupportedType, name, "expected i32 or i64")
		return 0
	}
}
