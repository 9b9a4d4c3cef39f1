package wasmbe

import "go.uber.org/zap"

// subModuleInfo records where an embedded sub-module's payload landed in the
// final output: offset is the absolute byte position of the first payload
// byte (not the custom-section header), size is its length.
type subModuleInfo struct {
	offset int
	size   int
}

// embedSubModules recursively encodes each of m's sub-modules (in
// declaration order) as a custom section, appended to out. It returns the
// updated buffer along with the offset/size table consumed later by the
// dataoffset/datasize pseudo-builtins in the Code section.
func embedSubModules(out []byte, m *Module) ([]byte, map[string]subModuleInfo) {
	info := map[string]subModuleInfo{}
	m.SubModules.Each(func(name string, sub *Module) {
		data := Encode(sub)
		section, payloadOffsetInSection := buildCustomSection(name, data)
		absoluteOffset := len(out) + payloadOffsetInSection
		out = append(out, section...)
		info[name] = subModuleInfo{offset: absoluteOffset, size: len(data)}
		Logger().Debug("embedded sub-module",
			zap.String("name", name),
			zap.Int("offset", absoluteOffset),
			zap.Int("size", len(data)),
		)
	})
	return out, info
}
