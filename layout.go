package main

import "sort"

// StructLayout describes the memory layout of an instantiated struct.
type StructLayout struct {
	// Size is the total bytes occupied in linear memory.
	Size int
	// FieldOrder is the sequence of logical field indices in emission
	// order.
	FieldOrder []int
	// Offsets maps logical field index to (byte offset, instantiated
	// field type).
	Offsets map[int]fieldOffset
	// PointerCount is the number of leading entries in FieldOrder
	// whose type allocates memory (a non-U256 struct or a vector).
	PointerCount int
}

type fieldOffset struct {
	Offset int
	Type   Type
}

// fieldDescriptor is the per-field working value the sort in
// getStructLayout operates over.
type fieldDescriptor struct {
	logicalIndex int
	size         int
	ty           Type
}

// getStructLayout computes and memoizes the StructLayout of an
// instantiated struct: instantiate each field, compute its size, sort
// by the field ordering total order, then walk the sorted sequence
// accumulating offsets.
//
// A layout, once computed, is immutable; layoutCache enforces that a
// second request for the same instantiated struct returns a value
// equal to the first without recomputation.
func (c *Context) getStructLayout(s *StructDecl, typeArgs []Type) StructLayout {
	key := StructType(s, typeArgs).StructuralKey()

	c.layoutMu.Lock()
	defer c.layoutMu.Unlock()

	if cached, ok := c.layoutCache[key]; ok {
		return cached
	}

	descriptors := make([]fieldDescriptor, len(s.Fields))
	for i, f := range s.Fields {
		fieldType := f.Type.Instantiate(typeArgs)
		descriptors[i] = fieldDescriptor{
			logicalIndex: i,
			size:         typeSize(fieldType),
			ty:           fieldType,
		}
	}

	// Total order: primary key field size descending; secondary key
	// allocating (pointer-bearing) types before scalar types; remaining
	// ties stable (sort.SliceStable preserves declaration order for
	// equal keys).
	sort.SliceStable(descriptors, func(i, j int) bool {
		a, b := descriptors[i], descriptors[j]
		if a.size != b.size {
			return a.size > b.size
		}
		aAlloc := typeAllocatesMemory(a.ty)
		bAlloc := typeAllocatesMemory(b.ty)
		if aAlloc != bAlloc {
			return aAlloc
		}
		return false
	})

	result := StructLayout{Offsets: map[int]fieldOffset{}}
	for _, d := range descriptors {
		result.FieldOrder = append(result.FieldOrder, d.logicalIndex)
		if typeAllocatesMemory(d.ty) {
			result.PointerCount++
		}
		result.Offsets[d.logicalIndex] = fieldOffset{Offset: result.Size, Type: d.ty}
		result.Size += d.size
	}

	c.layoutCache[key] = result
	return result
}
