// Package raw provides the unsafe slice primitives behind remap.
//
// # Recasting
//
// Recast rebuilds a slice header over an existing backing array at a new
// element type. It performs no validation: callers are responsible for the
// stride arithmetic and for keeping the allocation's GC pointer layout
// consistent (see the layout helpers in this package).
package raw
