// Package native moves array contents across host-addressable memory
// regions.
//
// Arrays keep their storage private; interop with native call sites
// happens through deep copies against the j2objc.Memory interface:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ array.Of[E]  ←→  [Store / Load]  ←→  Memory region       │
//	└──────────────────────────────────────────────────────────┘
//
// # Element Layout
//
// Each element occupies the fixed slot width of its kind, little-endian,
// with no padding between elements:
//
//	Kind      Slot
//	────────────────
//	boolean   1 byte (0 or 1)
//	byte      1 byte
//	char      2 bytes
//	short     2 bytes
//	int       4 bytes
//	long      8 bytes
//	float     4 bytes (IEEE-754 bits)
//	double    8 bytes (IEEE-754 bits)
//
// This matches what a native consumer of the exported buffer expects, so
// a stored array is directly addressable from foreign code with no
// per-element transformation.
//
// # Regions
//
//	Heap          - in-process region over a plain byte slice
//	WazeroMemory  - adapter over a wazero instance's linear memory
//
// Both validate every access against the region size and fail with
// structured out-of-range errors carrying the offset and region size.
//
// # Copy Semantics
//
// Store and Load are both deep copies. A loaded array owns fresh storage:
// later writes to the region are invisible to it, and later Set calls on
// the array are invisible to the region. Aliasing a region from an array
// is not possible through this package.
//
// # Thread Safety
//
// Heap carries no internal synchronization. Concurrent use of a wazero
// memory follows wazero's own rules for the underlying instance.
package native
