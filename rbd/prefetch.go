package rbd

// prefetchRead hints the cache for the column at columnOffset across
// numRows rows of a row-major matrix of the given rowStride. Per spec
// §4.3, prefetch is a performance knob, not a correctness requirement;
// Go has no portable prefetch intrinsic outside the experimental SIMD
// package, so — exactly as the teacher library does outside its own
// goexperiment-gated files — this is a documented no-op.
func prefetchRead(rowStride, numRows, columnOffset int) {
	_, _, _ = rowStride, numRows, columnOffset
}

// prefetchWrite hints the cache for one output slot at offset. A no-op for
// the same reason as prefetchRead.
func prefetchWrite(offset int) {
	_ = offset
}
