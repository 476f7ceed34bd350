package car

// simdAvailable reports whether the batched Sobel fast path in energy.go
// may be used on this CPU. It defaults to false and is set by
// cpu_amd64.go / cpu_arm64.go's init(); platforms with neither build tag
// (cpu_generic.go) leave it false and the energy kernel runs the scalar
// path. pathsum.go has no batched path and does not read this flag.
//
// This mirrors the dispatch shape of deepteams-webp's internal/dsp package
// (cpuid-gated function-pointer overrides) and go-highway's per-arch
// dispatch files, adapted to a single boolean since the batched
// reformulation here is hand-written Go rather than assembly — it's an
// algorithmic fast path, not a specific instruction set, so there is no
// assembly to dispatch to.
var simdAvailable bool
