package memarena

// trace turns on a one-line-per-call debug trace to os.Stderr for Init,
// Malloc, Calloc, Realloc and Free. It is a compile-time debugging knob,
// not a runtime configuration surface — flip it and rebuild, exactly as
// upstream does for this kind of allocation-hot-path code.
const trace = false
