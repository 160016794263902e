package geometry

// Epsilon is the default tolerance for approximate float32 comparisons.
const Epsilon = 1.19209e-07 // defined by clang for x86
