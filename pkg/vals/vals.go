// Package vals contains basic facilities for manipulating values.
//
// Values are stored as "any" and operated on with functions that dispatch on
// the dynamic type: builtin Go types for scalars (nil, bool, string, int,
// float64), and the concrete container types declared in this package (List,
// Array, Seq, Slip, Box, Pair, Map). Extension types hook into the generic
// operations by implementing small single-method interfaces such as Kinder,
// Lener or Reprer.
package vals
