// Package matops provides small axis-wise and element-wise helpers over
// gonum's mat types, following the axis conventions of NumPy-style arrays.
//
// The matops package provides:
//
//   - Axis reductions (ArgminAxis, ArgmaxAxis, MinAxis, MaxAxis) that
//     collapse one dimension of a matrix and report a winner per lane.
//   - Running sums along either axis (CumsumAxis).
//   - Element-wise Minimum and Maximum of two equally shaped matrices.
//   - Clamp, ClampMin and ClampMax copies of matrices and vectors.
//   - Outer products of two vectors (Outer).
//
// All helpers allocate fresh results and never mutate their inputs. Ties in
// ArgminAxis and ArgmaxAxis resolve to the lowest index. Every routine runs
// in O(r*c) time over an r by c input.
//
// See the gtr and alphabet packages for the main consumers.
package matops
