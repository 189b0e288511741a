// Package llrb implement an ordered set of integer keys using a
// self-balancing binary-tree, called, LLRB (Left Leaning Red Black).
//
//   * Each key is unique within the set, inserting an existing key
//     is a no-op.
//   * Deleting a missing key is a no-op.
//   * Insert, Delete and Contains are O(log n).
//   * Operations are not safe for concurrent use, callers shall
//     serialize them.
//
package llrb
