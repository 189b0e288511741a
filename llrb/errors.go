package llrb

import "errors"

// ErrorConsecutiveReds a red node has a red left child.
var ErrorConsecutiveReds = errors.New("consecutiveReds")

// ErrorRightLeaning a red link leans right.
var ErrorRightLeaning = errors.New("rightLeaning")

// ErrorUnbalancedBlacks left and right sub-trees differ in black height.
var ErrorUnbalancedBlacks = errors.New("unbalancedBlacks")

// ErrorSortOrder a key is out of order with respect to its ancestors.
var ErrorSortOrder = errors.New("sortOrder")

// ErrorRedRoot root node is left red after an operation.
var ErrorRedRoot = errors.New("redRoot")

// ErrorHeight tree is taller than what black balance allows.
var ErrorHeight = errors.New("height")

// ErrorCount book-keeping does not match the tree.
var ErrorCount = errors.New("count")
