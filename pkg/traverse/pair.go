package traverse

// Pair is one entry in the BVTT (bounding-volume-test tree) frontier: a
// node's implicit index paired with the query index it's being tested
// against. At the final leaf step, Node instead holds the original
// primitive index (the result of the order[] lookup), since that's the
// value callers actually want back.
type Pair struct {
	Node  int
	Query int
}
