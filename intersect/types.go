package intersect

// TPair is one intersection between two curves A and B, found by Curves:
// A(TA) and B(TB) are within the accuracy bound passed to Curves.
type TPair struct {
	TA, TB float64
}

// LineHit is one intersection between a curve C and a line/ray L, found
// by Line: C(TC) lies on L at parameter TL.
type LineHit struct {
	TC, TL float64
}

// OverlapRegion describes the sub-ranges on two curves that trace an
// identical image, found by Overlap.
type OverlapRegion struct {
	A [2]float64
	B [2]float64
}
