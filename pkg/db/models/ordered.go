package models

// Orderable is implemented by every collection row that carries a manual
// display position. Positions are 1-based and expected to stay dense; the
// ordering engine owns that invariant.
type Orderable interface {
	PrimaryID() uint
	Rank() int
	SetRank(position int)
}
