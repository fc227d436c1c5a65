package gridpath

// Relaxation records one improvement of a node's best known cost made while
// expanding From.
type Relaxation struct {
	From     Coord `json:"from"`
	To       Coord `json:"to"`
	Cost     int   `json:"cost"`
	Priority int   `json:"priority"`
}
