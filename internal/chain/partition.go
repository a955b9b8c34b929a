package chain

// Partition splits a snapshot into live and dead subsets. The split is
// stable: every record lands in exactly one subset and relative order is
// preserved from the input.
func Partition(records []Annotated) (live, dead []Annotated) {
	live = make([]Annotated, 0, len(records))
	dead = make([]Annotated, 0)
	for _, r := range records {
		if r.IsDead {
			dead = append(dead, r)
		} else {
			live = append(live, r)
		}
	}
	return live, dead
}
