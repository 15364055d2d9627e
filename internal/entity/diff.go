package entity

// Diff is one live-view event: what entered, changed or left the view since the previous event.
type Diff[T any] struct {
	Added    []T      `json:"added"`
	Modified []T      `json:"modified"`
	Removed  []string `json:"removed"`
}

func (d *Diff[T]) Empty() bool {
	return len(d.Added) == 0 && len(d.Modified) == 0 && len(d.Removed) == 0
}
