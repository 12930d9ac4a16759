package activity

import (
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

// unplaced flags an item not yet assigned to a category.
const unplaced = -1

// DragDrop asks the learner to assign every item to one of the declared
// categories. Correctness is checked only on submission, and submission is
// rejected until every item is placed. Reset clears all placements without
// penalty.
type DragDrop struct {
	title      string
	items      []catalog.DragItem
	categories []string
	placements []int // index into categories, or unplaced
	submitted  bool
	correct    int
	started    time.Time
}

var _ Plugin = (*DragDrop)(nil)

// NewDragDrop builds the plugin from a definition. A definition with no
// items or no categories is trivially complete with zero score.
func NewDragDrop(def catalog.ActivityDef, now time.Time) *DragDrop {
	d := &DragDrop{
		title:      def.Title,
		items:      def.DragItems,
		categories: def.Categories,
		placements: make([]int, len(def.DragItems)),
		started:    now,
	}
	for i := range d.placements {
		d.placements[i] = unplaced
	}
	if len(d.items) == 0 || len(d.categories) == 0 {
		d.submitted = true
	}
	return d
}

func (d *DragDrop) Kind() catalog.ActivityKind { return catalog.ActivityDragDrop }

func (d *DragDrop) Title() string { return d.title }

// Items returns the items to categorize.
func (d *DragDrop) Items() []catalog.DragItem { return d.items }

// Categories returns the category labels.
func (d *DragDrop) Categories() []string { return d.categories }

// PlacementAt returns the category index chosen for item i, or -1.
func (d *DragDrop) PlacementAt(i int) int {
	if i < 0 || i >= len(d.placements) {
		return unplaced
	}
	return d.placements[i]
}

// Place assigns item i to category c. Re-placing an item before submission
// is allowed.
func (d *DragDrop) Place(i, c int) bool {
	if d.submitted {
		return false
	}
	if i < 0 || i >= len(d.items) || c < 0 || c >= len(d.categories) {
		return false
	}
	d.placements[i] = c
	return true
}

// Reset clears every placement without penalty.
func (d *DragDrop) Reset() {
	if d.submitted {
		return
	}
	for i := range d.placements {
		d.placements[i] = unplaced
	}
}

// AllPlaced reports whether every item has a category.
func (d *DragDrop) AllPlaced() bool {
	for _, p := range d.placements {
		if p == unplaced {
			return false
		}
	}
	return true
}

// Submit checks placements against the correct mapping. Partial submission
// is disallowed: it returns false until every item is placed.
func (d *DragDrop) Submit() bool {
	if d.submitted {
		return false
	}
	if !d.AllPlaced() {
		return false
	}
	for i, item := range d.items {
		if d.categories[d.placements[i]] == item.Category {
			d.correct++
		}
	}
	d.submitted = true
	return true
}

func (d *DragDrop) Progress() (int, int) {
	placed := 0
	for _, p := range d.placements {
		if p != unplaced {
			placed++
		}
	}
	return placed, len(d.items)
}

func (d *DragDrop) Completed() bool { return d.submitted }

func (d *DragDrop) Outcome(now time.Time) Outcome {
	return Outcome{
		Kind:         catalog.ActivityDragDrop,
		Score:        d.correct * unitScore,
		SecondsSpent: elapsedSecs(d.started, now),
		Units:        len(d.items),
		CorrectUnits: d.correct,
	}
}
