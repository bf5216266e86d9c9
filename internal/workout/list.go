package workout

import (
	"sort"
	"strings"
)

type List []*Workout

func (l List) FilterByDay(day DayOfWeek) List {
	var out List
	for _, w := range l {
		if w.Day == day {
			out = append(out, w)
		}
	}
	return out
}

func (l List) FilterByCategory(c Category) List {
	var out List
	for _, w := range l {
		if w.Category == c {
			out = append(out, w)
		}
	}
	return out
}

// Find returns the workout whose title matches, ignoring case.
func (l List) Find(title string) *Workout {
	title = strings.TrimSpace(title)
	for _, w := range l {
		if strings.EqualFold(w.Title, title) {
			return w
		}
	}
	return nil
}

// SortByDay orders by day of week, then title.
func (l List) SortByDay() {
	sort.SliceStable(l, func(i, j int) bool {
		if l[i].Day != l[j].Day {
			return l[i].Day < l[j].Day
		}
		return l[i].Title < l[j].Title
	})
}
