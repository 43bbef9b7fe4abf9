package models

import (
	"strings"
	"time"
)

// FilterAll is the per-segment value meaning "no constraint".
const FilterAll = "todos"

// Due buckets a task can be filtered by.
const (
	DueFuture = "futuro"
	DuePast   = "passado"
	DueToday  = "hoje"
)

// DueBucketOption is one entry of the due-bucket select control.
type DueBucketOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var dueBucketOptions = []DueBucketOption{
	{Key: DueFuture, Label: "Future"},
	{Key: DuePast, Label: "Past"},
	{Key: DueToday, Label: "Today"},
}

// DueBucketOptions returns the bucket key/label pairs in display order.
func DueBucketOptions() []DueBucketOption {
	out := make([]DueBucketOption, len(dueBucketOptions))
	copy(out, dueBucketOptions)
	return out
}

// Filter is the parsed form of a "<categoryId>-<dueBucket>-<statusId>" token.
type Filter struct {
	CategoryID string `json:"categoryId"`
	DueBucket  string `json:"dueBucket"`
	StatusID   string `json:"statusId"`
}

// ParseFilter decodes a filter token. Missing segments become FilterAll;
// anything after the second dash belongs to the status segment. Empty and
// unknown values are kept as-is and simply match nothing.
func ParseFilter(token string) Filter {
	f := Filter{CategoryID: FilterAll, DueBucket: FilterAll, StatusID: FilterAll}
	if token == "" {
		return f
	}

	parts := strings.SplitN(token, "-", 3)
	fields := []*string{&f.CategoryID, &f.DueBucket, &f.StatusID}
	for i, p := range parts {
		*fields[i] = p
	}
	return f
}

// BuildFilterToken joins filter segments into a single route value.
func BuildFilterToken(segments ...string) string {
	return strings.Join(segments, "-")
}

// Token re-encodes the filter.
func (f Filter) Token() string {
	return BuildFilterToken(f.CategoryID, f.DueBucket, f.StatusID)
}

func (f Filter) HasCategory() bool  { return f.CategoryID != FilterAll }
func (f Filter) HasDueBucket() bool { return f.DueBucket != FilterAll }
func (f Filter) HasStatus() bool    { return f.StatusID != FilterAll }

func (f Filter) IsPast() bool   { return f.DueBucket == DuePast }
func (f Filter) IsFuture() bool { return f.DueBucket == DueFuture }
func (f Filter) IsToday() bool  { return f.DueBucket == DueToday }

// Matches reports whether t passes every active criterion. today is the
// reference calendar day; only its year, month and day are used.
func (f Filter) Matches(t Task, today time.Time) bool {
	if f.HasCategory() && t.CategoryID != f.CategoryID {
		return false
	}
	if f.HasStatus() && t.StatusID != f.StatusID {
		return false
	}
	if !f.HasDueBucket() {
		return true
	}
	if t.DueDate == nil {
		return false
	}

	due, ref := dateOnly(*t.DueDate), dateOnly(today)
	switch {
	case f.IsToday():
		return due.Equal(ref)
	case f.IsFuture():
		return due.After(ref)
	case f.IsPast():
		return due.Before(ref)
	}
	return false
}

// Apply returns the tasks matching f, preserving order.
func (f Filter) Apply(tasks []Task, today time.Time) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t, today) {
			out = append(out, t)
		}
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
