package models

import (
	"reflect"
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		token                  string
		category, due, status string
	}{
		{"", "todos", "todos", "todos"},
		{"1-futuro-aberto", "1", "futuro", "aberto"},
		{"todos-hoje-completo", "todos", "hoje", "completo"},
		{"casa", "casa", "todos", "todos"},
		{"casa-passado", "casa", "passado", "todos"},
		{"1--aberto", "1", "", "aberto"},
		{"-futuro-", "", "futuro", ""},
		{"1-futuro-aberto-extra", "1", "futuro", "aberto-extra"},
	}
	for _, tc := range cases {
		f := ParseFilter(tc.token)
		if f.CategoryID != tc.category || f.DueBucket != tc.due || f.StatusID != tc.status {
			t.Fatalf("ParseFilter(%q) = %+v, want %s/%s/%s", tc.token, f, tc.category, tc.due, tc.status)
		}
	}
}

func TestFilterHasFlags(t *testing.T) {
	cases := []struct {
		token                      string
		category, due, statusFlag bool
	}{
		{"", false, false, false},
		{"1-futuro-aberto", true, true, true},
		{"todos-futuro-aberto", false, true, true},
		{"1-todos-aberto", true, false, true},
		{"1-futuro-todos", true, true, false},
	}
	for _, tc := range cases {
		f := ParseFilter(tc.token)
		if f.HasCategory() != tc.category || f.HasDueBucket() != tc.due || f.HasStatus() != tc.statusFlag {
			t.Fatalf("%q: got category=%v due=%v status=%v", tc.token, f.HasCategory(), f.HasDueBucket(), f.HasStatus())
		}
	}
}

func TestFilterDueClassification(t *testing.T) {
	cases := []struct {
		bucket                string
		past, future, today bool
	}{
		{"futuro", false, true, false},
		{"passado", true, false, false},
		{"hoje", false, false, true},
		{"todos", false, false, false},
		{"amanha", false, false, false},
	}
	for _, tc := range cases {
		f := ParseFilter("1-" + tc.bucket + "-aberto")
		if f.IsPast() != tc.past || f.IsFuture() != tc.future || f.IsToday() != tc.today {
			t.Fatalf("%s: got past=%v future=%v today=%v", tc.bucket, f.IsPast(), f.IsFuture(), f.IsToday())
		}
	}
}

func TestFilterTokenRoundTrip(t *testing.T) {
	for _, token := range []string{"1-futuro-aberto", "todos-todos-todos", "casa-passado-completo", "x-y-z", "1--aberto", "-futuro-aberto", "1-futuro-"} {
		f := ParseFilter(token)
		if got := BuildFilterToken(f.CategoryID, f.DueBucket, f.StatusID); got != token {
			t.Fatalf("round trip of %q gave %q", token, got)
		}
	}
	if got := ParseFilter("").Token(); got != "todos-todos-todos" {
		t.Fatalf("empty token round trip gave %q", got)
	}
}

func TestBuildFilterToken(t *testing.T) {
	if got := BuildFilterToken("filtro1", "filtro2"); got != "filtro1-filtro2" {
		t.Fatalf("got %q", got)
	}
	if got := BuildFilterToken(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestDueBucketOptions(t *testing.T) {
	want := []DueBucketOption{
		{Key: "futuro", Label: "Future"},
		{Key: "passado", Label: "Past"},
		{Key: "hoje", Label: "Today"},
	}
	got := DueBucketOptions()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v", got)
	}

	got[0].Label = "changed"
	if DueBucketOptions()[0].Label != "Future" {
		t.Fatalf("options slice is shared with callers")
	}
}

func TestFilterApply(t *testing.T) {
	today := time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)
	day := func(d int) *time.Time {
		v := time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	tasks := []Task{
		{ID: 1, CategoryID: "casa", StatusID: "aberto", DueDate: day(9)},
		{ID: 2, CategoryID: "casa", StatusID: "completo", DueDate: day(10)},
		{ID: 3, CategoryID: "trabalho", StatusID: "aberto", DueDate: day(11)},
		{ID: 4, CategoryID: "trabalho", StatusID: "aberto", DueDate: day(10)},
	}

	cases := []struct {
		token string
		want  []int64
	}{
		{"", []int64{1, 2, 3, 4}},
		{"casa-todos-todos", []int64{1, 2}},
		{"todos-todos-aberto", []int64{1, 3, 4}},
		{"todos-hoje-todos", []int64{2, 4}},
		{"todos-futuro-todos", []int64{3}},
		{"todos-passado-todos", []int64{1}},
		{"trabalho-hoje-aberto", []int64{4}},
		{"todos-amanha-todos", []int64{}},
		{"nope-todos-todos", []int64{}},
		{"casa--todos", []int64{}},
		{"-todos-todos", []int64{}},
	}
	for _, tc := range cases {
		got := ParseFilter(tc.token).Apply(tasks, today)
		ids := make([]int64, 0, len(got))
		for _, task := range got {
			ids = append(ids, task.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) {
			t.Fatalf("%q: got ids %v, want %v", tc.token, ids, tc.want)
		}
	}
}

func TestTaskIsOverdue(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	if !(Task{StatusID: StatusOpen, DueDate: &yesterday}).IsOverdue(today) {
		t.Fatalf("expected open task due yesterday to be overdue")
	}
	if (Task{StatusID: StatusComplete, DueDate: &yesterday}).IsOverdue(today) {
		t.Fatalf("completed task must not be overdue")
	}
	if (Task{StatusID: StatusOpen, DueDate: &today}).IsOverdue(today) {
		t.Fatalf("task due today must not be overdue")
	}
}
