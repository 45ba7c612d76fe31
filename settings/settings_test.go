// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type eventLog []ChangeEvent

func (l *eventLog) SettingChanged(e ChangeEvent) { *l = append(*l, e) }

func TestDefaults(t *testing.T) {
	s := New()
	if s.IsSet("legend.gap") || s.Get("legend.gap") != nil {
		t.Fatal("unset key has a value")
	}
	s.SetDefault("legend.gap", 5.0)
	if got := s.GetFloat64("legend.gap"); got != 5 {
		t.Fatalf("default = %v; want 5", got)
	}
	s.Set("legend.gap", 8.0)
	if got := s.GetFloat64("legend.gap"); got != 8 {
		t.Fatalf("value = %v; want 8", got)
	}
	s.Remove("legend.gap")
	if got := s.GetFloat64("legend.gap"); got != 5 {
		t.Fatalf("value after Remove = %v; want default 5", got)
	}
	s.RemoveDefault("legend.gap")
	if s.IsSet("legend.gap") {
		t.Fatal("key still set after removing value and default")
	}
}

func TestDottedKeysAreFlat(t *testing.T) {
	s := New()
	s.Set("legend.orientation", "horizontal")
	s.Set("legend", "x")
	if got := s.GetString("legend.orientation"); got != "horizontal" {
		t.Fatalf("legend.orientation = %q", got)
	}
	if got, want := s.Keys(), []string{"legend", "legend.orientation"}; !cmp.Equal(got, want) {
		t.Fatalf("Keys = %v; want %v", got, want)
	}
}

func TestListeners(t *testing.T) {
	s := New()
	var log eventLog
	s.AddListener(&log)
	s.AddListener(&log)

	s.SetDefault("k", 1)
	s.Set("k", 2)
	s.Set("k", 2)        // no change
	s.SetDefault("k", 3) // shadowed by the set value
	s.Remove("k")
	s.RemoveListener(&log)
	s.Set("k", 4)

	want := eventLog{
		{Key: "k", Old: nil, New: 1, Default: true},
		{Key: "k", Old: 1, New: 2},
		{Key: "k", Old: 2, New: 3},
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}
