// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings implements observable key/value settings with
// per-key defaults.
//
// A key's effective value is its explicitly set value, if any, or
// else its default. Listeners are told whenever an effective value
// changes.
package settings

import (
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// ChangeEvent describes a change to the effective value of Key.
// Default reports whether the change was made to the key's default.
type ChangeEvent struct {
	Key      string
	Old, New interface{}
	Default  bool
}

// A Listener is notified of setting changes. Listeners are compared
// with ==, so they must be comparable.
type Listener interface {
	SettingChanged(e ChangeEvent)
}

// Settings is a set of settings. The zero value is not usable; use
// New.
type Settings struct {
	v         *viper.Viper
	listeners []Listener
}

func New() *Settings {
	// Setting keys are dotted names, not nested paths.
	return &Settings{v: viper.NewWithOptions(viper.KeyDelimiter("::"))}
}

// Get returns the effective value of key, or nil.
func (s *Settings) Get(key string) interface{} {
	return s.v.Get(key)
}

func (s *Settings) GetFloat64(key string) float64 { return s.v.GetFloat64(key) }
func (s *Settings) GetInt(key string) int         { return s.v.GetInt(key) }
func (s *Settings) GetString(key string) string   { return s.v.GetString(key) }
func (s *Settings) GetBool(key string) bool       { return s.v.GetBool(key) }

// IsSet reports whether key has an effective value.
func (s *Settings) IsSet(key string) bool {
	return s.v.Get(key) != nil
}

// Set sets the value of key.
func (s *Settings) Set(key string, value interface{}) {
	s.change(key, false, func() { s.v.Set(key, value) })
}

// Remove removes the value set for key. The key reverts to its
// default.
func (s *Settings) Remove(key string) {
	s.change(key, false, func() { s.v.Set(key, nil) })
}

// SetDefault sets the default value of key.
func (s *Settings) SetDefault(key string, value interface{}) {
	s.change(key, true, func() { s.v.SetDefault(key, value) })
}

// RemoveDefault removes the default value of key.
func (s *Settings) RemoveDefault(key string) {
	s.change(key, true, func() { s.v.SetDefault(key, nil) })
}

// Keys returns the keys that have a value or default, sorted.
func (s *Settings) Keys() []string {
	var keys []string
	for _, k := range s.v.AllKeys() {
		if s.IsSet(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// AddListener registers l. Adding a listener twice has no effect.
func (s *Settings) AddListener(l Listener) {
	for _, x := range s.listeners {
		if x == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

func (s *Settings) RemoveListener(l Listener) {
	for i, x := range s.listeners {
		if x == l {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Settings) change(key string, def bool, f func()) {
	old := s.v.Get(key)
	f()
	cur := s.v.Get(key)
	if reflect.DeepEqual(old, cur) {
		return
	}
	e := ChangeEvent{Key: strings.ToLower(key), Old: old, New: cur, Default: def}
	for _, l := range append([]Listener(nil), s.listeners...) {
		l.SettingChanged(e)
	}
}
