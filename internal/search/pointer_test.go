// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsContains(t *testing.T) {
	t.Parallel()

	bounds := Bounds{X: 2, Y: 3, Width: 10, Height: 4}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{name: "top left corner", point: Point{2, 3}, want: true},
		{name: "bottom right corner", point: Point{11, 6}, want: true},
		{name: "right of region", point: Point{12, 4}, want: false},
		{name: "below region", point: Point{5, 7}, want: false},
		{name: "above region", point: Point{5, 2}, want: false},
		{name: "left of region", point: Point{1, 4}, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, bounds.Contains(testCase.point))
		})
	}
}

func TestPointerObserver(t *testing.T) {
	t.Parallel()

	var outside []Point

	observer := NewPointerObserver(func(p Point) {
		outside = append(outside, p)
	})

	assert.False(t, observer.PointerDown(Point{0, 0}), "nothing is outside before a region is watched")

	observer.Watch(Bounds{X: 0, Y: 0, Width: 5, Height: 2})

	assert.False(t, observer.PointerDown(Point{4, 1}))
	assert.True(t, observer.PointerDown(Point{4, 2}))
	assert.True(t, observer.PointerDown(Point{40, 0}))

	assert.Equal(t, []Point{{4, 2}, {40, 0}}, outside)
	assert.Equal(t, Bounds{Width: 5, Height: 2}, observer.Bounds())
}

func TestSessionPointerDismissal(t *testing.T) {
	t.Parallel()

	session := newLoadedSession()
	observer := NewPointerObserver(func(Point) { session.HideSuggestions() })
	observer.Watch(Bounds{X: 0, Y: 5, Width: 40, Height: 4})

	session.SetQuery("be")
	observer.PointerDown(Point{10, 6})
	assert.True(t, session.SuggestionsVisible())

	observer.PointerDown(Point{10, 20})
	assert.False(t, session.SuggestionsVisible())
	assert.Equal(t, "be", session.Query())
}
