// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffered(state OutputState) (*OutputState, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	state.Out = &out
	state.Err = &errOut

	return &state, &out, &errOut
}

func TestOutputStateSetMode(t *testing.T) {
	t.Parallel()

	o := &OutputState{}

	o.SetMode(true, false, true)
	assert.True(t, o.Verbose)
	assert.False(t, o.JSON)
	assert.True(t, o.Plain)

	o.SetMode(false, true, false)
	assert.False(t, o.Verbose)
	assert.True(t, o.JSON)
	assert.False(t, o.Plain)
}

func TestOutputStateMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		state   OutputState
		write   func(*OutputState)
		wantErr string
	}{
		{name: "progress when verbose", state: OutputState{Verbose: true}, write: func(o *OutputState) { o.Progressf("loading %d", 3) }, wantErr: "loading 3\n"},
		{name: "progress hidden when not verbose", write: func(o *OutputState) { o.Progressf("loading") }, wantErr: ""},
		{name: "progress hidden in JSON", state: OutputState{Verbose: true, JSON: true}, write: func(o *OutputState) { o.Progressf("loading") }, wantErr: ""},
		{name: "success", write: func(o *OutputState) { o.Successf("done") }, wantErr: "✓ done\n"},
		{name: "success hidden in plain", state: OutputState{Plain: true}, write: func(o *OutputState) { o.Successf("done") }, wantErr: ""},
		{name: "warning", write: func(o *OutputState) { o.Warningf("careful") }, wantErr: "⚠ careful\n"},
		{name: "plain warning", state: OutputState{Plain: true}, write: func(o *OutputState) { o.Warningf("careful") }, wantErr: "warning: careful\n"},
		{name: "error", write: func(o *OutputState) { o.Errorf("failed") }, wantErr: "✗ failed\n"},
		{name: "plain error", state: OutputState{Plain: true}, write: func(o *OutputState) { o.Errorf("failed") }, wantErr: "error: failed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, out, errOut := newBuffered(tt.state)
			tt.write(o)

			assert.Equal(t, tt.wantErr, errOut.String())
			assert.Empty(t, out.String())
		})
	}
}

func TestOutputStateSuccessResult(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		o, out, errOut := newBuffered(OutputState{})
		o.SuccessResult("v1.0.0", "version")

		assert.Equal(t, "v1.0.0\n", out.String())
		assert.Equal(t, "✓ version\n", errOut.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		o, out, errOut := newBuffered(OutputState{JSON: true})
		o.SuccessResult("v1.0.0", "version")

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "success", decoded["status"])
		assert.Equal(t, "v1.0.0", decoded["result"])
		assert.Empty(t, errOut.String())
	})
}

func TestDefaultOutput(t *testing.T) {
	t.Parallel()

	require.NotNil(t, DefaultOutput)
}
