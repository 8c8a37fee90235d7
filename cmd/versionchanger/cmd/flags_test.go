// Copyright © 2018 One Concern

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeNegativeArgs(t *testing.T) {
	flags := newRootCmd().Flags()

	for _, toPin := range []struct {
		name     string
		args     []string
		expected []string
	}{
		{name: "none", args: []string{}, expected: []string{}},
		{name: "positive", args: []string{"3.1.4", "27"}, expected: []string{"3.1.4", "27"}},
		{name: "negative build", args: []string{"3.1.4", "-1"}, expected: []string{"--", "3.1.4", "-1"}},
		{name: "negative version", args: []string{"-3.1.4", "27"}, expected: []string{"--", "-3.1.4", "27"}},
		{
			name:     "flags first",
			args:     []string{"--loglevel", "debug", "3.1.4", "-1"},
			expected: []string{"--loglevel", "debug", "--", "3.1.4", "-1"},
		},
		{
			name:     "flags after",
			args:     []string{"3.1.4", "-1", "--archives", "/x"},
			expected: []string{"--archives", "/x", "--", "3.1.4", "-1"},
		},
		{
			name:     "flags around",
			args:     []string{"--loglevel=info", "-3.1.4", "--archives", "/x", "-27"},
			expected: []string{"--loglevel=info", "--archives", "/x", "--", "-3.1.4", "-27"},
		},
		{
			name:     "negative flag value",
			args:     []string{"--archives", "-1", "3.1.4", "27"},
			expected: []string{"--archives", "-1", "3.1.4", "27"},
		},
		{
			name:     "unknown flags take no value",
			args:     []string{"--version", "3.1.4", "-1"},
			expected: []string{"--version", "--", "3.1.4", "-1"},
		},
		{
			name:     "flags without a negative number",
			args:     []string{"3.1.4", "--archives", "/x", "27"},
			expected: []string{"3.1.4", "--archives", "/x", "27"},
		},
		{
			name:     "already terminated",
			args:     []string{"3.1.4", "--", "-1"},
			expected: []string{"3.1.4", "--", "-1"},
		},
		{
			name:     "terminated after a negative number",
			args:     []string{"-3.1.4", "--archives", "/x", "--", "-1"},
			expected: []string{"--archives", "/x", "--", "-3.1.4", "-1"},
		},
	} {
		fixture := toPin
		t.Run(fixture.name, func(t *testing.T) {
			assert.Equal(t, fixture.expected, escapeNegativeArgs(flags, fixture.args))
		})
	}
}
