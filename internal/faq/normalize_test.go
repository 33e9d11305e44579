package faq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"How do I add a new category?", "how do i add a new category"},
		{"  THANK YOU!!  ", "thank you"},
		{"what's up", "whats up"},
		{"how-do-i-logout", "howdoilogout"},
		{"", ""},
		{"???", ""},
		{"already normalized", "already normalized"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Normalize(tc.in), "in=%q", tc.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"How do I add a new category?",
		"  mixed CASE, with punct!  ",
		"",
		"plain words",
		"tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "in=%q", in)
	}
}
