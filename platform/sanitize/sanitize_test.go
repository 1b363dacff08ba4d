package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	cases := map[string]string{
		"VP of <b>Sales</b>":         "VP of Sales",
		"  Head\n\tof   Growth ":     "Head of Growth",
		"&lt;script&gt;alert(1)":     "alert(1)",
		"Research &amp; Development": "Research & Development",
		"<p></p>":                    "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Text(in), "input %q", in)
	}
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, OptionalText(nil))

	blank := " <br/> "
	assert.Nil(t, OptionalText(&blank))

	title := " Chief <i>Revenue</i> Officer "
	got := OptionalText(&title)
	require.NotNil(t, got)
	assert.Equal(t, "Chief Revenue Officer", *got)
}
