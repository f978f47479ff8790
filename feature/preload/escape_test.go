package preload

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeQueryValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"PlainURL", "https://example.com/a.mp3", "https%3A%2F%2Fexample.com%2Fa.mp3"},
		{"Space", "a b.wav", "a%20b.wav"},
		{"Plus", "a+b", "a%2Bb"},
		{"QueryAndFragment", "http://h/x?a=1&b=2#frag", "http%3A%2F%2Fh%2Fx%3Fa%3D1%26b%3D2%23frag"},
		{"Unreserved", "AZaz09-_.~", "AZaz09-_.~"},
		{"Percent", "100%", "100%25"},
		{"NonASCII", "é", "%C3%A9"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeQueryValue(tt.in))
		})
	}
}

func TestEscapeQueryValue_RoundTrip(t *testing.T) {
	allowed := regexp.MustCompile(`^([A-Za-z0-9\-_.~]|%[0-9A-F]{2})*$`)

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	inputs := []string{
		"https://example.com/a.mp3",
		"https://cdn.example.com/audio/take 1 (final).wav?sig=a+b/c==&x=%20",
		"s3://bucket/key",
		"日本語のファイル.mp3",
		string(all),
	}

	for _, in := range inputs {
		escaped := EscapeQueryValue(in)
		assert.Regexp(t, allowed, escaped)

		back, err := url.QueryUnescape(escaped)
		require.NoError(t, err)
		assert.Equal(t, in, back)
	}
}

func TestRedirectLocation(t *testing.T) {
	assert.Equal(t,
		"/index.html?url=https%3A%2F%2Fexample.com%2Fa.mp3",
		RedirectLocation("https://example.com/a.mp3"))
}
