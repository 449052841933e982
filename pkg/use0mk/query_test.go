package use0mk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		creds     Credentials
		link      string
		shortName string
		want      string
	}{
		{
			name:      "all parameters in order",
			base:      "http://api.0.mk/v2/skrati",
			creds:     Credentials{Username: "user", APIKey: "key"},
			link:      "http://example.com",
			shortName: "name",
			want:      "http://api.0.mk/v2/skrati?korisnik=user&apikey=key&format=json&nastavka=name&link=http%3A%2F%2Fexample.com",
		},
		{
			name: "anonymous without short name",
			base: "http://api.0.mk/v2/pregled",
			link: "http://0.mk/abc",
			want: "http://api.0.mk/v2/pregled?format=json&link=http%3A%2F%2F0.mk%2Fabc",
		},
		{
			name:      "values are trimmed",
			base:      " http://api.0.mk/v2/skrati ",
			creds:     Credentials{Username: "  user ", APIKey: "\tkey\n"},
			link:      "  http://example.com/a  ",
			shortName: " n ",
			want:      "http://api.0.mk/v2/skrati?korisnik=user&apikey=key&format=json&nastavka=n&link=http%3A%2F%2Fexample.com%2Fa",
		},
		{
			name:      "blank values are omitted",
			base:      "http://api.0.mk/v2/skrati",
			creds:     Credentials{Username: "   ", APIKey: ""},
			link:      "http://example.com",
			shortName: "  ",
			want:      "http://api.0.mk/v2/skrati?format=json&link=http%3A%2F%2Fexample.com",
		},
		{
			name: "link is always present",
			base: "http://api.0.mk/v2/skrati",
			want: "http://api.0.mk/v2/skrati?format=json&link=",
		},
		{
			name: "existing query is kept first",
			base: "http://api.0.mk/v2/skrati?v=2",
			link: "http://example.com?a=1&b=2",
			want: "http://api.0.mk/v2/skrati?v=2&format=json&link=http%3A%2F%2Fexample.com%3Fa%3D1%26b%3D2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildURI(tt.base, tt.creds, tt.link, tt.shortName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildURI_InvalidBase(t *testing.T) {
	_, err := BuildURI("http://[::1", Credentials{}, "http://example.com", "")
	require.Error(t, err)
}
