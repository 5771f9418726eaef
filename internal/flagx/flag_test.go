package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-a", ":8081"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-a", ":8081"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "several owned flags keep order",
			args:    []string{"-H", "db", "-x", "1", "-P", "5433"},
			allowed: []string{"-H", "-P"},
			want:    []string{"-H", "db", "-P", "5433"},
		},
		{
			name:    "boolean flag followed by another flag",
			args:    []string{"-m", "-H", "db"},
			allowed: []string{"-m", "-H"},
			want:    []string{"-m", "-H", "db"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "owned flag at the end without value",
			args:    []string{"-a", ":1", "-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"server", "-a", ":9000", "-c", "geo.json"}
	assert.Equal(t, "geo.json", ConfigPath())

	os.Args = []string{"server", "-config=other.json"}
	assert.Equal(t, "other.json", ConfigPath())

	os.Args = []string{"server", "-a", ":9000"}
	assert.Equal(t, "", ConfigPath())
}
