package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-a", "http://api", "-c", "conf.json"},
			names: []string{"-a"},
			want:  []string{"-a", "http://api"},
		},
		{
			name:  "equals form",
			args:  []string{"--config=alt.json", "-a", "x"},
			names: []string{"--config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "unknown flags ignored",
			args:  []string{"-x", "1", "--y=2", "positional"},
			names: []string{"-a"},
			want:  []string{},
		},
		{
			name:  "dangling flag kept",
			args:  []string{"-t"},
			names: []string{"-t"},
			want:  []string{"-t"},
		},
		{
			name:  "next flag is not a value",
			args:  []string{"-t", "-a", "x"},
			names: []string{"-t"},
			want:  []string{"-t"},
		},
		{
			name:  "order preserved",
			args:  []string{"-l", "debug", "-a", "u", "-l=warn"},
			names: []string{"-l"},
			want:  []string{"-l", "debug", "-l=warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pick(tt.args, tt.names...))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "a.json", ConfigPath([]string{"-c", "a.json", "-a", "x"}))
	assert.Equal(t, "b.json", ConfigPath([]string{"-config", "b.json"}))
	assert.Equal(t, "c.json", ConfigPath([]string{"-a", "x", "-config=c.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", "x"}))
	assert.Equal(t, "", ConfigPath(nil))
}
