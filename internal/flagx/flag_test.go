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
			name:    "separate value form",
			args:    []string{"-d", "alt.db", "-lat", "28.61"},
			allowed: []string{"-d"},
			want:    []string{"-d", "alt.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=agrovest.json", "-lat", "28.61"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=agrovest.json"},
		},
		{
			name:    "order preserved when both forms appear",
			args:    []string{"--config=a.json", "-c", "b.json", "-x", "1"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=a.json", "-c", "b.json"},
		},
		{
			name:    "disallowed flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "leaf.jpg"},
			allowed: []string{"-c", "--config"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not consumed as a value",
			args:    []string{"-c", "-lat"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "several allowed flags survive together",
			args:    []string{"-s", "http://127.0.0.1:5000", "-d", "alt.db", "--other", "x"},
			allowed: []string{"-d", "-s"},
			want:    []string{"-s", "http://127.0.0.1:5000", "-d", "alt.db"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "repeated flag kept in order",
			args:    []string{"-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short form", []string{"agrovest", "-c", "/etc/agrovest/cfg.json"}, "/etc/agrovest/cfg.json"},
		{"long form", []string{"agrovest", "-config", "local.json"}, "local.json"},
		{"no config flag", []string{"agrovest", "-lat", "28.61", "-lon", "77.2"}, ""},
		{"last occurrence wins", []string{"agrovest", "-c", "first.json", "-config", "second.json"}, "second.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
