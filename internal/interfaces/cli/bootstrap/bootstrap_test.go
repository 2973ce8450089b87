package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"production", "release"},
		{"prod", "release"},
		{"test", "test"},
		{"development", "debug"},
		{"", "debug"},
		{"staging", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, MapEnvToGinMode(tt.env))
		})
	}
}

func TestResolve_EnvVariableWins(t *testing.T) {
	t.Setenv("ENV", "production")

	opts := Options{Env: "development"}
	opts.Resolve()

	assert.Equal(t, "production", opts.Env)
}
