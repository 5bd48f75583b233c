package server_test

import (
	"testing"

	"menu-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Plain", "8080", ":8080"},
		{"Prefixed", ":9090", ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Addr())
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 4*1024*1024, server.Config{}.BodyLimit())
	assert.Equal(t, 1024*1024, server.Config{BodyLimitMB: 1}.BodyLimit())
}
