package server_test

import (
	"testing"
	"time"

	"bulk-editor/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"Configured", "9090", ":9090"},
		{"Empty", "", ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.Address())
		})
	}
}

func TestConfig_Limits(t *testing.T) {
	c := server.Config{BodyLimitMB: 2, ReadTimeoutSeconds: 5}
	assert.Equal(t, 2*1024*1024, c.BodyLimit())
	assert.Equal(t, 5*time.Second, c.ReadTimeout())

	var zero server.Config
	assert.Equal(t, 4*1024*1024, zero.BodyLimit())
	assert.Equal(t, 30*time.Second, zero.ReadTimeout())
}
