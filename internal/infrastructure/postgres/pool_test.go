package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferIPv4(t *testing.T) {
	assert.Equal(t, "postgres://u:p@127.0.0.1:6543/db", preferIPv4("postgres://u:p@127.0.0.1:6543/db"))
	assert.Equal(t, "postgres://u:p@10.0.0.2:5432/db", preferIPv4("postgres://u:p@10.0.0.2/db"), "sin puerto se asume 5432")
	assert.Equal(t, "host=db user=u", preferIPv4("host=db user=u"), "formato key=value no se toca")
	assert.Equal(t, "postgres://u:p@[::1]:5432/db", preferIPv4("postgres://u:p@[::1]:5432/db"), "IPv6 literal no se reemplaza")
}
