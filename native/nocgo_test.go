//go:build !cgo

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_WithoutCgo(t *testing.T) {
	lib, err := Load()
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, ErrUnavailable)
}
