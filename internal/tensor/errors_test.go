package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgError(t *testing.T) {
	err := &ArgError{Op: "randint", Arg: "dtype", Value: Float32, Err: ErrUnsupportedDType}

	assert.Contains(t, err.Error(), "randint")
	assert.Contains(t, err.Error(), "dtype")
	assert.Contains(t, err.Error(), "float32")
	assert.True(t, errors.Is(err, ErrUnsupportedDType))
}
