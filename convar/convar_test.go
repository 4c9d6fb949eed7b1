package convar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase_Deletable(t *testing.T) {
	var b Base

	// 1. Zero value is deletable
	assert.True(t, b.Deletable())

	// 2. An active payload refuses deletion
	b.Activate()
	assert.True(t, b.Active())
	assert.False(t, b.Deletable())

	// 3. References also pin it
	b.AddReference()
	b.Deactivate()
	assert.False(t, b.Active())
	assert.False(t, b.Deletable())
	assert.Equal(t, 1, b.ReferenceCount())

	// 4. Dropping the last reference frees it
	b.RemoveReference()
	assert.True(t, b.Deletable())
}

func TestBase_NestedActivations(t *testing.T) {
	var b Base

	b.Activate()
	b.Activate()
	b.Deactivate()
	assert.True(t, b.Active())
	assert.False(t, b.Deletable())

	b.Deactivate()
	assert.True(t, b.Deletable())
}

func TestBase_Underflow(t *testing.T) {
	assert.Panics(t, func() {
		var b Base
		b.Deactivate()
	})
	assert.Panics(t, func() {
		var b Base
		b.RemoveReference()
	})
}

func TestKey(t *testing.T) {
	// Deterministic and content sensitive
	assert.Equal(t, Key([]byte("abc")), Key([]byte("abc")))
	assert.NotEqual(t, Key([]byte("abc")), Key([]byte("abd")))

	assert.Equal(t, Key([]byte("abc")), KeyString("abc"))
}

func TestKeyUint64s(t *testing.T) {
	// Order matters
	assert.Equal(t, KeyUint64s(1, 2, 3), KeyUint64s(1, 2, 3))
	assert.NotEqual(t, KeyUint64s(1, 2, 3), KeyUint64s(3, 2, 1))

	// Word boundaries matter: (1,2) must differ from a single word
	assert.NotEqual(t, KeyUint64s(1, 2), KeyUint64s(1))
}
