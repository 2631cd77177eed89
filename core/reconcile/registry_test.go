package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	reg := newTestRegistry()

	s, err := reg.Lookup(kindDoc)
	require.NoError(t, err)
	assert.Equal(t, kindDoc, s.Kind())
	assert.Equal(t, FamilyDocument, s.Family())
}

func TestRegistry_LookupUnknown(t *testing.T) {
	reg := newTestRegistry()

	_, err := reg.Lookup("Warehouse")
	assert.True(t, errors.Is(err, ErrUnknownEntityKind))
	assert.Contains(t, err.Error(), "Warehouse")

	// Labels are case sensitive.
	_, err = reg.Lookup("item")
	assert.ErrorIs(t, err, ErrUnknownEntityKind)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	reg := newTestRegistry()

	assert.Panics(t, func() {
		reg.Register(NewReferenceStrategy[testItemRecord, testItem](kindItem))
	})
}

func TestRegistry_Kinds(t *testing.T) {
	assert.Equal(t, []Kind{kindDoc, kindItem, kindStock}, newTestRegistry().Kinds())
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(&DecodeError{Kind: kindItem, Index: -1, Err: ErrNotArray}))
	_, err := newTestRegistry().Lookup("nope")
	assert.True(t, IsClientError(err))
	assert.False(t, IsClientError(&StorageError{Kind: kindItem, Op: "insert", Err: errors.New("boom")}))
}
