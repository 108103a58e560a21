package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-eldridge/simux/entity"
)

func TestNewInitializesEmptyAttr(t *testing.T) {
	e := entity.New(3, "Widget", 1.5)
	assert.Equal(t, 3, e.Ind)
	assert.Equal(t, "Widget", e.Type)
	assert.Equal(t, 1.5, e.ArrivalTime)
	assert.NotNil(t, e.Attr)
	assert.Empty(t, e.Attr)
}

func TestCloneDeepCopiesAttr(t *testing.T) {
	orig := entity.New(1, "Person", 0)
	orig.Attr["id"] = 7
	orig.Serial = 42

	dup := orig.Clone(2, 5)
	require.Equal(t, 2, dup.Ind)
	require.Equal(t, 5.0, dup.ArrivalTime)
	assert.Equal(t, "Person", dup.Type)
	assert.Equal(t, 42, dup.Serial)
	assert.Equal(t, 7, dup.Attr["id"])

	dup.Attr["id"] = 99
	assert.Equal(t, 7, orig.Attr["id"], "mutating the clone's attr must not alias the original's")
}

func TestTokenBaseIdentity(t *testing.T) {
	e := entity.New(1, "Person", 0)
	var tok entity.Token = e
	assert.Same(t, e, tok.Base())

	batch := &entity.BatchEntity{
		Entity:  entity.New(2, "Couple", 0),
		Batched: []*entity.Entity{e},
	}
	tok = batch
	assert.Same(t, batch.Entity, tok.Base())
}
