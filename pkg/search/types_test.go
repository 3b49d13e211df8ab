package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewResult_StampsDistinctQueryIDs(t *testing.T) {
	a, b := newResult(), newResult()
	assert.NotEqual(t, uuid.Nil, a.QueryID)
	assert.NotEqual(t, a.QueryID, b.QueryID)
}

func TestResult_Hops(t *testing.T) {
	assert.Zero(t, Result{}.Hops())
	assert.Zero(t, Result{Path: []string{"DEL"}}.Hops())
	assert.Equal(t, 2, Result{Path: []string{"DEL", "BLR", "BOM"}}.Hops())
}
