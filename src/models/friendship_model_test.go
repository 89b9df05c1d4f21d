package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyForIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKeyFor("alice", "bob"), PairKeyFor("bob", "alice"))
	assert.Equal(t, "alice|bob", PairKeyFor("bob", "alice"))
	assert.NotEqual(t, PairKeyFor("alice", "bob"), PairKeyFor("alice", "carol"))
}
