package location

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticDirectory_States(t *testing.T) {
	dir := NewStaticDirectory()

	states := dir.States()
	require.NotEmpty(t, states)
	require.Contains(t, states, "BIHAR")
}

func TestStaticDirectory_BusinessAreas(t *testing.T) {
	dir := NewStaticDirectory()

	areas, ok := dir.BusinessAreas("BIHAR")
	require.True(t, ok)
	require.Contains(t, areas, "PATNA")
	require.Contains(t, areas, "GAYA")

	_, ok = dir.BusinessAreas("ATLANTIS")
	require.False(t, ok)
}

func TestStaticDirectory_Districts(t *testing.T) {
	dir := NewStaticDirectory()

	districts, ok := dir.Districts("BIHAR", "PATNA")
	require.True(t, ok)
	require.Contains(t, districts, "NALANDA")

	_, ok = dir.Districts("BIHAR", "ATLANTIS")
	require.False(t, ok)
}

func TestStaticDirectory_Blocks(t *testing.T) {
	dir := NewStaticDirectory()

	blocks, ok := dir.Blocks("BIHAR", "PATNA", "PATNA")
	require.True(t, ok)
	require.Contains(t, blocks, "BIHTA")

	// ROHTAS belongs to the GAYA business area; asking for it under PATNA
	// must miss even though the district exists in the state.
	_, ok = dir.Blocks("BIHAR", "GAYA", "ROHTAS")
	require.True(t, ok)
	_, ok = dir.Blocks("BIHAR", "PATNA", "ROHTAS")
	require.False(t, ok)
}

func TestContains(t *testing.T) {
	dir := NewStaticDirectory()

	require.True(t, Contains(dir, "BIHAR", "PATNA", "PATNA", "BIHTA"))
	require.False(t, Contains(dir, "BIHAR", "PATNA", "PATNA", "NOWHERE"))
	require.False(t, Contains(dir, "BIHAR", "PATNA", "ROHTAS", "DEHRI"))
}
