package layer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassesArePartition(t *testing.T) {
	seen := map[Element]int{}
	for _, e := range StaticPass() {
		seen[e]++
	}
	for _, e := range DynamicPass() {
		seen[e]++
	}

	require.Len(t, seen, int(Count))
	for e, n := range seen {
		require.Equalf(t, 1, n, "%s appears in more than one pass", e)
	}
}

func TestPassOrder(t *testing.T) {
	require.Equal(t, []Element{DropShadow, Face, Marks, FaceShadow, Glass, Frame}, StaticPass())
	require.Equal(t, []Element{
		HourHandShadow, MinuteHandShadow, SecondHandShadow,
		HourHand, MinuteHand, SecondHand,
	}, DynamicPass())
}

func TestPassesAreCopies(t *testing.T) {
	p := StaticPass()
	p[0] = Frame
	require.Equal(t, DropShadow, StaticPass()[0])
}

func TestMandatoryLayers(t *testing.T) {
	var mandatory []Element
	for _, info := range Registry() {
		if info.Mandatory {
			mandatory = append(mandatory, info.Element)
		}
	}
	require.Equal(t, []Element{DropShadow, Face, HourHand, MinuteHand}, mandatory)
}

func TestRegistryIndexedByElement(t *testing.T) {
	for i, info := range Registry() {
		require.Equal(t, Element(i), info.Element)
		require.NotEmpty(t, info.File)
	}

	info, ok := Lookup(Face)
	require.True(t, ok)
	require.Equal(t, "clock-face.svg", info.File)

	_, ok = Lookup(Count)
	require.False(t, ok)
}

func TestHandOf(t *testing.T) {
	require.Equal(t, HourHandAngle, HandOf(HourHandShadow))
	require.Equal(t, MinuteHandAngle, HandOf(MinuteHand))
	require.Equal(t, SecondHandAngle, HandOf(SecondHandShadow))
	require.Equal(t, NoHand, HandOf(Glass))

	require.True(t, IsShadow(MinuteHandShadow))
	require.False(t, IsShadow(MinuteHand))
	require.True(t, IsSeconds(SecondHandShadow))
	require.False(t, IsSeconds(HourHand))
}

func TestElementString(t *testing.T) {
	require.Equal(t, "CLOCK_GLASS", Glass.String())
	require.Equal(t, "Element(42)", Element(42).String())
}
