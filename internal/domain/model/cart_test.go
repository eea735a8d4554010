package model

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// 同じidを2回 => 1行で数量2
func TestCart_Add_SameIDIncrementsQuantity(t *testing.T) {
	var c Cart
	c.Add("b1", "Dune", 15.99)
	c.Add("b1", "Dune", 15.99)

	want := []CartLine{{ID: "b1", Title: "Dune", Price: 15.99, Quantity: 2}}
	if diff := cmp.Diff(want, c.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, c.TotalItemCount())
	assert.Equal(t, 31.98, c.TotalPrice())
}

func TestCart_Add_KeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.Add("b1", "Dune", 15.99)
	c.Add("b2", "Emma", 9.5)
	c.Add("b1", "Dune", 15.99)

	ids := []string{}
	for _, l := range c.Lines {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"b1", "b2"}, ids)
	assert.Equal(t, 3, c.TotalItemCount())
	assert.Equal(t, 41.48, c.TotalPrice())
}

// 無いidの削除は何もしない
func TestCart_Remove_Missing(t *testing.T) {
	c := Cart{Lines: []CartLine{{ID: "b1", Title: "Dune", Price: 1, Quantity: 1}}}
	assert.False(t, c.Remove("nope"))
	assert.Len(t, c.Lines, 1)

	assert.True(t, c.Remove("b1"))
	assert.True(t, c.IsEmpty())
}

func TestCart_AdjustQuantity(t *testing.T) {
	c := Cart{Lines: []CartLine{{ID: "b1", Title: "Dune", Price: 2, Quantity: 2}}}

	found, removed := c.AdjustQuantity("b1", 3)
	assert.True(t, found)
	assert.False(t, removed)
	assert.Equal(t, 5, c.Lines[0].Quantity)

	found, removed = c.AdjustQuantity("b1", -5)
	assert.True(t, found)
	assert.True(t, removed)
	assert.True(t, c.IsEmpty())

	found, removed = c.AdjustQuantity("b1", 1)
	assert.False(t, found)
	assert.False(t, removed)
}

func TestCart_AdjustQuantity_BelowZeroRemoves(t *testing.T) {
	c := Cart{Lines: []CartLine{{ID: "b1", Quantity: 1}, {ID: "b2", Quantity: 1}}}
	_, removed := c.AdjustQuantity("b1", -10)
	assert.True(t, removed)
	assert.Equal(t, []CartLine{{ID: "b2", Quantity: 1}}, c.Lines)
}

func TestCart_Normalize(t *testing.T) {
	c := Cart{Lines: []CartLine{
		{ID: "b1", Quantity: 1},
		{ID: "b2", Quantity: 0},
		{ID: "", Quantity: 3},
		{ID: "b1", Quantity: 2},
		{ID: "b3", Quantity: -1},
	}}
	c.Normalize()

	want := []CartLine{{ID: "b1", Quantity: 3}}
	if diff := cmp.Diff(want, c.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestCart_EmptyTotals(t *testing.T) {
	var c Cart
	assert.Equal(t, 0, c.TotalItemCount())
	assert.Equal(t, 0.0, c.TotalPrice())
}

// 大きなdeltaでも数量が負に回らない
func TestCart_AdjustQuantity_ClampsLargeDelta(t *testing.T) {
	c := Cart{Lines: []CartLine{{ID: "b1", Price: 2, Quantity: 2}}}

	found, removed := c.AdjustQuantity("b1", math.MaxInt)
	assert.True(t, found)
	assert.False(t, removed)
	assert.Equal(t, MaxLineQuantity, c.Lines[0].Quantity)

	found, removed = c.AdjustQuantity("b1", math.MinInt)
	assert.True(t, found)
	assert.True(t, removed)
	assert.True(t, c.IsEmpty())
}

func TestCart_Add_StopsAtMaxQuantity(t *testing.T) {
	c := Cart{Lines: []CartLine{{ID: "b1", Price: 2, Quantity: MaxLineQuantity}}}
	line := c.Add("b1", "Dune", 2)
	assert.Equal(t, MaxLineQuantity, line.Quantity)
}

// 壊れた価格の明細は読み込み時に落ちる
func TestCart_Normalize_DropsOutOfRangePrice(t *testing.T) {
	c := Cart{Lines: []CartLine{
		{ID: "b1", Price: 1e308, Quantity: 1},
		{ID: "b2", Price: -1, Quantity: 1},
		{ID: "b3", Price: 15.99, Quantity: MaxLineQuantity + 5},
	}}
	c.Normalize()

	want := []CartLine{{ID: "b3", Price: 15.99, Quantity: MaxLineQuantity}}
	if diff := cmp.Diff(want, c.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, math.IsInf(c.TotalPrice(), 0))
}

func TestValidPrice(t *testing.T) {
	assert.True(t, ValidPrice(0))
	assert.True(t, ValidPrice(MaxPrice))
	assert.False(t, ValidPrice(MaxPrice+1))
	assert.False(t, ValidPrice(1e308))
	assert.False(t, ValidPrice(-0.01))
	assert.False(t, ValidPrice(math.NaN()))
	assert.False(t, ValidPrice(math.Inf(1)))
}
