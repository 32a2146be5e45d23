// Package model defines the core domain entities for the pack planner.
package model

import "sort"

// Pack is one line of a plan: Quantity packs of Size items each.
//
// @Description Pack size and quantity used in the order
// @Example {"size": 500, "quantity": 1}
type Pack struct {
	// Size is the pack size in items
	Size int `json:"size" example:"500"`
	// Quantity is the number of packs of this size
	Quantity int `json:"quantity" example:"1"`
}

// TotalItems returns Size * Quantity.
func (p Pack) TotalItems() int {
	return p.Size * p.Quantity
}

// PackPlan maps a pack size to the number of packs of that size.
// Only sizes with a positive count are present.
type PackPlan map[int]int

// TotalItems returns the number of items shipped by the plan.
func (p PackPlan) TotalItems() int {
	total := 0
	for size, count := range p {
		total += size * count
	}
	return total
}

// TotalPacks returns the number of packs in the plan.
func (p PackPlan) TotalPacks() int {
	total := 0
	for _, count := range p {
		total += count
	}
	return total
}

// Packs returns the plan as a slice ordered by descending size.
func (p PackPlan) Packs() []Pack {
	packs := make([]Pack, 0, len(p))
	for size, count := range p {
		if count > 0 {
			packs = append(packs, Pack{Size: size, Quantity: count})
		}
	}
	sort.Slice(packs, func(i, j int) bool { return packs[i].Size > packs[j].Size })
	return packs
}

// PackResult is the transport shape of a computed plan.
//
// @Description Pack plan containing ordered items, items shipped and the pack breakdown
// @Example {"ordered_items": 251, "total_items": 500, "total_packs": 1, "packs": [{"size": 500, "quantity": 1}]}
type PackResult struct {
	// OrderedItems is the number of items the customer ordered
	OrderedItems int `json:"ordered_items" example:"251"`
	// TotalItems is the total number of items that will be shipped
	TotalItems int `json:"total_items" example:"500"`
	// TotalPacks is the number of packs shipped
	TotalPacks int `json:"total_packs" example:"1"`
	// Packs is the list of packs used to fulfill the order, largest first
	Packs []Pack `json:"packs"`
}

// NewPackResult builds the transport shape for plan.
func NewPackResult(orderedItems int, plan PackPlan) PackResult {
	return PackResult{
		OrderedItems: orderedItems,
		TotalItems:   plan.TotalItems(),
		TotalPacks:   plan.TotalPacks(),
		Packs:        plan.Packs(),
	}
}

// Empty returns an empty PackResult for the given order amount.
func Empty(orderedItems int) PackResult {
	return PackResult{
		OrderedItems: orderedItems,
		Packs:        []Pack{},
	}
}

// PackSizeSet is an immutable view of the registered pack sizes.
type PackSizeSet struct {
	// Sizes holds the distinct sizes in ascending order.
	Sizes []int `json:"sizes" example:"250,500,1000,2000,5000"`
	// Version increases on every effective mutation.
	Version uint64 `json:"version" example:"3"`
}

// Len returns the number of sizes in the set.
func (s PackSizeSet) Len() int {
	return len(s.Sizes)
}

// Contains reports whether size is in the set.
func (s PackSizeSet) Contains(size int) bool {
	i := sort.SearchInts(s.Sizes, size)
	return i < len(s.Sizes) && s.Sizes[i] == size
}
