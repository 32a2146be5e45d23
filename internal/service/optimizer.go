package service

import (
	"math"
	"sort"
	"sync"

	"github.com/guttosm/pack-planner/internal/domain/model"
)

// unreachable marks deficits no combination of smaller packs sums to.
const unreachable = math.MaxInt32

// maxPooledTable caps the tables kept for reuse so one very large size does not pin memory.
const maxPooledTable = 1 << 20

var tablePool = sync.Pool{
	New: func() interface{} {
		t := make([]int32, 0, 1<<12)
		return &t
	},
}

func getTable(n int) *[]int32 {
	tp, _ := tablePool.Get().(*[]int32)
	if tp == nil || cap(*tp) < n {
		t := make([]int32, n)
		return &t
	}
	*tp = (*tp)[:n]
	return tp
}

func putTable(tp *[]int32) {
	if cap(*tp) > maxPooledTable {
		return
	}
	tablePool.Put(tp)
}

// Optimizer computes pack plans. It holds no state and is safe for concurrent use.
//
// Every plan ships at least the ordered quantity using the fewest packs, then
// ships the fewest items. Remaining ties go to the plan with more packs of the
// largest size, then of the next size, and so on.
type Optimizer struct{}

// NewOptimizer creates an optimizer.
func NewOptimizer() *Optimizer {
	return &Optimizer{}
}

// Compute returns the optimal plan for quantity. Non-positive and duplicate sizes
// are ignored. The plan is empty when quantity <= 0 or no usable size remains.
//
// Work and memory are bounded by the largest size times the number of sizes,
// whatever the quantity.
func (o *Optimizer) Compute(quantity int, sizes []int) model.PackPlan {
	return solve(quantity, normalizeSizes(sizes))
}

// normalizeSizes returns the distinct positive sizes in descending order.
func normalizeSizes(sizes []int) []int {
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s > 0 {
			out = append(out, s)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	uniq := out[:0]
	for i, s := range out {
		if i == 0 || s != out[i-1] {
			uniq = append(uniq, s)
		}
	}
	return uniq
}

// deficitCoin is a smaller pack seen as the items it lacks against the largest size.
type deficitCoin struct {
	size int
	step int
}

// solve plans quantity over desc (distinct, descending).
//
// No plan covers quantity with fewer than n = ceil(quantity/max) packs, and n
// largest packs always do. An n-pack plan ships n*max minus the deficits
// (max - size) of its smaller packs. The best plan therefore swaps in at most n
// smaller packs whose deficits reach the largest sum not above n*max - quantity,
// using as few of them as possible. That window is narrower than max.
func solve(quantity int, desc []int) model.PackPlan {
	plan := model.PackPlan{}
	if quantity <= 0 || len(desc) == 0 {
		return plan
	}

	largest := desc[0]
	packs := quantity / largest
	slack := 0
	if rem := quantity % largest; rem != 0 {
		packs++
		slack = largest - rem
	}

	coins, unit := deficitCoins(desc, slack)
	if len(coins) == 0 {
		plan[largest] = packs
		return plan
	}

	tp := getTable(slack/unit + 1)
	defer putTable(tp)
	dp := *tp

	fillDeficits(dp, coins)
	swapped := reconstruct(dp, pickDeficit(dp, packs), coins, plan)
	if rest := packs - swapped; rest > 0 {
		plan[largest] = rest
	}
	return plan
}

// deficitCoins returns the smaller sizes whose deficit fits in slack, ordered by
// descending size, with deficits divided by their common divisor unit.
func deficitCoins(desc []int, slack int) ([]deficitCoin, int) {
	largest := desc[0]
	coins := make([]deficitCoin, 0, len(desc)-1)
	unit := 0
	for _, s := range desc[1:] {
		d := largest - s
		if d > slack {
			break
		}
		coins = append(coins, deficitCoin{size: s, step: d})
		unit = gcd(unit, d)
	}
	for i := range coins {
		coins[i].step /= unit
	}
	return coins, unit
}

// fillDeficits sets dp[t] to the fewest coins whose steps sum exactly to t.
func fillDeficits(dp []int32, coins []deficitCoin) {
	dp[0] = 0
	for t := 1; t < len(dp); t++ {
		best := int32(unreachable)
		for _, c := range coins {
			if c.step > t {
				break
			}
			if prev := dp[t-c.step]; prev != unreachable && prev+1 < best {
				best = prev + 1
			}
		}
		dp[t] = best
	}
}

// pickDeficit returns the largest deficit reachable with at most packs coins.
func pickDeficit(dp []int32, packs int) int {
	for t := len(dp) - 1; t > 0; t-- {
		if dp[t] != unreachable && int(dp[t]) <= packs {
			return t
		}
	}
	return 0
}

// reconstruct walks the table from deficit, always taking the largest size that
// stays on a fewest-coins path, and returns the number of smaller packs used.
// That yields the representation with the most packs of each size in descending
// order.
func reconstruct(dp []int32, deficit int, coins []deficitCoin, plan model.PackPlan) int {
	used := 0
	for t := deficit; t > 0; {
		want := dp[t] - 1
		for _, c := range coins {
			if c.step <= t && dp[t-c.step] == want {
				plan[c.size]++
				t -= c.step
				used++
				break
			}
		}
	}
	return used
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
