// Package forest implements a random forest regressor: bootstrap-aggregated
// CART regression trees with mean aggregation at prediction time.
//
// Splits minimize the summed squared error of the two children, every
// feature is considered at every split (the usual regression setting), and
// trees grow until their leaves are pure or cannot be split further.
// Fitting is deterministic for a given seed.
package forest

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
)

// Regressor is a fitted forest. Fields are exported for gob serialization.
type Regressor struct {
	Trees []*Node
	Seed  int64
}

// Node is a regression tree node. Leaves have a nil Left and Right and
// carry the mean target of their training samples in Value.
type Node struct {
	Feature   int
	Threshold float64
	Value     float64
	Left      *Node
	Right     *Node
}

func (n *Node) predict(x []float64) float64 {
	for n.Left != nil {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

// Fit trains numTrees trees on the feature matrix x and target y. Each
// tree draws its own bootstrap sample from a rng derived from seed, so a
// fixed seed reproduces the forest exactly regardless of scheduling.
func Fit(x [][]float64, y []float64, numTrees int, seed int64) (*Regressor, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("fit forest: need matching non-empty features and targets, got %d and %d", len(x), len(y))
	}
	if numTrees < 1 {
		return nil, fmt.Errorf("fit forest: tree count must be positive, got %d", numTrees)
	}

	r := &Regressor{Trees: make([]*Node, numTrees), Seed: seed}

	var wg sync.WaitGroup
	for i := range r.Trees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(i)))
			sample := make([]int, len(x))
			for j := range sample {
				sample[j] = rng.Intn(len(x))
			}
			r.Trees[i] = grow(x, y, sample)
		}(i)
	}
	wg.Wait()

	return r, nil
}

// Predict returns the mean prediction over all trees.
func (r *Regressor) Predict(x []float64) (float64, error) {
	if len(r.Trees) == 0 {
		return 0, fmt.Errorf("predict: forest has no trees")
	}

	var sum float64
	for _, t := range r.Trees {
		sum += t.predict(x)
	}
	return sum / float64(len(r.Trees)), nil
}

// grow builds one tree over the given sample indices.
func grow(x [][]float64, y []float64, sample []int) *Node {
	mean, sse := meanSSE(y, sample)
	node := &Node{Value: mean}
	if len(sample) < 2 || sse == 0 {
		return node
	}

	feature, threshold, ok := bestSplit(x, y, sample, sse)
	if !ok {
		return node
	}

	var left, right []int
	for _, i := range sample {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	node.Feature = feature
	node.Threshold = threshold
	node.Left = grow(x, y, left)
	node.Right = grow(x, y, right)
	return node
}

// bestSplit scans every feature for the threshold that most reduces the
// summed squared error. Reports ok=false when no split improves on the
// parent, which happens when all feature values coincide.
func bestSplit(x [][]float64, y []float64, sample []int, parentSSE float64) (feature int, threshold float64, ok bool) {
	bestSSE := parentSSE
	numFeatures := len(x[sample[0]])

	order := make([]int, len(sample))
	for f := 0; f < numFeatures; f++ {
		copy(order, sample)
		sortByFeature(x, order, f)

		// Prefix sums allow evaluating every threshold in one pass.
		var sumL, sqL float64
		sumR, sqR := sums(y, order)
		for i := 0; i < len(order)-1; i++ {
			v := y[order[i]]
			sumL += v
			sqL += v * v
			sumR -= v
			sqR -= v * v

			a, b := x[order[i]][f], x[order[i+1]][f]
			if a == b {
				continue
			}

			nL, nR := float64(i+1), float64(len(order)-i-1)
			sse := (sqL - sumL*sumL/nL) + (sqR - sumR*sumR/nR)
			if sse < bestSSE-1e-12 {
				bestSSE = sse
				feature = f
				threshold = a + (b-a)/2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func sums(y []float64, idx []int) (sum, sq float64) {
	for _, i := range idx {
		sum += y[i]
		sq += y[i] * y[i]
	}
	return sum, sq
}

func meanSSE(y []float64, idx []int) (mean, sse float64) {
	sum, sq := sums(y, idx)
	n := float64(len(idx))
	if n == 0 {
		return 0, 0
	}
	mean = sum / n
	sse = sq - sum*sum/n
	if sse < 0 || math.IsNaN(sse) {
		sse = 0
	}
	return mean, sse
}

func sortByFeature(x [][]float64, idx []int, f int) {
	sort.Slice(idx, func(a, b int) bool {
		return x[idx[a]][f] < x[idx[b]][f]
	})
}
