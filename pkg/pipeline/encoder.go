package pipeline

import "sort"

// CategoryEncoder one-hot encodes a categorical column. Empty values are
// imputed with the most frequent training category; categories never seen
// during fitting encode to an all-zero block instead of erroring.
type CategoryEncoder struct {
	Mode       string
	Categories []string
}

func (e *CategoryEncoder) fit(values []string) {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	e.Categories = make([]string, 0, len(counts))
	for v := range counts {
		e.Categories = append(e.Categories, v)
	}
	sort.Strings(e.Categories)

	e.Mode = ""
	best := 0
	for _, v := range e.Categories {
		if counts[v] > best {
			best = counts[v]
			e.Mode = v
		}
	}
}

// encode appends the one-hot block for v to dst.
func (e *CategoryEncoder) encode(v string, dst []float64) []float64 {
	if v == "" {
		v = e.Mode
	}

	start := len(dst)
	dst = append(dst, make([]float64, len(e.Categories))...)
	for i, c := range e.Categories {
		if c == v {
			dst[start+i] = 1
			break
		}
	}
	return dst
}
