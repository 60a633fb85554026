package render

import "math"

// Bucket is one histogram bin. Lo is inclusive; Hi is exclusive except for
// the last bucket.
type Bucket struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Summary describes a sample of scores.
type Summary struct {
	N      int     `json:"n"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Bin splits scores into equal-width buckets spanning the observed range.
func Bin(scores []int, bins int) []Bucket {
	if len(scores) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	if lo == hi {
		return []Bucket{{Lo: float64(lo), Hi: float64(hi), Count: len(scores)}}
	}

	width := float64(hi-lo) / float64(bins)
	buckets := make([]Bucket, bins)
	for i := range buckets {
		buckets[i].Lo = float64(lo) + float64(i)*width
		buckets[i].Hi = float64(lo) + float64(i+1)*width
	}
	buckets[bins-1].Hi = float64(hi)

	for _, s := range scores {
		i := int(float64(s-lo) / width)
		if i >= bins {
			i = bins - 1
		}
		buckets[i].Count++
	}
	return buckets
}

// Summarize computes the population statistics of scores.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	s := Summary{N: len(scores), Min: scores[0], Max: scores[0]}
	total := 0
	for _, v := range scores {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		total += v
	}
	s.Mean = float64(total) / float64(len(scores))

	var sq float64
	for _, v := range scores {
		d := float64(v) - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(scores)))
	return s
}
