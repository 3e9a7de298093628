// Package bucketize turns raw (input-token, output-token) sample pairs
// into the request type / demand shape the optimizer consumes. It
// supplements the distilled spec with the dataset-ingestion step the
// original request distribution service performs upstream of the ILP
// solver: bucketing token counts into power-of-two ranges and converting
// per-bucket sample counts into rates.
package bucketize

import (
	"fmt"
	"math"
	"sort"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// Bucket maps a nonnegative token count to its power-of-two bucket
// string. n<=1 buckets to "0-1"; otherwise the bucket is
// [2^floor(log2 n), 2^(floor(log2 n)+1) - 1].
func Bucket(n int) string {
	if n <= 1 {
		return "0-1"
	}
	k := int(math.Floor(math.Log2(float64(n))))
	lo := 1 << uint(k)
	hi := (1 << uint(k+1)) - 1
	return fmt.Sprintf("%d-%d", lo, hi)
}

// TokenPair is one raw sample's input/output token counts.
type TokenPair struct {
	InputTokens  int
	OutputTokens int
}

// Aggregate buckets samples by (inputBucket, outputBucket), and converts
// each bucket's share of the sample count into a request type and a
// demand entry scaled by totalRequestRate. sloMs is stamped onto every
// generated request type, matching the single-SLO-per-dataset shape the
// ingestion script uses.
func Aggregate(samples []TokenPair, totalRequestRate float64, sloMs int) ([]core.RequestType, core.Demand) {
	if len(samples) == 0 {
		return nil, core.Demand{}
	}

	type bucketKey struct {
		in, out string
	}
	counts := make(map[bucketKey]int)
	for _, s := range samples {
		key := bucketKey{Bucket(s.InputTokens), Bucket(s.OutputTokens)}
		counts[key]++
	}

	keys := make([]bucketKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].in != keys[j].in {
			return bucketLowerBound(keys[i].in) < bucketLowerBound(keys[j].in)
		}
		return bucketLowerBound(keys[i].out) < bucketLowerBound(keys[j].out)
	})

	total := len(samples)
	requestTypes := make([]core.RequestType, 0, len(keys))
	demand := make(core.Demand, len(keys))

	for _, k := range keys {
		id := fmt.Sprintf("req_in_%s_out_%s_tpot_%dms", sanitize(k.in), sanitize(k.out), sloMs)
		requestTypes = append(requestTypes, core.RequestType{
			ID:               id,
			InputSizeBucket:  k.in,
			OutputSizeBucket: k.out,
			SLOMs:            sloMs,
		})
		rate := (float64(counts[k]) / float64(total)) * totalRequestRate
		demand[id] = rate
	}

	return requestTypes, demand
}

func sanitize(bucket string) string {
	out := make([]byte, len(bucket))
	for i := 0; i < len(bucket); i++ {
		if bucket[i] == '-' {
			out[i] = '_'
		} else {
			out[i] = bucket[i]
		}
	}
	return string(out)
}

func bucketLowerBound(bucket string) int {
	var lo, hi int
	if _, err := fmt.Sscanf(bucket, "%d-%d", &lo, &hi); err != nil {
		return 0
	}
	return lo
}
