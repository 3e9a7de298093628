package core

import "sort"

// Catalog assigns a dense, contiguous integer handle to each worker id and
// request type id it has seen, in sorted order. The load matrix builder
// and the model builder index into plain slices by these handles instead
// of carrying string-keyed maps through their inner loops; the slicer
// works on string ids and does not use a Catalog.
type Catalog struct {
	workerIDs      []string
	workerIndex    map[string]int
	requestTypeIDs []string
	requestIndex   map[string]int
}

// NewCatalog builds a Catalog from the worker and request-type sets of a
// solve request. Both slices are copied and sorted by id so the resulting
// handle assignment is deterministic across runs of the same input.
func NewCatalog(workers []WorkerConfig, requestTypes []RequestType) *Catalog {
	workerIDs := make([]string, len(workers))
	for i, w := range workers {
		workerIDs[i] = w.ID
	}
	sort.Strings(workerIDs)

	requestTypeIDs := make([]string, len(requestTypes))
	for i, rt := range requestTypes {
		requestTypeIDs[i] = rt.ID
	}
	sort.Strings(requestTypeIDs)

	c := &Catalog{
		workerIDs:      workerIDs,
		workerIndex:    make(map[string]int, len(workerIDs)),
		requestTypeIDs: requestTypeIDs,
		requestIndex:   make(map[string]int, len(requestTypeIDs)),
	}
	for i, id := range workerIDs {
		c.workerIndex[id] = i
	}
	for i, id := range requestTypeIDs {
		c.requestIndex[id] = i
	}
	return c
}

// NumWorkers returns the number of distinct worker handles in the catalog.
func (c *Catalog) NumWorkers() int { return len(c.workerIDs) }

// NumRequestTypes returns the number of distinct request-type handles in
// the catalog.
func (c *Catalog) NumRequestTypes() int { return len(c.requestTypeIDs) }

// WorkerHandle returns the dense handle for a worker id, and false if the
// id is not in the catalog.
func (c *Catalog) WorkerHandle(id string) (int, bool) {
	h, ok := c.workerIndex[id]
	return h, ok
}

// RequestTypeHandle returns the dense handle for a request type id, and
// false if the id is not in the catalog.
func (c *Catalog) RequestTypeHandle(id string) (int, bool) {
	h, ok := c.requestIndex[id]
	return h, ok
}

// WorkerID returns the id behind a worker handle. Panics on an out-of-range
// handle, since handles are only ever produced by this Catalog.
func (c *Catalog) WorkerID(handle int) string { return c.workerIDs[handle] }

// RequestTypeID returns the id behind a request type handle. Panics on an
// out-of-range handle.
func (c *Catalog) RequestTypeID(handle int) string { return c.requestTypeIDs[handle] }
