package core

// ValidateRequest cross-checks a solve request's workers, request types,
// demand, and profile against each other before any slicing or solving is
// attempted. It returns the first defect found; callers that want every
// defect at once should call it in a loop after fixing each in turn, as
// the teacher's own config validation does.
func ValidateRequest(workers []WorkerConfig, requestTypes []RequestType, demand Demand, profile Profile, sliceFactor int) error {
	if len(workers) == 0 {
		return newValidationError(KindInvalidInput, "workers", "at least one worker is required")
	}
	if len(requestTypes) == 0 {
		return newValidationError(KindInvalidInput, "requestTypes", "at least one request type is required")
	}
	if sliceFactor < 1 {
		return newValidationError(KindInvalidInput, "sliceFactor", "must be >= 1, got %d", sliceFactor)
	}

	workerIDs := make(map[string]struct{}, len(workers))
	for _, w := range workers {
		if w.ID == "" {
			return newValidationError(KindInvalidInput, "workers[].id", "empty worker id")
		}
		if _, dup := workerIDs[w.ID]; dup {
			return newValidationError(KindInvalidInput, "workers[].id", "duplicate worker id %q", w.ID)
		}
		workerIDs[w.ID] = struct{}{}
		if w.Cost < 0 {
			return newValidationError(KindInvalidInput, "workers[].cost", "negative cost for worker %q", w.ID)
		}
		if w.MaxLimit != nil && *w.MaxLimit < 0 {
			return newValidationError(KindInvalidInput, "workers[].maxLimit", "negative maxLimit for worker %q", w.ID)
		}
	}

	requestTypeIDs := make(map[string]struct{}, len(requestTypes))
	for _, rt := range requestTypes {
		if rt.ID == "" {
			return newValidationError(KindInvalidInput, "requestTypes[].id", "empty request type id")
		}
		if _, dup := requestTypeIDs[rt.ID]; dup {
			return newValidationError(KindInvalidInput, "requestTypes[].id", "duplicate request type id %q", rt.ID)
		}
		requestTypeIDs[rt.ID] = struct{}{}
	}

	for id, rate := range demand {
		if _, ok := requestTypeIDs[id]; !ok {
			return newValidationError(KindUnknownRequestType, "demand", "demand references unknown request type %q", id)
		}
		if rate < 0 {
			return newValidationError(KindInvalidInput, "demand", "negative rate for request type %q", id)
		}
	}

	for key, maxTput := range profile {
		if _, ok := workerIDs[key.WorkerID]; !ok {
			return newValidationError(KindUnknownWorker, "profile", "profile references unknown worker %q", key.WorkerID)
		}
		if _, ok := requestTypeIDs[key.RequestTypeID]; !ok {
			return newValidationError(KindUnknownRequestType, "profile", "profile references unknown request type %q", key.RequestTypeID)
		}
		if maxTput < 0 {
			return newValidationError(KindInvalidInput, "profile", "negative max throughput for %v", key)
		}
	}

	return nil
}
