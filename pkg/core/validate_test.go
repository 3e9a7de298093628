package core

import "testing"

func TestValidateRequest(t *testing.T) {
	baseWorkers := []WorkerConfig{{ID: "w1", Cost: 1.0}}
	baseTypes := []RequestType{{ID: "rt1"}}

	tests := []struct {
		name         string
		workers      []WorkerConfig
		requestTypes []RequestType
		demand       Demand
		profile      Profile
		sliceFactor  int
		wantKind     Kind
		wantErr      bool
	}{
		{
			name:         "valid minimal request",
			workers:      baseWorkers,
			requestTypes: baseTypes,
			demand:       Demand{"rt1": 10},
			profile:      Profile{{"w1", "rt1"}: 5},
			sliceFactor:  2,
			wantErr:      false,
		},
		{
			name:         "no workers",
			workers:      nil,
			requestTypes: baseTypes,
			sliceFactor:  1,
			wantKind:     KindInvalidInput,
			wantErr:      true,
		},
		{
			name:         "no request types",
			workers:      baseWorkers,
			requestTypes: nil,
			sliceFactor:  1,
			wantKind:     KindInvalidInput,
			wantErr:      true,
		},
		{
			name:         "slice factor too small",
			workers:      baseWorkers,
			requestTypes: baseTypes,
			sliceFactor:  0,
			wantKind:     KindInvalidInput,
			wantErr:      true,
		},
		{
			name:         "negative cost",
			workers:      []WorkerConfig{{ID: "w1", Cost: -1}},
			requestTypes: baseTypes,
			sliceFactor:  1,
			wantKind:     KindInvalidInput,
			wantErr:      true,
		},
		{
			name:         "demand references unknown request type",
			workers:      baseWorkers,
			requestTypes: baseTypes,
			demand:       Demand{"missing": 1},
			sliceFactor:  1,
			wantKind:     KindUnknownRequestType,
			wantErr:      true,
		},
		{
			name:         "profile references unknown worker",
			workers:      baseWorkers,
			requestTypes: baseTypes,
			profile:      Profile{{"missing", "rt1"}: 1},
			sliceFactor:  1,
			wantKind:     KindUnknownWorker,
			wantErr:      true,
		},
		{
			name:         "duplicate worker id",
			workers:      []WorkerConfig{{ID: "w1"}, {ID: "w1"}},
			requestTypes: baseTypes,
			sliceFactor:  1,
			wantKind:     KindInvalidInput,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.workers, tt.requestTypes, tt.demand, tt.profile, tt.sliceFactor)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				ve, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if ve.Kind != tt.wantKind {
					t.Fatalf("expected kind %v, got %v", tt.wantKind, ve.Kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
