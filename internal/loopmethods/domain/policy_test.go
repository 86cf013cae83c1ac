package domain

import "testing"

func TestEvaluateBoundary(t *testing.T) {
	rng := PlaybackRange{Start: 1, End: 50}

	tests := []struct {
		name         string
		kind         Kind
		frame        int
		rng          PlaybackRange
		wantCancel   bool
		wantRestore  bool
		wantJumpTo   *int
		wantResume   *bool
		wantBoundary Boundary
	}{
		{
			name:  "loop never acts at end",
			kind:  KindLoop,
			frame: 50,
			rng:   rng,
		},
		{
			name:  "loop never acts at start",
			kind:  KindLoop,
			frame: 1,
			rng:   rng,
		},
		{
			name:         "stop cancels at end frame",
			kind:         KindStop,
			frame:        50,
			rng:          rng,
			wantCancel:   true,
			wantBoundary: BoundaryEnd,
		},
		{
			name:  "stop ignores mid-range frames",
			kind:  KindStop,
			frame: 25,
			rng:   rng,
		},
		{
			name:  "stop ignores start frame",
			kind:  KindStop,
			frame: 1,
			rng:   rng,
		},
		{
			name:         "restore cancels with restore flag",
			kind:         KindStopRestore,
			frame:        50,
			rng:          rng,
			wantCancel:   true,
			wantRestore:  true,
			wantBoundary: BoundaryEnd,
		},
		{
			name:  "restore ignores mid-range frames",
			kind:  KindStopRestore,
			frame: 49,
			rng:   rng,
		},
		{
			name:         "jump start cancels then relocates",
			kind:         KindStopJumpStart,
			frame:        50,
			rng:          rng,
			wantCancel:   true,
			wantJumpTo:   intPtr(1),
			wantBoundary: BoundaryEnd,
		},
		{
			name:         "ping pong reverses at end",
			kind:         KindPingPong,
			frame:        50,
			rng:          rng,
			wantCancel:   true,
			wantResume:   boolPtr(true),
			wantBoundary: BoundaryEnd,
		},
		{
			name:         "ping pong resumes forward at start",
			kind:         KindPingPong,
			frame:        1,
			rng:          rng,
			wantCancel:   true,
			wantResume:   boolPtr(false),
			wantBoundary: BoundaryStart,
		},
		{
			name:  "ping pong ignores mid-range frames",
			kind:  KindPingPong,
			frame: 25,
			rng:   rng,
		},
		{
			name:         "ping pong degrades to stop on degenerate range",
			kind:         KindPingPong,
			frame:        10,
			rng:          PlaybackRange{Start: 10, End: 10},
			wantCancel:   true,
			wantBoundary: BoundaryEnd,
		},
		{
			name:  "ping pong off-boundary on degenerate range",
			kind:  KindPingPong,
			frame: 11,
			rng:   PlaybackRange{Start: 10, End: 10},
		},
		{
			name:         "stop on degenerate range cancels at the single frame",
			kind:         KindStop,
			frame:        10,
			rng:          PlaybackRange{Start: 10, End: 10},
			wantCancel:   true,
			wantBoundary: BoundaryEnd,
		},
		{
			name:  "unknown kind behaves like loop",
			kind:  Kind(99),
			frame: 50,
			rng:   rng,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := EvaluateBoundary(tt.kind, tt.frame, tt.rng)

			if plan.Cancel != tt.wantCancel {
				t.Errorf("Cancel = %v, want %v", plan.Cancel, tt.wantCancel)
			}
			if plan.RestoreOrigin != tt.wantRestore {
				t.Errorf("RestoreOrigin = %v, want %v", plan.RestoreOrigin, tt.wantRestore)
			}
			if !intPtrEqual(plan.JumpTo, tt.wantJumpTo) {
				t.Errorf("JumpTo = %v, want %v", fmtIntPtr(plan.JumpTo), fmtIntPtr(tt.wantJumpTo))
			}
			if !boolPtrEqual(plan.Resume, tt.wantResume) {
				t.Errorf("Resume = %v, want %v", plan.Resume, tt.wantResume)
			}
			if plan.Boundary != tt.wantBoundary {
				t.Errorf("Boundary = %v, want %v", plan.Boundary, tt.wantBoundary)
			}
			if plan.None() == plan.Cancel {
				t.Errorf("None() = %v inconsistent with Cancel = %v", plan.None(), plan.Cancel)
			}
		})
	}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtIntPtr(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
