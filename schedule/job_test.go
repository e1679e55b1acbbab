package schedule

import (
	"context"
	"errors"
	"testing"
)

func TestFunctionJobSuccess(t *testing.T) {
	job := NewFunctionJob(NewJobKey("double"), func(context.Context) (int, error) {
		return 42, nil
	})
	if err := job.Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if job.Status != OK {
		t.Fatalf("Status = %v, want OK", job.Status)
	}
	if job.Result == nil || *job.Result != 42 {
		t.Fatalf("Result = %v, want 42", job.Result)
	}
}

func TestFunctionJobFailure(t *testing.T) {
	wantErr := errors.New("boom")
	job := NewFunctionJob(NewJobKey("fails"), func(context.Context) (int, error) {
		return 0, wantErr
	})
	if err := job.Execute(context.Background()); err != wantErr {
		t.Fatalf("Execute error = %v, want %v", err, wantErr)
	}
	if job.Status != Failed {
		t.Fatalf("Status = %v, want Failed", job.Status)
	}
	if job.Result != nil {
		t.Fatalf("Result should be nil after failure, got %v", *job.Result)
	}
}

func TestJobKeyGroupDefaulting(t *testing.T) {
	k1 := NewJobKey("alpha")
	k2 := NewJobKeyWithGroup("alpha", "")
	if k1.String() != k2.String() {
		t.Fatalf("an empty group should default the same as NewJobKey: %q vs %q", k1, k2)
	}
	if k1.Group() != "default" {
		t.Fatalf("Group() = %q, want \"default\"", k1.Group())
	}
}

func TestFunctionJobKeyIsStableForSameJobKey(t *testing.T) {
	a := NewFunctionJob(NewJobKey("same"), func(context.Context) (int, error) { return 1, nil })
	b := NewFunctionJob(NewJobKey("same"), func(context.Context) (int, error) { return 2, nil })
	if a.Key() != b.Key() {
		t.Fatalf("two FunctionJobs built from the same JobKey should hash equal: %d vs %d", a.Key(), b.Key())
	}
}
