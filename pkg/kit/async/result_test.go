package async

import (
	"errors"
	"testing"
)

var (
	_ WithError[int]        = Result[int]{}
	_ ValueProvider[string] = Result[string]{}
)

func TestValueOr(t *testing.T) {
	t.Parallel()

	if got := ValueOr(Settle(7), -1); got != 7 {
		t.Fatalf("expected settled value 7, got %d", got)
	}
	if got := ValueOr(SettleErr[int](errors.New("boom")), -1); got != -1 {
		t.Fatalf("expected fallback -1, got %d", got)
	}
}

func TestResult_Accessors(t *testing.T) {
	t.Parallel()

	ok := Settle("v")
	if !ok.OK() || ok.Value() != "v" || ok.Err() != nil {
		t.Fatalf("unexpected settled result: %v / %v", ok.Value(), ok.Err())
	}
	if ok.SettledAt().IsZero() {
		t.Fatalf("expected a settlement time")
	}

	boom := errors.New("boom")
	failed := SettleErr[string](boom)
	if failed.OK() || !errors.Is(failed.Err(), boom) {
		t.Fatalf("unexpected failed result: %v / %v", failed.Value(), failed.Err())
	}
}
