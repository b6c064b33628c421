package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1000, 1000*(1+1e-13), 1e-12) {
		t.Fatal("relative comparison failed")
	}
	if NearlyEqual(1, 1.001, 1e-6) {
		t.Fatal("values 1e-3 apart reported equal")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("default epsilon not applied")
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v, want 20", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("LinearToDB(0) should be -Inf")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("LinearToDB(-1) should be NaN")
	}
}

func TestLinearPowerToDB(t *testing.T) {
	if got := LinearPowerToDB(100); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearPowerToDB(100) = %v, want 20", got)
	}
	if !math.IsInf(LinearPowerToDB(0), -1) {
		t.Fatal("LinearPowerToDB(0) should be -Inf")
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite(1, 2, 3) {
		t.Fatal("finite values rejected")
	}
	if AllFinite(1, math.Inf(1)) || AllFinite(math.NaN()) {
		t.Fatal("non-finite values accepted")
	}
}
