package destruction

import (
	"testing"
	"time"

	"github.com/louisbranch/flotilla.space/internal/services/game/domain/forces"
)

var reconcileNow = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

func TestIsDestroyed(t *testing.T) {
	tests := []struct {
		name string
		unit forces.Unit
		want bool
	}{
		{name: "undamaged", unit: forces.Unit{DamagePoints: 3, CurrentDamage: []bool{false, false, false}}, want: false},
		{name: "partial", unit: forces.Unit{DamagePoints: 3, CurrentDamage: []bool{true, true, false}}, want: false},
		{name: "at capacity", unit: forces.Unit{DamagePoints: 3, CurrentDamage: []bool{true, true, true}}, want: true},
		{name: "over capacity", unit: forces.Unit{DamagePoints: 2, CurrentDamage: []bool{true, true, true}}, want: true},
		{name: "zero capacity", unit: forces.Unit{DamagePoints: 0, CurrentDamage: nil}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDestroyed(tt.unit); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsTaskForceDestroyed(t *testing.T) {
	units := []forces.Unit{
		{ID: "u1", TaskForceID: "tf1", DamagePoints: 1, CurrentDamage: []bool{true}},
		{ID: "u2", TaskForceID: "tf1", DamagePoints: 2, CurrentDamage: []bool{true, true}},
		{ID: "u3", TaskForceID: "tf2", DamagePoints: 2, CurrentDamage: []bool{true, false}},
	}

	if !IsTaskForceDestroyed(units, "tf1") {
		t.Fatal("expected tf1 with all members destroyed to be destroyed")
	}
	if IsTaskForceDestroyed(units, "tf2") {
		t.Fatal("expected tf2 with a surviving member to not be destroyed")
	}
	// Zero assigned units is not annihilation.
	if IsTaskForceDestroyed(units, "tf-empty") {
		t.Fatal("expected empty task force to not be destroyed")
	}
}

func TestReconcileNewDestructionCapturesContext(t *testing.T) {
	units := []forces.Unit{
		{ID: "u1", Name: "K-219", Type: "SSBN", Faction: forces.FactionRed, TaskForceID: "tf1", DamagePoints: 2, CurrentDamage: []bool{true, true}},
	}
	taskForces := []forces.TaskForce{{ID: "tf1", Name: "Northern Patrol", OperationalAreaID: "oa1"}}
	areas := []forces.OperationalArea{{ID: "oa1", Name: "Barents Shelf"}}

	delta := Reconcile(units, taskForces, areas, nil, reconcileNow)
	if !delta.Changed {
		t.Fatal("expected log change")
	}
	if len(delta.Destroyed) != 1 || len(delta.Log) != 1 {
		t.Fatalf("expected one new entry, got destroyed=%d log=%d", len(delta.Destroyed), len(delta.Log))
	}
	entry := delta.Log[0]
	if entry.UnitID != "u1" || entry.UnitName != "K-219" || entry.UnitType != "SSBN" {
		t.Fatalf("unexpected entry identity %+v", entry)
	}
	if entry.TaskForceName != "Northern Patrol" || entry.OperationalAreaName != "Barents Shelf" {
		t.Fatalf("expected resolved context, got %+v", entry)
	}
	if !entry.Timestamp.Equal(reconcileNow) {
		t.Fatalf("expected timestamp %v, got %v", reconcileNow, entry.Timestamp)
	}
}

func TestReconcileRoundTrip(t *testing.T) {
	unit := forces.Unit{ID: "u1", Name: "Ticonderoga", DamagePoints: 2, CurrentDamage: []bool{true, true}}

	// Destruction.
	delta := Reconcile([]forces.Unit{unit}, nil, nil, nil, reconcileNow)
	if !delta.Changed || len(delta.Destroyed) != 1 {
		t.Fatalf("expected one destruction, got %+v", delta)
	}

	// Same state again: no change.
	delta = Reconcile([]forces.Unit{unit}, nil, nil, delta.Log, reconcileNow)
	if delta.Changed {
		t.Fatal("expected no change on unchanged state")
	}
	if len(delta.Log) != 1 {
		t.Fatalf("expected entry retained, got %d", len(delta.Log))
	}

	// Revival removes the entry.
	unit.CurrentDamage = []bool{true, false}
	delta = Reconcile([]forces.Unit{unit}, nil, nil, delta.Log, reconcileNow)
	if !delta.Changed {
		t.Fatal("expected change on revival")
	}
	if len(delta.Revived) != 1 || delta.Revived[0] != "u1" {
		t.Fatalf("expected u1 revived, got %v", delta.Revived)
	}
	if len(delta.Log) != 0 {
		t.Fatalf("expected entry removed, got %v", delta.Log)
	}

	// Same healthy state again: no change.
	delta = Reconcile([]forces.Unit{unit}, nil, nil, delta.Log, reconcileNow)
	if delta.Changed {
		t.Fatal("expected no change on healthy state")
	}
}

func TestReconcileKeepsEntriesForMissingUnits(t *testing.T) {
	log := []Entry{{UnitID: "gone", UnitName: "Scrapped"}}

	delta := Reconcile(nil, nil, nil, log, reconcileNow)
	if delta.Changed {
		t.Fatal("expected no change for missing unit")
	}
	if len(delta.Log) != 1 || delta.Log[0].UnitID != "gone" {
		t.Fatalf("expected entry retained, got %v", delta.Log)
	}
}

func TestReconcileContextFallsBackWithoutTaskForce(t *testing.T) {
	units := []forces.Unit{{ID: "u1", Name: "Orphan", DamagePoints: 1, CurrentDamage: []bool{true}}}

	delta := Reconcile(units, nil, nil, nil, reconcileNow)
	entry := delta.Log[0]
	if entry.TaskForceID != "" || entry.OperationalAreaID != "" {
		t.Fatalf("expected empty context, got %+v", entry)
	}
}

func TestDestroyedSet(t *testing.T) {
	units := []forces.Unit{
		{ID: "u1", DamagePoints: 1, CurrentDamage: []bool{true}},
		{ID: "u2", DamagePoints: 2, CurrentDamage: []bool{true, false}},
	}
	destroyed := DestroyedSet(units)
	if !destroyed["u1"] || destroyed["u2"] {
		t.Fatalf("unexpected destroyed set %v", destroyed)
	}
}
