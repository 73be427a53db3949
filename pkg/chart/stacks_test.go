package chart

import "testing"

func stackChart(series ...*Series) *Chart {
	return New(Config{Series: series})
}

func TestGetStacksReversePositional(t *testing.T) {
	a := &Series{Name: "a", Index: 0}
	b := &Series{Name: "b", Index: 1}
	d := &Series{Name: "c", Index: 2}
	reg := stackChart(a, b, d).GetStacks(false)

	if len(reg.Stacks) != 3 {
		t.Fatalf("got %d stacks, want 3", len(reg.Stacks))
	}
	wantKeys := map[string]*Series{"2": a, "1": b, "0": d}
	for key, s := range wantKeys {
		st := reg.Stacks[key]
		if st == nil {
			t.Fatalf("missing stack %q", key)
		}
		if len(st.Series) != 1 || st.Series[0] != s {
			t.Errorf("stack %q holds %d series, want only %s", key, len(st.Series), s.Name)
		}
	}
	if reg.Stacks["2"].Position != 1 || reg.Stacks["1"].Position != 2 || reg.Stacks["0"].Position != 3 {
		t.Errorf("positions = %d,%d,%d, want 1,2,3 in first-seen order",
			reg.Stacks["2"].Position, reg.Stacks["1"].Position, reg.Stacks["0"].Position)
	}
	if reg.TotalStacks != 4 {
		t.Errorf("TotalStacks = %d, want 4", reg.TotalStacks)
	}
}

func TestGetStacksGlobalStacking(t *testing.T) {
	a := &Series{Name: "a", Index: 0}
	b := &Series{Name: "b", Index: 1}
	d := &Series{Name: "c", Index: 2}
	reg := stackChart(a, b, d).GetStacks(true)

	if len(reg.Stacks) != 1 {
		t.Fatalf("got %d stacks, want 1", len(reg.Stacks))
	}
	st := reg.Stacks["0"]
	if st == nil || len(st.Series) != 3 {
		t.Fatalf("bucket 0 = %+v, want all three series", st)
	}
	for i, s := range []*Series{a, b, d} {
		if st.Series[i] != s {
			t.Errorf("bucket order [%d] = %s, want %s", i, st.Series[i].Name, s.Name)
		}
	}
	if st.Position != 1 || reg.TotalStacks != 2 {
		t.Errorf("position = %d, TotalStacks = %d, want 1 and 2", st.Position, reg.TotalStacks)
	}
}

func TestGetStacksExplicitIDs(t *testing.T) {
	a := &Series{Name: "a", Index: 0, Stack: "coal"}
	b := &Series{Name: "b", Index: 1, Stack: "solar"}
	d := &Series{Name: "c", Index: 2, Stack: "coal"}
	reg := stackChart(a, b, d).GetStacks(true)

	coal, solar := reg.Stacks["coal"], reg.Stacks["solar"]
	if coal == nil || solar == nil {
		t.Fatalf("stacks = %v, want coal and solar", reg.Stacks)
	}
	if len(coal.Series) != 2 || coal.Series[0] != a || coal.Series[1] != d {
		t.Errorf("coal bucket holds %d series, want a then c", len(coal.Series))
	}
	if coal.Position != 1 || solar.Position != 2 {
		t.Errorf("positions coal=%d solar=%d, want 1 and 2", coal.Position, solar.Position)
	}
	if reg.TotalStacks != 3 {
		t.Errorf("TotalStacks = %d, want 3", reg.TotalStacks)
	}
}

func TestGetStacksMixedExplicitAndDefault(t *testing.T) {
	a := &Series{Name: "a", Index: 0, Stack: "pinned"}
	b := &Series{Name: "b", Index: 1}
	d := &Series{Name: "c", Index: 2}
	reg := stackChart(a, b, d).GetStacks(true)

	if len(reg.Stacks) != 2 || reg.TotalStacks != 3 {
		t.Fatalf("stacks = %d, TotalStacks = %d, want 2 and 3", len(reg.Stacks), reg.TotalStacks)
	}
	if st := reg.Stacks["0"]; st == nil || len(st.Series) != 2 || st.Series[0] != b {
		t.Errorf("default bucket = %+v, want b then c", st)
	}
}

func TestGetStacksRebuiltPerCall(t *testing.T) {
	c := stackChart(&Series{Name: "a", Index: 0})
	first := c.GetStacks(false)
	first.Stacks["ghost"] = &Stack{Position: 99}
	if second := c.GetStacks(false); len(second.Stacks) != 1 {
		t.Errorf("second call sees %d stacks, want a fresh registry with 1", len(second.Stacks))
	}
}

func TestGetStacksNoSeries(t *testing.T) {
	reg := stackChart().GetStacks(false)
	if len(reg.Stacks) != 0 || reg.TotalStacks != 1 {
		t.Errorf("empty chart: %d stacks, total %d, want 0 and 1", len(reg.Stacks), reg.TotalStacks)
	}
}
