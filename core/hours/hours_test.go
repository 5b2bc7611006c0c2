package hours

import (
	"testing"

	"github.com/glintclean/weekplan/core/model"
)

func TestDefault_Valid(t *testing.T) {
	table := Default()
	if err := table.Validate(); err != nil {
		t.Fatalf("default table should validate: %v", err)
	}
	if table.Clock(0) != 8 || table.Clock(9) != 17 {
		t.Errorf("unexpected clock mapping: %d, %d", table.Clock(0), table.Clock(9))
	}
}

func TestDayVector(t *testing.T) {
	table := Default()
	vector := table.DayVector(model.Morning | model.Afternoon)
	want := []bool{true, true, true, false, false, false, true, true, true, true}
	if len(vector) != len(want) {
		t.Fatalf("vector length %d, want %d", len(vector), len(want))
	}
	for i := range want {
		if vector[i] != want[i] {
			t.Errorf("hour %d = %v, want %v", i, vector[i], want[i])
		}
	}

	empty := table.DayVector(model.WindowNone)
	for i, v := range empty {
		if v {
			t.Errorf("hour %d should be unavailable", i)
		}
	}
}

func TestValidate_Overlap(t *testing.T) {
	table := Table{
		PerDay: 4,
		Windows: map[model.TimeWindow][]int{
			model.Morning: {0, 1},
			model.Noon:    {1, 2},
		},
	}
	if err := table.Validate(); err == nil {
		t.Fatalf("expected overlap error")
	}
}

func TestValidate_OutOfRange(t *testing.T) {
	table := Table{
		PerDay: 4,
		Windows: map[model.TimeWindow][]int{
			model.Morning: {0, 4},
		},
	}
	if err := table.Validate(); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}
