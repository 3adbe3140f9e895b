package service

import (
	"testing"

	"github.com/google/uuid"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func TestBuildRelinkPlan(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	avail := ids(4)

	t.Run("dedup pilihan duplikat", func(t *testing.T) {
		t.Parallel()
		sel := []uuid.UUID{avail[0], avail[1], avail[0], avail[1], avail[0]}
		plan := BuildRelinkPlan(owner, sel, avail)
		if len(plan.Selected) != 2 {
			t.Fatalf("selected = %d, want 2", len(plan.Selected))
		}
		if plan.IsGeneral {
			t.Error("subset tidak boleh jadi general")
		}
		if plan.EmptySelection {
			t.Error("pilihan non-kosong tidak boleh ditandai kosong")
		}
	})

	t.Run("plan identik untuk input sama (idempoten)", func(t *testing.T) {
		t.Parallel()
		sel := []uuid.UUID{avail[2], avail[1]}
		p1 := BuildRelinkPlan(owner, sel, avail)
		p2 := BuildRelinkPlan(owner, sel, avail)
		if len(p1.Selected) != len(p2.Selected) {
			t.Fatalf("plan tidak konsisten: %d vs %d", len(p1.Selected), len(p2.Selected))
		}
		for i := range p1.Selected {
			if p1.Selected[i] != p2.Selected[i] {
				t.Fatalf("plan tidak konsisten pada index %d", i)
			}
		}
	})

	t.Run("semua counterpart dipilih → general tanpa link eksplisit", func(t *testing.T) {
		t.Parallel()
		plan := BuildRelinkPlan(owner, avail, avail)
		if !plan.IsGeneral {
			t.Fatal("harusnya general")
		}
		if len(plan.Selected) != 0 {
			t.Errorf("general tidak boleh menyimpan link eksplisit, ada %d", len(plan.Selected))
		}
	})

	t.Run("jumlah sama tapi bukan subset dari available → bukan general", func(t *testing.T) {
		t.Parallel()
		sel := append(ids(3), avail[0])
		plan := BuildRelinkPlan(owner, sel, avail)
		if plan.IsGeneral {
			t.Error("pilihan di luar available tidak boleh jadi general")
		}
		if len(plan.Selected) != 4 {
			t.Errorf("selected = %d, want 4", len(plan.Selected))
		}
	})

	t.Run("pilihan kosong valid tapi ditandai warning", func(t *testing.T) {
		t.Parallel()
		plan := BuildRelinkPlan(owner, nil, avail)
		if !plan.EmptySelection {
			t.Error("pilihan kosong harus ditandai EmptySelection")
		}
		if plan.IsGeneral {
			t.Error("pilihan kosong bukan general")
		}
		if len(plan.Selected) != 0 {
			t.Errorf("selected = %d, want 0", len(plan.Selected))
		}
	})

	t.Run("available kosong tidak pernah general", func(t *testing.T) {
		t.Parallel()
		plan := BuildRelinkPlan(owner, nil, nil)
		if plan.IsGeneral {
			t.Error("tanpa counterpart tersedia, general tidak boleh aktif")
		}
	})

	t.Run("uuid Nil dibuang dari pilihan", func(t *testing.T) {
		t.Parallel()
		sel := []uuid.UUID{uuid.Nil, avail[0], uuid.Nil}
		plan := BuildRelinkPlan(owner, sel, avail)
		if len(plan.Selected) != 1 || plan.Selected[0] != avail[0] {
			t.Errorf("selected = %v, want hanya %s", plan.Selected, avail[0])
		}
	})
}
