package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDates(t *testing.T) {
	t.Parallel()

	jan := func(d int) time.Time { return date(2024, time.January, d) }

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		weekdays []int
		interval int
		want     []time.Time
	}{
		{
			// 2024-01-01 = Senin
			name:     "mingguan Senin-Rabu sepanjang Januari",
			start:    jan(1),
			end:      jan(31),
			weekdays: []int{1, 3},
			interval: 1,
			want:     []time.Time{jan(1), jan(3), jan(8), jan(10), jan(15), jan(17), jan(22), jan(24), jan(29), jan(31)},
		},
		{
			name:     "interval dua minggu melewati minggu genap",
			start:    jan(1),
			end:      jan(31),
			weekdays: []int{1, 3},
			interval: 2,
			want:     []time.Time{jan(1), jan(3), jan(15), jan(17), jan(29), jan(31)},
		},
		{
			name:     "start bukan hari yang dipilih, normalisasi ke match pertama",
			start:    jan(2), // Selasa
			end:      jan(16),
			weekdays: []int{1}, // Senin
			interval: 1,
			want:     []time.Time{jan(8), jan(15)},
		},
		{
			name:     "endDate sendiri termasuk bila memenuhi syarat",
			start:    jan(1),
			end:      jan(8),
			weekdays: []int{1},
			interval: 1,
			want:     []time.Time{jan(1), jan(8)},
		},
		{
			name:     "weekday set kosong menghasilkan kosong",
			start:    jan(1),
			end:      jan(31),
			weekdays: nil,
			interval: 1,
			want:     nil,
		},
		{
			name:     "endDate sebelum startDate menghasilkan kosong",
			start:    jan(31),
			end:      jan(1),
			weekdays: []int{1, 3},
			interval: 1,
			want:     nil,
		},
		{
			name:     "satu hari yang cocok",
			start:    jan(7), // Minggu
			end:      jan(7),
			weekdays: []int{0},
			interval: 1,
			want:     []time.Time{jan(7)},
		},
		{
			name:     "interval nol dianggap satu",
			start:    jan(1),
			end:      jan(15),
			weekdays: []int{1},
			interval: 0,
			want:     []time.Time{jan(1), jan(8), jan(15)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GenerateDates(tt.start, tt.end, tt.weekdays, tt.interval)
			if len(got) != len(tt.want) {
				t.Fatalf("jumlah tanggal = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("tanggal[%d] = %s, want %s", i, got[i].Format("2006-01-02"), tt.want[i].Format("2006-01-02"))
				}
			}
		})
	}
}

func TestGenerateDates_Determinism(t *testing.T) {
	t.Parallel()

	start := date(2024, time.March, 1)
	end := date(2024, time.May, 31)
	weekdays := []int{2, 5, 6}

	first := GenerateDates(start, end, weekdays, 3)
	for i := 0; i < 5; i++ {
		again := GenerateDates(start, end, weekdays, 3)
		if len(again) != len(first) {
			t.Fatalf("hasil tidak deterministik: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if !again[j].Equal(first[j]) {
				t.Fatalf("hasil tidak deterministik pada index %d", j)
			}
		}
	}
}

func TestGenerateDates_Properties(t *testing.T) {
	t.Parallel()

	start := date(2024, time.February, 3)
	end := date(2024, time.June, 30)
	weekdays := []int{1, 4}
	got := GenerateDates(start, end, weekdays, 2)

	if len(got) == 0 {
		t.Fatal("tidak ada tanggal dihasilkan")
	}

	inSet := map[time.Weekday]bool{time.Monday: true, time.Thursday: true}
	perWeekday := map[time.Weekday][]time.Time{}
	for i, d := range got {
		if !inSet[d.Weekday()] {
			t.Errorf("tanggal %s bukan anggota weekday set", d.Format("2006-01-02"))
		}
		if d.Before(start) || d.After(end) {
			t.Errorf("tanggal %s di luar rentang", d.Format("2006-01-02"))
		}
		if i > 0 && !got[i-1].Before(d) {
			t.Errorf("urutan tidak ascending pada index %d", i)
		}
		perWeekday[d.Weekday()] = append(perWeekday[d.Weekday()], d)
	}

	// interval 2: tanggal berurutan untuk weekday yang sama selalu 14 hari
	for wd, ds := range perWeekday {
		for i := 1; i < len(ds); i++ {
			if diff := ds[i].Sub(ds[i-1]); diff != 14*24*time.Hour {
				t.Errorf("weekday %v: jarak %v, want 336h", wd, diff)
			}
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("WIB", 7*60*60)
	d := date(2024, time.January, 10)
	tod, _ := time.Parse("15:04", "19:30")

	got := CombineDateTime(d, tod, loc)
	want := time.Date(2024, time.January, 10, 19, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("CombineDateTime = %v, want %v", got, want)
	}
}
