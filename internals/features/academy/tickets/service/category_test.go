package service

import (
	"testing"

	"studioku_backend/internals/constants"
)

func strPtr(s string) *string { return &s }

func catPtr(c constants.ClassCategory) *constants.ClassCategory { return &c }

func TestResolveCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		explicit *constants.ClassCategory
		group    *string
		isCoupon bool
		want     constants.ClassCategory
	}{
		{
			name:     "tag eksplisit menang atas legacy yang konflik",
			explicit: catPtr(constants.CategoryWorkshop),
			group:    strPtr("regular"),
			isCoupon: true,
			want:     constants.CategoryWorkshop,
		},
		{
			name:     "tag eksplisit popup",
			explicit: catPtr(constants.CategoryPopup),
			want:     constants.CategoryPopup,
		},
		{
			name:  "fallback ke access group regular",
			group: strPtr("regular"),
			want:  constants.CategoryRegular,
		},
		{
			name:  "access group ejaan lokal",
			group: strPtr("Reguler"),
			want:  constants.CategoryRegular,
		},
		{
			name:  "access group popup dengan strip",
			group: strPtr("pop-up"),
			want:  constants.CategoryPopup,
		},
		{
			name:  "access group workshop singkatan",
			group: strPtr("WS"),
			want:  constants.CategoryWorkshop,
		},
		{
			name:     "kupon count-based tanpa group dikenal",
			group:    strPtr("lama-banget"),
			isCoupon: true,
			want:     constants.CategoryPopup,
		},
		{
			name:     "kupon count-based tanpa group sama sekali",
			isCoupon: true,
			want:     constants.CategoryPopup,
		},
		{
			name: "tidak ada apa-apa, default regular",
			want: constants.CategoryRegular,
		},
		{
			name:  "group tidak dikenal dan bukan kupon, default regular",
			group: strPtr("vip"),
			want:  constants.CategoryRegular,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveCategory(tt.explicit, tt.group, tt.isCoupon)
			if got != tt.want {
				t.Errorf("ResolveCategory = %q, want %q", got, tt.want)
			}
		})
	}
}
