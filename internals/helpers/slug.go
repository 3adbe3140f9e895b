// file: internals/helpers/slug.go
package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// SlugOptions menentukan cara cek keunikan slug di DB.
type SlugOptions struct {
	// Nama tabel di DB, contoh: "class_offerings"
	Table string
	// Nama kolom slug, contoh: "class_offering_slug"
	SlugColumn string

	// Kolom soft-delete (NULL berarti belum terhapus). Kosongkan jika tidak pakai.
	SoftDeleteColumn string

	// Filter tambahan agar unik dalam scope tenant.
	// Misal: map[string]any{"class_offering_academy_id": academyID}
	Filters map[string]any

	// Panjang maksimal slug (termasuk suffix -2, -3, dst). 0 = DefaultSlugMaxLen.
	MaxLen int

	// Base fallback jika input kosong setelah dinormalisasi, contoh: "kelas".
	DefaultBase string
}

// GenerateSlug menormalkan string menjadi slug:
// lower-case, non-alnum jadi "-", collapse "-", trim ujung.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else {
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	out = regexp.MustCompile(`-+`).ReplaceAllString(out, "-")
	return out
}

func cutToLen(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func isTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}

	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)

	for k, v := range opts.Filters {
		q = q.Where(fmt.Sprintf("%s = ?", k), v)
	}
	if opts.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug membuat slug unik berbasis "base" (atau DefaultBase bila
// kosong), case-insensitive, hanya menghitung row yang belum soft-delete,
// dan unik dalam scope Filters. Bentrok → coba base-2, base-3, dst.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	slug := GenerateSlug(base)
	if slug == "" {
		slug = GenerateSlug(opts.DefaultBase)
	}
	if slug == "" {
		return "", errors.New("slug base kosong dan DefaultBase tidak diisi")
	}
	slug = cutToLen(slug, maxLen)

	taken, err := isTaken(db, opts, slug)
	if err != nil {
		return "", err
	}
	if !taken {
		return slug, nil
	}

	for i := 2; i <= 200; i++ {
		suffix := fmt.Sprintf("-%d", i)
		candidate := cutToLen(slug, maxLen-len(suffix)) + suffix
		taken, err := isTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("gagal menemukan slug unik")
}
