// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	t.Run("halaman pertama", func(t *testing.T) {
		p := BuildPaginationFromOffset(45, 0, 20)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
		assert.Equal(t, int64(45), p.Total)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("halaman terakhir", func(t *testing.T) {
		p := BuildPaginationFromOffset(45, 40, 20)
		assert.Equal(t, 3, p.Page)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("data kosong", func(t *testing.T) {
		p := BuildPaginationFromOffset(0, 0, 20)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("limit nol pakai default", func(t *testing.T) {
		p := BuildPaginationFromOffset(10, 0, 0)
		assert.Equal(t, 20, p.PerPage)
	})
}
