// file: internals/features/reservations/dto/reservation_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_Normalize(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	start := time.Date(2026, time.March, 10, 16, 0, 0, 0, jakarta)

	t.Run("waktu dinormalisasi ke UTC", func(t *testing.T) {
		r := CreateReservationRequest{StartTime: start, EndTime: start.Add(time.Hour)}
		r.Normalize()
		assert.Equal(t, time.UTC, r.StartTime.Location())
		assert.Equal(t, time.UTC, r.EndTime.Location())
		assert.True(t, r.StartTime.Equal(start))
	})

	t.Run("purpose kosong jadi nil", func(t *testing.T) {
		empty := "   "
		r := CreateReservationRequest{Purpose: &empty}
		r.Normalize()
		assert.Nil(t, r.Purpose)
	})

	t.Run("purpose dirapikan", func(t *testing.T) {
		p := "  rapat panitia  "
		r := CreateReservationRequest{Purpose: &p}
		r.Normalize()
		assert.Equal(t, "rapat panitia", *r.Purpose)
	})

	t.Run("attendees minimal 1", func(t *testing.T) {
		r := CreateReservationRequest{Attendees: 0}
		r.Normalize()
		assert.Equal(t, 1, r.Attendees)
	})
}

func TestListReservationsQuery_Normalize(t *testing.T) {
	q := ListReservationsQuery{Status: "  Confirmed ", RoomID: " abc "}
	q.Normalize()
	assert.Equal(t, "confirmed", q.Status)
	assert.Equal(t, "abc", q.RoomID)
}
