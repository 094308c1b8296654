// file: internals/features/reservations/service/admission_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomku_backend/internals/constants"
)

var baseTime = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func defaultConfig() AdmissionConfig {
	return AdmissionConfig{MinMinutes: 30, MaxMinutes: 120}
}

func request(role string, canOverride bool, minutes int) AdmissionRequest {
	return requestDur(role, canOverride, time.Duration(minutes)*time.Minute)
}

func requestDur(role string, canOverride bool, dur time.Duration) AdmissionRequest {
	return AdmissionRequest{
		RoomID:               uuid.New(),
		RequesterID:          uuid.New(),
		RequesterRole:        role,
		RequesterCanOverride: canOverride,
		StartTime:            baseTime,
		EndTime:              baseTime.Add(dur),
		Attendees:            1,
	}
}

func conflict(ownerRole string, ownerCanOverride bool) ConflictingReservation {
	return ConflictingReservation{
		ReservationID:    uuid.New(),
		OwnerID:          uuid.New(),
		OwnerRole:        ownerRole,
		OwnerCanOverride: ownerCanOverride,
	}
}

/* =======================================================
   OVERLAP SEMANTICS
   ======================================================= */

func TestOverlaps(t *testing.T) {
	at := func(m int) time.Time { return baseTime.Add(time.Duration(m) * time.Minute) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identik", at(0), at(60), at(0), at(60), true},
		{"sebagian di depan", at(0), at(60), at(30), at(90), true},
		{"sebagian di belakang", at(30), at(90), at(0), at(60), true},
		{"satu di dalam yang lain", at(0), at(120), at(30), at(60), true},
		{"bersentuhan di ujung TIDAK overlap", at(0), at(60), at(60), at(120), false},
		{"bersentuhan di awal TIDAK overlap", at(60), at(120), at(0), at(60), false},
		{"terpisah", at(0), at(30), at(60), at(90), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// simetris
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

/* =======================================================
   GATE ROLE
   ======================================================= */

func TestDecide_RoleGate(t *testing.T) {
	for _, role := range []string{constants.RoleUser, constants.RoleStudent} {
		t.Run(role, func(t *testing.T) {
			d := Decide(request(role, false, 60), defaultConfig(), nil)
			assert.Equal(t, OutcomeReject, d.Outcome)
			assert.Equal(t, fiber.StatusForbidden, d.RejectStatus)
			assert.Equal(t, MsgRoleCannotBookDirectly, d.RejectMessage)
		})
	}

	for _, role := range []string{constants.RoleInstructor, constants.RoleAdmin} {
		t.Run(role, func(t *testing.T) {
			d := Decide(request(role, false, 60), defaultConfig(), nil)
			assert.Equal(t, OutcomeAdmit, d.Outcome)
		})
	}
}

/* =======================================================
   GATE DURASI
   ======================================================= */

func TestDecide_DurationGate(t *testing.T) {
	t.Run("kurang dari minimum", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, false, 15), defaultConfig(), nil)
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Equal(t, fiber.StatusBadRequest, d.RejectStatus)
		assert.Contains(t, d.RejectMessage, "minimum 30 menit")
	})

	t.Run("melebihi maksimum", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, false, 180), defaultConfig(), nil)
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Equal(t, fiber.StatusBadRequest, d.RejectStatus)
		assert.Contains(t, d.RejectMessage, "maksimum 120 menit")
	})

	t.Run("tepat di batas minimum", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, false, 30), defaultConfig(), nil)
		assert.Equal(t, OutcomeAdmit, d.Outcome)
	})

	t.Run("tepat di batas maksimum", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, false, 120), defaultConfig(), nil)
		assert.Equal(t, OutcomeAdmit, d.Outcome)
	})

	t.Run("lewat maksimum kurang dari semenit tetap ditolak", func(t *testing.T) {
		d := Decide(requestDur(constants.RoleInstructor, false, 120*time.Minute+59*time.Second), defaultConfig(), nil)
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Contains(t, d.RejectMessage, "maksimum 120 menit")
	})

	t.Run("kurang dari minimum sedetik pun ditolak", func(t *testing.T) {
		d := Decide(requestDur(constants.RoleInstructor, false, 29*time.Minute+59*time.Second), defaultConfig(), nil)
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Contains(t, d.RejectMessage, "minimum 30 menit")
	})

	t.Run("gate role duluan sebelum durasi", func(t *testing.T) {
		d := Decide(request(constants.RoleUser, false, 15), defaultConfig(), nil)
		assert.Equal(t, fiber.StatusForbidden, d.RejectStatus)
		assert.Equal(t, MsgRoleCannotBookDirectly, d.RejectMessage)
	})
}

/* =======================================================
   TABEL KEPUTUSAN OVERRIDE
   ======================================================= */

func TestDecide_OverrideDecisionTable(t *testing.T) {
	cfg := defaultConfig()

	t.Run("instructor tanpa grant vs konflik → reject generic", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, false, 60), cfg,
			[]ConflictingReservation{conflict(constants.RoleInstructor, false)})
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Equal(t, fiber.StatusBadRequest, d.RejectStatus)
		assert.Equal(t, MsgRoomAlreadyReserved, d.RejectMessage)
	})

	t.Run("admin vs konflik → reject, admin tidak override", func(t *testing.T) {
		d := Decide(request(constants.RoleAdmin, false, 60), cfg,
			[]ConflictingReservation{conflict(constants.RoleInstructor, false)})
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Equal(t, MsgRoomAlreadyReserved, d.RejectMessage)
	})

	t.Run("instructor dengan grant vs instructor biasa → override", func(t *testing.T) {
		target := conflict(constants.RoleInstructor, false)
		d := Decide(request(constants.RoleInstructor, true, 60), cfg,
			[]ConflictingReservation{target})
		require.Equal(t, OutcomeAdmitWithOverride, d.Outcome)
		require.Len(t, d.OverrideTargets, 1)
		assert.Equal(t, target.ReservationID, d.OverrideTargets[0].ReservationID)
	})

	t.Run("instructor dengan grant vs sesama privileged → reject privileged", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, true, 60), cfg,
			[]ConflictingReservation{conflict(constants.RoleInstructor, true)})
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Equal(t, MsgPrivilegedConflict, d.RejectMessage)
	})

	t.Run("instructor dengan grant vs admin → reject generic", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, true, 60), cfg,
			[]ConflictingReservation{conflict(constants.RoleAdmin, false)})
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Equal(t, MsgRoomAlreadyReserved, d.RejectMessage)
	})
}

/* =======================================================
   MULTI-KONFLIK: semua harus bisa di-override
   ======================================================= */

func TestDecide_MultipleConflicts(t *testing.T) {
	cfg := defaultConfig()

	t.Run("semua overridable → override semuanya", func(t *testing.T) {
		c1 := conflict(constants.RoleInstructor, false)
		c2 := conflict(constants.RoleInstructor, false)
		d := Decide(request(constants.RoleInstructor, true, 60), cfg,
			[]ConflictingReservation{c1, c2})
		require.Equal(t, OutcomeAdmitWithOverride, d.Outcome)
		require.Len(t, d.OverrideTargets, 2)
	})

	t.Run("satu saja tidak overridable → reject semuanya", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, true, 60), cfg,
			[]ConflictingReservation{
				conflict(constants.RoleInstructor, false),
				conflict(constants.RoleAdmin, false),
			})
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Empty(t, d.OverrideTargets)
	})

	t.Run("satu privileged di antara yang biasa → reject privileged", func(t *testing.T) {
		d := Decide(request(constants.RoleInstructor, true, 60), cfg,
			[]ConflictingReservation{
				conflict(constants.RoleInstructor, false),
				conflict(constants.RoleInstructor, true),
			})
		assert.Equal(t, OutcomeReject, d.Outcome)
		assert.Equal(t, MsgPrivilegedConflict, d.RejectMessage)
	})
}
