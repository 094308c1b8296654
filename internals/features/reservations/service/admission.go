// file: internals/features/reservations/service/admission.go
//
// Admission controller: satu-satunya penjaga invariant "reservasi confirmed
// dalam satu ruangan tidak boleh saling tumpang tindih" di jalur tulis.
// Keputusan dipisah jadi fungsi murni (Decide) supaya gampang dites tanpa DB;
// eksekusinya (Admit) jalan di satu transaksi dengan row lock.
package service

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"roomku_backend/internals/constants"
)

/* =======================================================
   INPUT / OUTPUT TYPES
   ======================================================= */

// AdmissionConfig batas durasi, dibaca SEKALI per request oleh caller
// (bukan global yang dibaca ulang di dalam fungsi).
type AdmissionConfig struct {
	MinMinutes int
	MaxMinutes int
}

// AdmissionRequest usulan reservasi yang sudah lolos parsing dasar.
type AdmissionRequest struct {
	RoomID       uuid.UUID
	RequesterID  uuid.UUID
	// Role requester dari closed set constants.AllRoles
	RequesterRole string
	// Grant override aktif milik requester (hanya bermakna untuk instructor)
	RequesterCanOverride bool
	StartTime            time.Time
	EndTime              time.Time
	Purpose              *string
	Attendees            int
}

// ConflictingReservation reservasi confirmed yang tumpang tindih dengan usulan.
type ConflictingReservation struct {
	ReservationID    uuid.UUID
	OwnerID          uuid.UUID
	OwnerRole        string
	OwnerCanOverride bool
}

// Outcome hasil keputusan admission.
type Outcome int

const (
	OutcomeAdmit Outcome = iota
	OutcomeAdmitWithOverride
	OutcomeReject
)

// Decision hasil Decide. Kalau OutcomeAdmitWithOverride, OverrideTargets
// berisi SEMUA reservasi konflik (semuanya harus bisa di-override).
type Decision struct {
	Outcome         Outcome
	OverrideTargets []ConflictingReservation
	RejectStatus    int
	RejectMessage   string
}

// Pesan reject. Pesan konflik sengaja generic — jangan bocorkan siapa
// pemilik reservasi yang menghalangi.
const (
	MsgRoleCannotBookDirectly = "Role Anda tidak dapat booking langsung, silakan ajukan permohonan reservasi"
	MsgRoomAlreadyReserved    = "Ruangan sudah direservasi pada rentang waktu tersebut"
	MsgPrivilegedConflict     = "Ruangan sudah dibooking instructor dengan hak override"
)

/* =======================================================
   OVERLAP SEMANTICS
   ======================================================= */

// Overlaps cek tumpang tindih interval [s1,e1) vs [s2,e2).
// Interval yang cuma bersentuhan (e1 == s2) TIDAK dianggap overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

/* =======================================================
   DECISION FUNCTION (murni, tanpa DB)
   ======================================================= */

// Decide jalankan precondition berurutan (gagal pertama langsung stop):
//  1. gate role (capability table)
//  2. gate durasi (min ≤ menit ≤ max, pesan menyebut batas yang dilanggar)
//  3. resolusi konflik lewat tabel keputusan override
func Decide(req AdmissionRequest, cfg AdmissionConfig, conflicts []ConflictingReservation) Decision {
	// 1) Gate role
	if !constants.CanBookDirectly(req.RequesterRole) {
		return Decision{
			Outcome:       OutcomeReject,
			RejectStatus:  fiber.StatusForbidden,
			RejectMessage: MsgRoleCannotBookDirectly,
		}
	}

	// 2) Gate durasi — bandingkan sebagai time.Duration, bukan menit yang
	// dibulatkan: 120m59s harus ditolak kalau max 120 menit
	dur := req.EndTime.Sub(req.StartTime)
	if dur < time.Duration(cfg.MinMinutes)*time.Minute {
		return Decision{
			Outcome:       OutcomeReject,
			RejectStatus:  fiber.StatusBadRequest,
			RejectMessage: durationTooShortMessage(cfg.MinMinutes),
		}
	}
	if dur > time.Duration(cfg.MaxMinutes)*time.Minute {
		return Decision{
			Outcome:       OutcomeReject,
			RejectStatus:  fiber.StatusBadRequest,
			RejectMessage: durationTooLongMessage(cfg.MaxMinutes),
		}
	}

	// 3) Tanpa konflik → langsung admit
	if len(conflicts) == 0 {
		return Decision{Outcome: OutcomeAdmit}
	}

	// Ada konflik → semua harus bisa di-override, satu saja gagal → reject.
	// Override hanya terdefinisi untuk instructor-vs-instructor; requester
	// harus instructor dengan grant aktif.
	if req.RequesterRole != constants.RoleInstructor || !req.RequesterCanOverride {
		return Decision{
			Outcome:       OutcomeReject,
			RejectStatus:  fiber.StatusBadRequest,
			RejectMessage: MsgRoomAlreadyReserved,
		}
	}

	for _, conflict := range conflicts {
		if conflict.OwnerRole != constants.RoleInstructor {
			// pemilik bukan instructor (mis. admin) → tidak bisa digeser
			return Decision{
				Outcome:       OutcomeReject,
				RejectStatus:  fiber.StatusBadRequest,
				RejectMessage: MsgRoomAlreadyReserved,
			}
		}
		if conflict.OwnerCanOverride {
			// sesama privileged instructor → tidak saling menggeser
			return Decision{
				Outcome:       OutcomeReject,
				RejectStatus:  fiber.StatusBadRequest,
				RejectMessage: MsgPrivilegedConflict,
			}
		}
	}

	targets := make([]ConflictingReservation, len(conflicts))
	copy(targets, conflicts)
	return Decision{
		Outcome:         OutcomeAdmitWithOverride,
		OverrideTargets: targets,
	}
}

func durationTooShortMessage(min int) string {
	return "Durasi reservasi kurang dari batas minimum " + strconv.Itoa(min) + " menit"
}

func durationTooLongMessage(max int) string {
	return "Durasi reservasi melebihi batas maksimum " + strconv.Itoa(max) + " menit"
}
