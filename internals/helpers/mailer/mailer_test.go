// file: internals/helpers/mailer/mailer_test.go
package mailer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent chan ReservationMail
	err  error
}

func (f *fakeSender) SendReservationConfirmation(m ReservationMail) error {
	f.sent <- m
	return f.err
}

func TestSendAsync(t *testing.T) {
	f := &fakeSender{sent: make(chan ReservationMail, 1)}

	mail := ReservationMail{To: "budi@example.com", RoomName: "Aula 1"}
	SendAsync(f, mail)

	select {
	case got := <-f.sent:
		assert.Equal(t, mail.To, got.To)
		assert.Equal(t, mail.RoomName, got.RoomName)
	case <-time.After(2 * time.Second):
		require.Fail(t, "email tidak pernah dikirim")
	}
}

// Gagal kirim tidak boleh panic atau mempengaruhi caller.
func TestSendAsync_ErrorSwallowed(t *testing.T) {
	f := &fakeSender{
		sent: make(chan ReservationMail, 1),
		err:  errors.New("smtp down"),
	}

	SendAsync(f, ReservationMail{To: "budi@example.com"})

	select {
	case <-f.sent:
	case <-time.After(2 * time.Second):
		require.Fail(t, "sender tidak pernah dipanggil")
	}
}
