// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/gomail.v2"

	"roomku_backend/internals/configs"
)

// ReservationMail isi email konfirmasi reservasi.
type ReservationMail struct {
	To       string
	UserName string
	RoomName string
	Start    time.Time
	End      time.Time
	Purpose  string
}

// Sender kirim email konfirmasi. Implementasi default pakai SMTP (gomail),
// di test bisa diganti fake.
type Sender interface {
	SendReservationConfirmation(m ReservationMail) error
}

type smtpSender struct{}

// NewSMTPSender bikin sender SMTP dari konfigurasi env.
func NewSMTPSender() Sender {
	return &smtpSender{}
}

func (s *smtpSender) SendReservationConfirmation(m ReservationMail) error {
	if configs.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST belum diset")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", configs.SMTPSender)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", "Reservasi ruangan dikonfirmasi: "+m.RoomName)

	body := fmt.Sprintf(
		"Halo %s,\n\nReservasi Anda sudah dikonfirmasi.\n\nRuangan: %s\nMulai: %s\nSelesai: %s\n",
		m.UserName,
		m.RoomName,
		m.Start.Format(time.RFC1123),
		m.End.Format(time.RFC1123),
	)
	if m.Purpose != "" {
		body += "Keperluan: " + m.Purpose + "\n"
	}
	body += "\nSampai jumpa! 🚪"
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUser, configs.SMTPPassword)
	return dialer.DialAndSend(msg)
}

// SendAsync kirim email fire-and-forget: sukses reservasi TIDAK tergantung
// keberhasilan kirim email. Error hanya dicatat di log.
func SendAsync(s Sender, m ReservationMail) {
	go func() {
		if err := s.SendReservationConfirmation(m); err != nil {
			log.Printf("[WARNING] Gagal kirim email konfirmasi ke %s: %v", m.To, err)
		}
	}()
}
