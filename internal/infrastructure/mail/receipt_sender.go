// Package mail implementa el envío SMTP del correo de confirmación de pedido.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/dishdash/dishdash-api/internal/application/checkout"
	"github.com/dishdash/dishdash-api/pkg/config"
)

var _ checkout.ReceiptSender = (*SMTPReceiptSender)(nil)

// SMTPReceiptSender envía el recibo del pedido por SMTP.
type SMTPReceiptSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPReceiptSender construye el sender con las credenciales SMTP.
func NewSMTPReceiptSender(cfg config.MailConfig) *SMTPReceiptSender {
	from := cfg.From
	if from == "" {
		from = fmt.Sprintf("DishDash <%s>", cfg.User)
	}
	return &SMTPReceiptSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// SendReceipt envía el correo de confirmación. gomail no acepta contexto, así
// que el timeout lo impone el caller cancelando antes de invocar.
func (s *SMTPReceiptSender) SendReceipt(ctx context.Context, r checkout.Receipt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", r.Email)
	m.SetHeader("Subject", "DishDash Order Confirmation")
	m.SetBody("text/html", receiptBody(r))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar recibo: %w", err)
	}
	return nil
}

func receiptBody(r checkout.Receipt) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; color: #333;">
    <h2>Dear %s,</h2>
    <p>Thank you for your order!</p>
    <p>Your <strong>Transaction ID</strong>: %s</p>
    <p>We would love to hear your feedback about our food.</p>
</div>`, r.Name, r.TransactionID)
}
