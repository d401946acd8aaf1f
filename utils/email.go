package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/smtp"
	"strconv"

	"pouchesitaly/config"
	"pouchesitaly/logger"

	jwemail "github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds templates/order_confirmation.html.
type OrderConfirmationData struct {
	OrderNumber string
	Items       string
	Subtotal    float64
	Total       float64
	TrackingURL string
}

// SendOrderConfirmationEmail sends the HTML confirmation with an
// embedded tracking QR. Async so reconciliation never waits on SMTP;
// skipped entirely when SMTP is not configured.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	host := config.Config("SMTP_HOST")
	if host == "" || to == "" {
		return
	}

	go func() {
		tmpl, err := template.ParseFiles("templates/order_confirmation.html")
		if err != nil {
			logger.Error("load confirmation template failed", "error", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			logger.Error("render confirmation template failed", "error", err)
			return
		}

		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
		from := config.ConfigOr("SMTP_FROM", "Pouches Italy <noreply@pouchesitaly.com>")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Order confirmation "+data.OrderNumber)
		m.SetBody("text/html", body.String())

		if qrBytes, err := GenerateQRCode(data.TrackingURL, 300); err == nil {
			m.Embed("qr_tracking.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_tracking>"},
				"Content-Disposition": {"inline"},
			}))
		}

		d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			logger.Error("send confirmation email failed", "to", to, "error", err)
			return
		}
		logger.Info("confirmation email sent", "to", to, "order", data.OrderNumber)
	}()
}

// SendNewOrderNotice mails a plain-text heads-up to the shop inbox when
// a payment is confirmed. Best effort, same SMTP guard as above.
func SendNewOrderNotice(orderNumber, customerEmail string, total float64) {
	host := config.Config("SMTP_HOST")
	notify := config.Config("SHOP_NOTIFY_EMAIL")
	if host == "" || notify == "" {
		return
	}

	go func() {
		e := jwemail.NewEmail()
		e.From = config.ConfigOr("SMTP_FROM", "Pouches Italy <noreply@pouchesitaly.com>")
		e.To = []string{notify}
		e.Subject = "New paid order " + orderNumber
		e.Text = []byte(fmt.Sprintf("Order %s from %s, total %.2f EUR.", orderNumber, customerEmail, total))

		addr := host + ":" + config.ConfigOr("SMTP_PORT", "587")
		auth := smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), host)
		if err := e.Send(addr, auth); err != nil {
			logger.Error("send order notice failed", "error", err)
		}
	}()
}
