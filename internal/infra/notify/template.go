package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"time"
	_ "time/tzdata" // mail zone must resolve on hosts without a zoneinfo database

	"hotel-booking/internal/pkg/errs"
)

const (
	subjectConfirmed = "Your booking is confirmed"
	subjectCancelled = "Your booking has been cancelled"

	mailTimeLayout = "02/01/2006 15:04"
	missingValue   = "-"
	currencySymbol = "₹"
)

const layoutHead = `<html>
  <body style="font-family:Arial,sans-serif;background:#f6f8fa;padding:0;margin:0;">
    <div style="max-width:640px;margin:auto;background:#ffffff;padding:24px;border-radius:8px;border:1px solid #e5e7eb;">`

const layoutTail = `
    </div>
  </body>
</html>`

const detailRows = `
        <tr>
          <td style="border-bottom:1px solid #e5e7eb;width:40%;">Room</td>
          <td style="border-bottom:1px solid #e5e7eb;">{{.Room}}</td>
        </tr>
        <tr>
          <td style="border-bottom:1px solid #e5e7eb;">Start</td>
          <td style="border-bottom:1px solid #e5e7eb;">{{.Start}}</td>
        </tr>
        <tr>
          <td style="border-bottom:1px solid #e5e7eb;">End</td>
          <td style="border-bottom:1px solid #e5e7eb;">{{.End}}</td>
        </tr>`

var confirmedTmpl = template.Must(template.New("confirmed").Parse(layoutHead + `
      <h2 style="margin-top:0;color:#111827;">Booking Confirmed</h2>
      <p style="color:#374151;">Thank you for your booking. Here are your details:</p>
      <table width="100%" cellpadding="8" cellspacing="0" style="border-collapse:collapse;color:#111827;">` + detailRows + `
        <tr>
          <td style="border-bottom:1px solid #e5e7eb;">Price</td>
          <td style="border-bottom:1px solid #e5e7eb;">{{.Price}}</td>
        </tr>
      </table>
      <p style="color:#6b7280;margin-top:24px;">If you have any questions, reply to this email.</p>` + layoutTail))

var cancelledTmpl = template.Must(template.New("cancelled").Parse(layoutHead + `
      <h2 style="margin-top:0;color:#111827;">Booking Cancelled</h2>
      <p style="color:#374151;">Your booking has been cancelled. Summary is below:</p>
      <table width="100%" cellpadding="8" cellspacing="0" style="border-collapse:collapse;color:#111827;">` + detailRows + `
        <tr>
          <td style="border-bottom:1px solid #e5e7eb;">Original Price</td>
          <td style="border-bottom:1px solid #e5e7eb;">{{.Price}}</td>
        </tr>
        <tr>
          <td style="border-bottom:1px solid #e5e7eb;">Refund Amount</td>
          <td style="border-bottom:1px solid #e5e7eb;color:#059669;font-weight:600;">{{.RefundAmount}} ({{.RefundPercent}}%)</td>
        </tr>
      </table>

      <div style="background:#f0fdf4;border:1px solid #bbf7d0;border-radius:8px;padding:16px;margin-top:24px;">
        <h3 style="margin:0 0 12px 0;color:#065f46;font-size:16px;">Refund Policy</h3>
        <ul style="margin:0;padding-left:20px;color:#047857;font-size:14px;line-height:1.6;">
          <li><strong>48+ hours before check-in:</strong> 100% refund</li>
          <li><strong>24-48 hours before check-in:</strong> 50% refund</li>
          <li><strong>Less than 24 hours:</strong> No refund</li>
        </ul>
        <p style="margin:12px 0 0 0;color:#047857;font-size:13px;font-style:italic;">
          Refunds will be processed within 5-7 business days to your original payment method.
        </p>
      </div>

      <p style="color:#6b7280;margin-top:24px;">We hope to serve you again. If you have any questions about your refund, please contact our support team.</p>` + layoutTail))

type mailView struct {
	Room          string
	Start         string
	End           string
	Price         string
	RefundAmount  string
	RefundPercent string
}

// Renderer turns events into HTML emails, showing times in a single configured zone.
type Renderer struct {
	loc *time.Location
}

func NewRenderer(timeZone string) (*Renderer, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "load mail time zone %q", timeZone)
	}
	return &Renderer{loc: loc}, nil
}

func (r *Renderer) Render(ev Event) (subject string, body string, err error) {
	view := r.view(ev)

	var buf bytes.Buffer
	switch ev.Kind {
	case KindBookingConfirmed:
		subject = subjectConfirmed
		err = confirmedTmpl.Execute(&buf, view)
	case KindBookingCancelled:
		subject = subjectCancelled
		err = cancelledTmpl.Execute(&buf, view)
	default:
		return "", "", errs.Wrapf(ErrUnknownKind, "kind %q", ev.Kind)
	}
	if err != nil {
		return "", "", errs.Wrap(err, "render notification email")
	}
	return subject, buf.String(), nil
}

func (r *Renderer) view(ev Event) mailView {
	b := ev.Booking

	room := missingValue
	if b.RoomNumber != nil {
		room = strconv.Itoa(*b.RoomNumber)
	}
	if b.RoomType != nil && *b.RoomType != "" {
		room += fmt.Sprintf(" (%s)", *b.RoomType)
	}

	v := mailView{
		Room:          room,
		Start:         r.formatTime(b.StartTime),
		End:           r.formatTime(b.EndTime),
		Price:         formatAmount(b.Price),
		RefundAmount:  formatAmount(ev.RefundAmount),
		RefundPercent: missingValue,
	}
	if ev.RefundPercent != nil {
		v.RefundPercent = strconv.Itoa(*ev.RefundPercent)
	}
	return v
}

func (r *Renderer) formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return missingValue
	}
	return t.In(r.loc).Format(mailTimeLayout)
}

func formatAmount(amount *int64) string {
	if amount == nil {
		return missingValue
	}
	return currencySymbol + strconv.FormatInt(*amount, 10)
}
