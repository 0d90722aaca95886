package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/gomail.v2"

	"dms.in/freightdesk/middleware"
)

// Mailer relays outbound mail through the fixed SMTP account. No retry;
// failures surface to the caller.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

var (
	defaultMailer     *Mailer
	defaultMailerOnce sync.Once
)

// DefaultMailer builds the mailer from SMTP_* env vars on first use.
func DefaultMailer() *Mailer {
	defaultMailerOnce.Do(func() {
		port := 587
		if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
			port = p
		}
		defaultMailer = &Mailer{
			dialer: gomail.NewDialer(
				os.Getenv("SMTP_HOST"),
				port,
				os.Getenv("SMTP_USERNAME"),
				os.Getenv("SMTP_PASSWORD"),
			),
			from: os.Getenv("SMTP_FROM"),
		}
	})
	return defaultMailer
}

// Send relays one message. to and cc are comma-separated lists.
func (m *Mailer) Send(to, cc, subject, body string) error {
	toList := splitAddresses(to)
	if len(toList) == 0 {
		return fmt.Errorf("no recipient")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toList...)
	if ccList := splitAddresses(cc); len(ccList) > 0 {
		msg.SetHeader("Cc", ccList...)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}

// SOBNotification is the fixed field set of the shipped-on-board notice.
type SOBNotification struct {
	CustomerEmail    string `json:"customer_email"`
	SalesPersonEmail string `json:"sales_person_email"`
	CustomerName     string `json:"customer_name"`
	BookingNo        string `json:"booking_no"`
	SOBDate          string `json:"sob_date"`
	Vessel           string `json:"vessel"`
	Voyage           string `json:"voyage"`
	POL              string `json:"pol"`
	POD              string `json:"pod"`
	FPOD             string `json:"fpod"`
	ContainerNo      string `json:"container_no"`
	Volume           string `json:"volume"`
	BLNo             string `json:"bl_no"`
}

// SendSOBNotification renders and relays the SOB notice to the customer,
// cc the salesperson.
func (m *Mailer) SendSOBNotification(n SOBNotification) error {
	if n.CustomerEmail == "" {
		return fmt.Errorf("customer %s has no email on file", n.CustomerName)
	}
	subject := fmt.Sprintf("Shipped On Board - Booking %s / %s V.%s", n.BookingNo, n.Vessel, n.Voyage)
	return m.Send(n.CustomerEmail, n.SalesPersonEmail, subject, RenderSOBBody(n))
}

// RenderSOBBody produces the plain-text notice body.
func RenderSOBBody(n SOBNotification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", n.CustomerName)
	fmt.Fprintf(&b, "Please be advised that your shipment has been shipped on board.\n\n")
	fmt.Fprintf(&b, "Booking No   : %s\n", n.BookingNo)
	fmt.Fprintf(&b, "SOB Date     : %s\n", n.SOBDate)
	fmt.Fprintf(&b, "Vessel/Voyage: %s / %s\n", n.Vessel, n.Voyage)
	fmt.Fprintf(&b, "POL          : %s\n", n.POL)
	fmt.Fprintf(&b, "POD          : %s\n", n.POD)
	if n.FPOD != "" {
		fmt.Fprintf(&b, "FPOD         : %s\n", n.FPOD)
	}
	fmt.Fprintf(&b, "Container No : %s\n", n.ContainerNo)
	if n.Volume != "" {
		fmt.Fprintf(&b, "Volume       : %s\n", n.Volume)
	}
	if n.BLNo != "" {
		fmt.Fprintf(&b, "B/L No       : %s\n", n.BLNo)
	}
	fmt.Fprintf(&b, "\nBest regards,\nDMS Booking Desk\n")
	return b.String()
}

type sendMailReq struct {
	To      string `json:"to"`
	CC      string `json:"cc"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendMail is the generic relay endpoint.
func SendMail(w http.ResponseWriter, r *http.Request) {
	var req sendMailReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.To) == "" {
		http.Error(w, "to is required", http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)
	if err := DefaultMailer().Send(req.To, req.CC, req.Subject, req.Body); err != nil {
		http.Error(w, "send failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "sent",
		"by":     user.Username,
	})
}

func splitAddresses(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
