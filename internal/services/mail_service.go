package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// ActivityMail carries the rendered fields for one fan-out message.
type ActivityMail struct {
	Activity    string
	Description string
	LoggedAt    string
	IsGoal      bool
	AppName     string
	Year        int
}

type IMailService interface {
	// SendActivityAlert delivers one message with every recipient in the To
	// header. The goal/activity distinction only selects the template.
	SendActivityAlert(to []string, mail ActivityMail) error
}

// SMTPConfig holds the SMTP transport and branding settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool // true for SMTPS 465, false for STARTTLS 587

	AppName string
}

type smtpMailService struct {
	cfg         SMTPConfig
	activityTpl *template.Template
	goalTpl     *template.Template
	textTpl     *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:         cfg,
		activityTpl: template.Must(template.New("activityHTML").Parse(activityHTMLTemplate)),
		goalTpl:     template.Must(template.New("goalHTML").Parse(goalHTMLTemplate)),
		textTpl:     template.Must(template.New("plainText").Parse(plainTextTemplate)),
	}, nil
}

func (s *smtpMailService) SendActivityAlert(to []string, mail ActivityMail) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	mail.AppName = s.cfg.AppName
	mail.Year = time.Now().Year()

	subject := fmt.Sprintf("New activity logged: %s", mail.Activity)
	tpl := s.activityTpl
	if mail.IsGoal {
		subject = fmt.Sprintf("Goal completed: %s", mail.Activity)
		tpl = s.goalTpl
	}

	var hb, tb bytes.Buffer
	if err := tpl.Execute(&hb, mail); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, mail); err != nil {
		return err
	}

	return s.send(to, subject, hb.String(), tb.String())
}

const activityHTMLTemplate = `<!doctype html>
<html>
<body style="margin:0;padding:24px;background:#f8fafc;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#0f172a">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;border:1px solid #e2e8f0">
    <div style="font-weight:700;font-size:20px;color:#2563eb">{{.AppName}}</div>
    <h1 style="font-size:24px;margin:24px 0 8px">New activity: {{.Activity}}</h1>
    <p style="line-height:1.6;color:#475569">{{.Description}}</p>
    <p style="color:#64748b;font-size:14px">Logged on {{.LoggedAt}}.</p>
    <div style="margin-top:24px;padding-top:16px;border-top:1px solid #e2e8f0;color:#94a3b8;font-size:12px">
      &copy; {{.Year}} {{.AppName}}
    </div>
  </div>
</body>
</html>`

const goalHTMLTemplate = `<!doctype html>
<html>
<body style="margin:0;padding:24px;background:#f8fafc;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#0f172a">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;border:1px solid #e2e8f0">
    <div style="font-weight:700;font-size:20px;color:#16a34a">{{.AppName}}</div>
    <h1 style="font-size:24px;margin:24px 0 8px">🎉 Goal completed: {{.Activity}}</h1>
    <p style="line-height:1.6;color:#475569">{{.Description}}</p>
    <p style="color:#64748b;font-size:14px">Completed on {{.LoggedAt}}.</p>
    <div style="margin-top:24px;padding-top:16px;border-top:1px solid #e2e8f0;color:#94a3b8;font-size:12px">
      &copy; {{.Year}} {{.AppName}}
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{if .IsGoal}}Goal completed{{else}}New activity{{end}}: {{.Activity}}

{{.Description}}

Logged on {{.LoggedAt}}.

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) send(to []string, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", strings.Join(to, ", "))
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	c, err := s.dial()
	if err != nil {
		return err
	}
	defer c.Quit()

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err = c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) dial() (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, s.cfg.Host)
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(tlsCfg); err != nil {
			c.Close()
			return nil, err
		}
	} else {
		c.Close()
		return nil, fmt.Errorf("server does not support STARTTLS")
	}
	return c, nil
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", name, s.cfg.From)
}
