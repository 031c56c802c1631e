package services

import "testing"

func TestNewSMTPMailServiceParsesTemplates(t *testing.T) {
	// template.Must panics on a broken template, so constructing is the test.
	svc, err := NewSMTPMailService(SMTPConfig{Host: "localhost", Port: 587, AppName: "Theralert"})
	if err != nil {
		t.Fatalf("NewSMTPMailService() error = %v", err)
	}
	if svc == nil {
		t.Fatal("NewSMTPMailService() returned nil service")
	}
}

func TestFormatFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		fromName string
		want     string
	}{
		{name: "bare address", from: "no-reply@theralert.app", want: "no-reply@theralert.app"},
		{
			name:     "display name",
			from:     "no-reply@theralert.app",
			fromName: "Theralert",
			want:     "Theralert <no-reply@theralert.app>",
		},
		{
			name:     "whitespace-only name ignored",
			from:     "no-reply@theralert.app",
			fromName: "   ",
			want:     "no-reply@theralert.app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &smtpMailService{cfg: SMTPConfig{From: tt.from, FromName: tt.fromName}}
			if got := s.formatFromHeader(); got != tt.want {
				t.Errorf("formatFromHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}
