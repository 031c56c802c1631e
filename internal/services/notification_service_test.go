package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"theralert/internal/models/db_models"
)

func newTestActivity() *db_models.Activity {
	return &db_models.Activity{
		BaseModel:   db_models.BaseModel{ID: uuid.New(), CreatedAt: 1700000000},
		GroupID:     uuid.New(),
		Activity:    "Lunch",
		Description: "Ate well",
		Kind:        db_models.KindActivity,
	}
}

func TestNotifyNewActivity(t *testing.T) {
	t.Run("deduplicates recipients preserving first-seen order", func(t *testing.T) {
		groupRepo := &fakeGroupRepo{recipients: []string{"p@x.com", "a@x.com", "p@x.com", "b@x.com", "a@x.com"}}
		mail := &fakeMailService{}
		notifRepo := &fakeNotificationRepo{}
		svc := NewNotificationService(groupRepo, notifRepo, mail, zap.NewNop())

		if err := svc.NotifyNewActivity(context.Background(), newTestActivity()); err != nil {
			t.Fatalf("NotifyNewActivity() error = %v", err)
		}
		want := []string{"p@x.com", "a@x.com", "b@x.com"}
		if len(mail.sentTo) != 1 {
			t.Fatalf("sends = %d, want 1", len(mail.sentTo))
		}
		if !reflect.DeepEqual(mail.sentTo[0], want) {
			t.Errorf("recipients = %v, want %v", mail.sentTo[0], want)
		}
		if len(notifRepo.records) != 1 || !notifRepo.records[0].Delivered {
			t.Errorf("audit record = %+v, want one delivered row", notifRepo.records)
		}
	})

	t.Run("case-sensitive matching keeps distinct casings", func(t *testing.T) {
		groupRepo := &fakeGroupRepo{recipients: []string{"A@x.com", "a@x.com"}}
		mail := &fakeMailService{}
		svc := NewNotificationService(groupRepo, &fakeNotificationRepo{}, mail, zap.NewNop())

		if err := svc.NotifyNewActivity(context.Background(), newTestActivity()); err != nil {
			t.Fatalf("NotifyNewActivity() error = %v", err)
		}
		if len(mail.sentTo[0]) != 2 {
			t.Errorf("recipients = %v, want both casings kept", mail.sentTo[0])
		}
	})

	t.Run("zero recipients is not an error and sends nothing", func(t *testing.T) {
		groupRepo := &fakeGroupRepo{recipients: nil}
		mail := &fakeMailService{}
		notifRepo := &fakeNotificationRepo{}
		svc := NewNotificationService(groupRepo, notifRepo, mail, zap.NewNop())

		if err := svc.NotifyNewActivity(context.Background(), newTestActivity()); err != nil {
			t.Fatalf("NotifyNewActivity() error = %v", err)
		}
		if len(mail.sentTo) != 0 {
			t.Error("mail sent despite zero recipients")
		}
		if len(notifRepo.records) != 0 {
			t.Error("audit row written despite zero recipients")
		}
	})

	t.Run("send failure is recorded and returned", func(t *testing.T) {
		groupRepo := &fakeGroupRepo{recipients: []string{"p@x.com"}}
		mail := &fakeMailService{sendErr: errors.New("smtp unreachable")}
		notifRepo := &fakeNotificationRepo{}
		svc := NewNotificationService(groupRepo, notifRepo, mail, zap.NewNop())

		if err := svc.NotifyNewActivity(context.Background(), newTestActivity()); err == nil {
			t.Fatal("NotifyNewActivity() error = nil, want send error")
		}
		if len(notifRepo.records) != 1 {
			t.Fatalf("audit records = %d, want 1", len(notifRepo.records))
		}
		record := notifRepo.records[0]
		if record.Delivered {
			t.Error("record marked delivered after failed send")
		}
		if record.Error == "" {
			t.Error("record missing error detail")
		}
	})

	t.Run("goal selects the goal template", func(t *testing.T) {
		groupRepo := &fakeGroupRepo{recipients: []string{"p@x.com"}}
		mail := &fakeMailService{}
		svc := NewNotificationService(groupRepo, &fakeNotificationRepo{}, mail, zap.NewNop())

		activity := newTestActivity()
		activity.Kind = db_models.KindGoal
		if err := svc.NotifyNewActivity(context.Background(), activity); err != nil {
			t.Fatalf("NotifyNewActivity() error = %v", err)
		}
		if !mail.sentMail[0].IsGoal {
			t.Error("goal activity rendered with the routine template")
		}
	})
}

func TestDedupePreservingOrder(t *testing.T) {
	tests := []struct {
		name   string
		emails []string
		want   []string
	}{
		{name: "nil input", emails: nil, want: []string{}},
		{name: "no duplicates", emails: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "adjacent duplicates", emails: []string{"a", "a", "b"}, want: []string{"a", "b"}},
		{name: "interleaved duplicates", emails: []string{"a", "b", "a", "c", "b"}, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupePreservingOrder(tt.emails)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupePreservingOrder(%v) = %v, want %v", tt.emails, got, tt.want)
			}
		})
	}
}
