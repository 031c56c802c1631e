package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"theralert/internal/models/db_models"
)

// Hand-rolled fakes shared by the service tests.

const testJWTSecret = "test-secret"

type fakeUserRepo struct {
	usersByEmail map[string]*db_models.User
	insertErr    error
	findErr      error
	deleted      []uuid.UUID
	updatedHash  string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usersByEmail: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) add(user *db_models.User) *db_models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.usersByEmail[user.Email] = user
	return user
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now().Unix()
	f.usersByEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.usersByEmail[email], nil
}

func (f *fakeUserRepo) FindByEmailAndRole(_ context.Context, email, role string) (*db_models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	user := f.usersByEmail[email]
	if user == nil || user.Role != role {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	for _, user := range f.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.updatedHash = passwordHash
	for _, user := range f.usersByEmail {
		if user.ID == id {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return errors.New("no such user")
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	for email, user := range f.usersByEmail {
		if user.ID == id {
			delete(f.usersByEmail, email)
			return nil
		}
	}
	return nil
}

type fakeGroupRepo struct {
	createdGroup  *db_models.Group
	createdEmails []string
	createErr     error

	byStaff  []db_models.Group
	byMember []db_models.Group
	listErr  error

	deleted   []uuid.UUID
	deleteErr error

	recipients   []string
	recipientErr error
}

func (f *fakeGroupRepo) CreateWithMembers(_ context.Context, group *db_models.Group, familyEmails []string, _ string) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	group.ID = uuid.New()
	f.createdGroup = group
	f.createdEmails = familyEmails
	return group.ID, nil
}

func (f *fakeGroupRepo) ListByStaff(_ context.Context, _ uuid.UUID) ([]db_models.Group, error) {
	return f.byStaff, f.listErr
}

func (f *fakeGroupRepo) ListByPatientOrMember(_ context.Context, _ uuid.UUID) ([]db_models.Group, error) {
	return f.byMember, f.listErr
}

func (f *fakeGroupRepo) DeleteCascade(_ context.Context, groupID uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, groupID)
	return nil
}

func (f *fakeGroupRepo) RecipientEmails(_ context.Context, _ uuid.UUID) ([]string, error) {
	return f.recipients, f.recipientErr
}

type fakeActivityRepo struct {
	stored    map[uuid.UUID]*db_models.Activity
	rows      []db_models.Activity
	insertErr error
	listErr   error
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{stored: map[uuid.UUID]*db_models.Activity{}}
}

func (f *fakeActivityRepo) Insert(_ context.Context, activity *db_models.Activity) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	activity.ID = uuid.New()
	activity.CreatedAt = time.Now().Unix()
	copied := *activity
	f.stored[activity.ID] = &copied
	return nil
}

func (f *fakeActivityRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Activity, error) {
	return f.stored[id], nil
}

func (f *fakeActivityRepo) ListByGroup(_ context.Context, _ uuid.UUID) ([]db_models.Activity, error) {
	return f.rows, f.listErr
}

type fakeNotificationRepo struct {
	records   []*db_models.Notification
	insertErr error
}

func (f *fakeNotificationRepo) Insert(_ context.Context, notification *db_models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, notification)
	return nil
}

type fakeMailService struct {
	sentTo   [][]string
	sentMail []ActivityMail
	sendErr  error
}

func (f *fakeMailService) SendActivityAlert(to []string, mail ActivityMail) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sentTo = append(f.sentTo, to)
	f.sentMail = append(f.sentMail, mail)
	return nil
}

type fakeNotifier struct {
	notified []*db_models.Activity
	err      error
}

func (f *fakeNotifier) NotifyNewActivity(_ context.Context, activity *db_models.Activity) error {
	f.notified = append(f.notified, activity)
	return f.err
}
