package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"theralert/internal/models/db_models"
	"theralert/internal/models/request_models"
	"theralert/pkg/utils"
)

func TestCreateGroup(t *testing.T) {
	staffID := uuid.New().String()

	tests := []struct {
		name       string
		staffID    string
		addPatient bool
		request    request_models.CreateGroupRequest
		wantErr    error
		wantEmails []string
	}{
		{
			name:       "resolves patient and passes family emails through",
			staffID:    staffID,
			addPatient: true,
			request: request_models.CreateGroupRequest{
				PatientEmail: "p@x.com",
				FamilyEmails: []string{"a@x.com", "b@x.com"},
			},
			wantEmails: []string{"a@x.com", "b@x.com"},
		},
		{
			name:       "duplicate family emails are not deduplicated",
			staffID:    staffID,
			addPatient: true,
			request: request_models.CreateGroupRequest{
				PatientEmail: "p@x.com",
				FamilyEmails: []string{"a@x.com", "a@x.com"},
			},
			wantEmails: []string{"a@x.com", "a@x.com"},
		},
		{
			name:    "unknown patient email",
			staffID: staffID,
			request: request_models.CreateGroupRequest{PatientEmail: "p@x.com"},
			wantErr: utils.ErrPatientNotFound,
		},
		{
			name:       "malformed staff id",
			staffID:    "not-a-uuid",
			addPatient: true,
			request:    request_models.CreateGroupRequest{PatientEmail: "p@x.com"},
			wantErr:    utils.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := newFakeUserRepo()
			var patient *db_models.User
			if tt.addPatient {
				patient = registeredUser(t, userRepo, "p@x.com", "Passw0rd!", db_models.RolePatient)
			}
			groupRepo := &fakeGroupRepo{}
			svc := NewGroupService(groupRepo, userRepo, zap.NewNop())

			groupID, err := svc.CreateGroup(context.Background(), tt.staffID, tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateGroup() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if groupRepo.createdGroup != nil {
					t.Error("group was created despite error")
				}
				return
			}
			if groupID == uuid.Nil {
				t.Error("CreateGroup() returned nil id")
			}
			if groupRepo.createdGroup.PatientID != patient.ID {
				t.Errorf("group patient = %s, want %s", groupRepo.createdGroup.PatientID, patient.ID)
			}
			if !reflect.DeepEqual(groupRepo.createdEmails, tt.wantEmails) {
				t.Errorf("family emails = %v, want %v", groupRepo.createdEmails, tt.wantEmails)
			}
		})
	}
}

func TestCreateGroupPatientRoleMismatch(t *testing.T) {
	// A user with the right email but the wrong role must not resolve.
	userRepo := newFakeUserRepo()
	registeredUser(t, userRepo, "p@x.com", "Passw0rd!", db_models.RoleFamily)
	svc := NewGroupService(&fakeGroupRepo{}, userRepo, zap.NewNop())

	_, err := svc.CreateGroup(context.Background(), uuid.New().String(), request_models.CreateGroupRequest{
		PatientEmail: "p@x.com",
	})
	if !errors.Is(err, utils.ErrPatientNotFound) {
		t.Fatalf("CreateGroup() error = %v, want %v", err, utils.ErrPatientNotFound)
	}
}

func TestListGroups(t *testing.T) {
	staffGroups := []db_models.Group{{PatientID: uuid.New(), StaffID: uuid.New()}}
	memberGroups := []db_models.Group{{PatientID: uuid.New(), StaffID: uuid.New()}, {PatientID: uuid.New(), StaffID: uuid.New()}}

	tests := []struct {
		name    string
		role    string
		wantLen int
	}{
		{name: "staff sees owned groups", role: db_models.RoleStaff, wantLen: 1},
		{name: "patient sees groups they belong to", role: db_models.RolePatient, wantLen: 2},
		{name: "family sees groups they belong to", role: db_models.RoleFamily, wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groupRepo := &fakeGroupRepo{byStaff: staffGroups, byMember: memberGroups}
			svc := NewGroupService(groupRepo, newFakeUserRepo(), zap.NewNop())

			out, err := svc.ListGroups(context.Background(), uuid.New().String(), tt.role)
			if err != nil {
				t.Fatalf("ListGroups() error = %v", err)
			}
			if len(out) != tt.wantLen {
				t.Errorf("ListGroups() len = %d, want %d", len(out), tt.wantLen)
			}
		})
	}
}

func TestDeleteGroup(t *testing.T) {
	tests := []struct {
		name      string
		groupID   string
		deleteErr error
		wantErr   error
	}{
		{name: "existing group", groupID: uuid.New().String()},
		{
			name:      "unknown group",
			groupID:   uuid.New().String(),
			deleteErr: gorm.ErrRecordNotFound,
			wantErr:   utils.ErrGroupNotFound,
		},
		{name: "malformed id", groupID: "42", wantErr: utils.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groupRepo := &fakeGroupRepo{deleteErr: tt.deleteErr}
			svc := NewGroupService(groupRepo, newFakeUserRepo(), zap.NewNop())

			err := svc.DeleteGroup(context.Background(), request_models.DeleteGroupRequest{GroupID: tt.groupID})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DeleteGroup() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && len(groupRepo.deleted) != 1 {
				t.Errorf("cascade delete calls = %d, want 1", len(groupRepo.deleted))
			}
		})
	}
}
