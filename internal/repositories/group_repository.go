package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"theralert/internal/models/db_models"
)

type GroupRepository interface {
	// CreateWithMembers creates the group and links every family email in a
	// single transaction, provisioning missing family accounts with the given
	// placeholder hash. Duplicate emails in the input produce duplicate
	// membership rows on purpose.
	CreateWithMembers(ctx context.Context, group *db_models.Group, familyEmails []string, placeholderHash string) (uuid.UUID, error)
	ListByStaff(ctx context.Context, staffID uuid.UUID) ([]db_models.Group, error)
	ListByPatientOrMember(ctx context.Context, userID uuid.UUID) ([]db_models.Group, error)
	// DeleteCascade removes activities, then memberships, then the group row,
	// all-or-nothing. Returns gorm.ErrRecordNotFound when the group row does
	// not exist.
	DeleteCascade(ctx context.Context, groupID uuid.UUID) error
	// RecipientEmails resolves the patient's email followed by the emails of
	// family-role members, without deduplication.
	RecipientEmails(ctx context.Context, groupID uuid.UUID) ([]string, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (g *groupRepository) CreateWithMembers(ctx context.Context, group *db_models.Group, familyEmails []string, placeholderHash string) (uuid.UUID, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		for _, email := range familyEmails {
			var member db_models.User
			err := tx.First(&member, "email = ? AND role = ?", email, db_models.RoleFamily).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				member = db_models.User{
					Name:         nameFromEmail(email),
					Email:        email,
					PasswordHash: placeholderHash,
					Role:         db_models.RoleFamily,
				}
				if err := tx.Create(&member).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			link := db_models.GroupMember{GroupID: group.ID, UserID: member.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return group.ID, nil
}

func (g *groupRepository) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]db_models.Group, error) {
	var groups []db_models.Group
	err := g.db.WithContext(ctx).Where("staff_id = ?", staffID).Find(&groups).Error
	return groups, err
}

func (g *groupRepository) ListByPatientOrMember(ctx context.Context, userID uuid.UUID) ([]db_models.Group, error) {
	var groups []db_models.Group
	err := g.db.WithContext(ctx).
		Distinct("groups.*").
		Joins("LEFT JOIN group_members gm ON groups.id = gm.group_id").
		Where("groups.patient_id = ? OR gm.user_id = ?", userID, userID).
		Find(&groups).Error
	return groups, err
}

func (g *groupRepository) DeleteCascade(ctx context.Context, groupID uuid.UUID) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.Activity{}, "group_id = ?", groupID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.GroupMember{}, "group_id = ?", groupID).Error; err != nil {
			return err
		}
		res := tx.Delete(&db_models.Group{}, "id = ?", groupID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (g *groupRepository) RecipientEmails(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	var emails []string
	err := g.db.WithContext(ctx).Raw(`
		SELECT u.email FROM users u
		JOIN groups g ON g.patient_id = u.id
		WHERE g.id = ?
		UNION ALL
		SELECT u.email FROM users u
		JOIN group_members gm ON gm.user_id = u.id
		WHERE gm.group_id = ? AND u.role = ?`,
		groupID, groupID, db_models.RoleFamily).
		Scan(&emails).Error
	return emails, err
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
