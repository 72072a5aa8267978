package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"
	"bloodlink/internal/infra/persistence/postgres/query"
)

type donationRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
		q:  query.Use(db),
	}
}

func (repo *donationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	donationM := fromDonationDomain(donation)
	if donationM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate donation id")
		}
		donationM.ID = id
	}
	if donationM.Status == "" {
		donationM.Status = entity.DonationStatusPending.String()
	}

	if err := repo.q.DonationModel.WithContext(ctx).Create(donationM); err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return errors.Wrap(repository.ErrUserNotFound, "donations.user_id references a missing user")
		case isValueTooLong(err):
			return valueTooLongError(err)
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create donation")
		}
	}

	donation.ID = donationM.ID
	donation.Status = entity.DonationStatus(donationM.Status)
	donation.CreatedAt = donationM.CreatedAt

	return nil
}

// FindByID reads from the primary; the worker looks donations up moments after
// they are inserted.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	d := repo.q.DonationModel
	donationM, err := d.WithContext(ctx).WriteDB().
		Where(d.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find donation")
	}

	return toDonationDomain(donationM, ""), nil
}

func (repo *donationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Donation, error) {
	d := repo.q.DonationModel
	rows, err := d.WithContext(ctx).
		Where(d.UserID.Eq(userID)).
		Order(d.DonationDate.Desc(), d.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user donations")
	}

	donations := make([]*entity.Donation, 0, len(rows))
	for _, row := range rows {
		donations = append(donations, toDonationDomain(row, ""))
	}

	return donations, nil
}

// ListAll joins users so each row carries the owner's account name. Donations whose
// owner row is gone still appear with an empty name.
func (repo *donationRepository) ListAll(ctx context.Context) ([]*entity.Donation, error) {
	var rows []model.DonationWithOwnerModel
	if err := repo.db.WithContext(ctx).
		Table("donations AS d").
		Select("d.*, COALESCE(u.name, '') AS user_name").
		Joins("LEFT JOIN users u ON u.id = d.user_id").
		Order("d.donation_date DESC, d.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list donations")
	}

	donations := make([]*entity.Donation, 0, len(rows))
	for i := range rows {
		donations = append(donations, toDonationDomain(&rows[i].DonationModel, rows[i].UserName))
	}

	return donations, nil
}

func toDonationDomain(data *model.DonationModel, userName string) *entity.Donation {
	return &entity.Donation{
		ID:           data.ID,
		UserID:       data.UserID,
		UserName:     userName,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		DonationDate: data.DonationDate,
		BloodType:    entity.BloodType(data.BloodType),
		Status:       entity.DonationStatus(data.Status),
		CreatedAt:    data.CreatedAt,
	}
}

func fromDonationDomain(data *entity.Donation) *model.DonationModel {
	return &model.DonationModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		DonationDate: data.DonationDate,
		BloodType:    data.BloodType.String(),
		Status:       data.Status.String(),
		CreatedAt:    data.CreatedAt,
	}
}
