package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	mockRepo "bloodlink/internal/mocks/repository"
	mockSvc "bloodlink/internal/mocks/service"
	"bloodlink/internal/usecase"
)

type donationServiceFixtures struct {
	service      *donationService
	donationRepo *mockRepo.MockDonationRepository
	publisher    *mockSvc.MockEventPublisher
	qrcode       *mockSvc.MockQRCodeService
	metrics      *mockSvc.MockMetricsRecorder
}

// fixedNow is late evening local time so "today" is decided by the local calendar day.
var fixedNow = time.Date(2026, 10, 16, 22, 30, 0, 0, time.FixedZone("UTC-7", -7*60*60))

func createTestDonationService(t *testing.T) donationServiceFixtures {
	f := donationServiceFixtures{
		donationRepo: mockRepo.NewMockDonationRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	f.service = NewDonationService(DonationServiceParams{
		DonationRepo: f.donationRepo,
		Publisher:    f.publisher,
		QRCode:       f.qrcode,
		Metrics:      f.metrics,
		Logger:       newDiscardLogger(),
	}).(*donationService)
	f.service.now = func() time.Time { return fixedNow }

	return f
}

func validScheduleInput() *usecase.ScheduleDonationInput {
	return &usecase.ScheduleDonationInput{
		Name:      "Alex",
		Email:     "a@x.com",
		Phone:     "555-0100",
		Date:      "2026-10-16",
		BloodType: "O+",
	}
}

func TestDonationService_ScheduleDonation_Success(t *testing.T) {
	f := createTestDonationService(t)
	userID := uuid.New()
	donationID := uuid.New()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	f.donationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Donation")).
		Run(func(_ context.Context, donation *entity.Donation) {
			donation.ID = donationID
		}).
		Return(nil)
	f.metrics.EXPECT().RecordDonationScheduled().Return()
	f.publisher.EXPECT().
		PublishDonationEvent(ctx, &service.DonationEvent{
			RequestID:    "req-42",
			Type:         service.EventTypeDonationScheduled,
			DonationID:   donationID.String(),
			UserID:       userID.String(),
			DonationDate: "2026-10-16",
			BloodType:    "O+",
		}).
		Return(nil)

	donation, err := f.service.ScheduleDonation(ctx, userID, validScheduleInput())

	require.NoError(t, err)
	assert.Equal(t, donationID, donation.ID)
	assert.Equal(t, userID, donation.UserID)
	assert.Equal(t, entity.DonationStatusPending, donation.Status)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), donation.DonationDate)
}

func TestDonationService_ScheduleDonation_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestDonationService(t)

	f.donationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.metrics.EXPECT().RecordDonationScheduled().Return()
	f.publisher.EXPECT().PublishDonationEvent(mock.Anything, mock.Anything).Return(errors.New("topic unavailable"))

	donation, err := f.service.ScheduleDonation(context.Background(), uuid.New(), validScheduleInput())

	require.NoError(t, err)
	assert.NotNil(t, donation)
}

func TestDonationService_ScheduleDonation_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.ScheduleDonationInput)
		msg    string
	}{
		{"missing phone", func(in *usecase.ScheduleDonationInput) { in.Phone = "" }, "All fields are required"},
		{"missing date", func(in *usecase.ScheduleDonationInput) { in.Date = "" }, "All fields are required"},
		{"bad date format", func(in *usecase.ScheduleDonationInput) { in.Date = "10/20/2026" }, "Donation date must be a valid date (YYYY-MM-DD)"},
		{"impossible date", func(in *usecase.ScheduleDonationInput) { in.Date = "2026-02-30" }, "Donation date must be a valid date (YYYY-MM-DD)"},
		{"invalid blood type", func(in *usecase.ScheduleDonationInput) { in.BloodType = "O" }, "Invalid blood type"},
		{"yesterday", func(in *usecase.ScheduleDonationInput) { in.Date = "2026-10-15" }, "Donation date must be in the future"},
		{"name too long", func(in *usecase.ScheduleDonationInput) { in.Name = strings.Repeat("n", 101) }, "Name must be at most 100 characters long"},
		{"phone too long", func(in *usecase.ScheduleDonationInput) { in.Phone = strings.Repeat("5", 33) }, "Phone must be at most 32 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestDonationService(t)
			input := validScheduleInput()
			tt.mutate(input)

			donation, err := f.service.ScheduleDonation(context.Background(), uuid.New(), input)

			assert.Nil(t, donation)
			requireAppError(t, err, domainerrors.ErrValidationFailed, tt.msg)
		})
	}
}

func TestDonationService_ScheduleDonation_StoreFailure(t *testing.T) {
	f := createTestDonationService(t)

	f.donationRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create donation"))

	_, err := f.service.ScheduleDonation(context.Background(), uuid.New(), validScheduleInput())

	require.Error(t, err)
	assert.True(t, domainerrors.IsServerError(err))
}

func TestDonationService_Listings(t *testing.T) {
	f := createTestDonationService(t)
	userID := uuid.New()
	mine := []*entity.Donation{{ID: uuid.New(), UserID: userID}}
	all := append([]*entity.Donation{{ID: uuid.New(), UserID: uuid.New(), UserName: "Sam"}}, mine...)

	f.donationRepo.EXPECT().ListByUser(mock.Anything, userID).Return(mine, nil)
	f.donationRepo.EXPECT().ListAll(mock.Anything).Return(all, nil)

	gotMine, err := f.service.ListMyDonations(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, mine, gotMine)

	gotAll, err := f.service.ListAllDonations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, gotAll)
}

func TestDonationService_DonationPass(t *testing.T) {
	f := createTestDonationService(t)
	userID := uuid.New()
	donation := &entity.Donation{
		ID:           uuid.New(),
		UserID:       userID,
		DonationDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		BloodType:    entity.BloodTypeABNegative,
	}

	f.donationRepo.EXPECT().FindByID(mock.Anything, donation.ID).Return(donation, nil)
	f.qrcode.EXPECT().
		GenerateDonationPass(service.DonationPass{
			DonationID:   donation.ID,
			UserID:       userID,
			DonationDate: donation.DonationDate,
			BloodType:    "AB-",
		}).
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	pass, err := f.service.DonationPass(context.Background(), userID, donation.ID)

	require.NoError(t, err)
	assert.Equal(t, "image/png", pass.ContentType)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, pass.PNG)
}

func TestDonationService_DonationPass_NotOwned(t *testing.T) {
	f := createTestDonationService(t)
	donation := &entity.Donation{ID: uuid.New(), UserID: uuid.New()}

	f.donationRepo.EXPECT().FindByID(mock.Anything, donation.ID).Return(donation, nil)

	_, err := f.service.DonationPass(context.Background(), uuid.New(), donation.ID)

	requireAppError(t, err, domainerrors.ErrDonationNotFound, "Donation not found")
}

func TestDonationService_DonationPass_Missing(t *testing.T) {
	f := createTestDonationService(t)
	id := uuid.New()

	f.donationRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrDonationNotFound)

	_, err := f.service.DonationPass(context.Background(), uuid.New(), id)

	requireAppError(t, err, domainerrors.ErrDonationNotFound, "Donation not found")
}
