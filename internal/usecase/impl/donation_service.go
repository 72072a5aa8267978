package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"
	"bloodlink/internal/util"
)

type donationService struct {
	donationRepo repository.DonationRepository
	publisher    service.EventPublisher
	qrcode       service.QRCodeService
	metrics      service.MetricsRecorder
	logger       *slog.Logger
	now          func() time.Time
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	DonationRepo repository.DonationRepository
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewDonationService is the constructor for donationService.
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		donationRepo: params.DonationRepo,
		publisher:    params.Publisher,
		qrcode:       params.QRCode,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ScheduleDonation books a pending appointment for userID. The date may be today
// or later, judged by the server's local calendar day.
func (srv *donationService) ScheduleDonation(ctx context.Context, userID uuid.UUID, input *usecase.ScheduleDonationInput) (*entity.Donation, error) {
	if err := validateInput(input, scheduleRules); err != nil {
		return nil, err
	}

	donationDate, err := util.ParseDate(input.Date)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Donation date must be a valid date (YYYY-MM-DD)"), err.Error())
	}
	if donationDate.Before(util.CalendarDate(srv.now())) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("Donation date must be in the future"))
	}

	donation := &entity.Donation{
		UserID:       userID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		DonationDate: donationDate,
		BloodType:    entity.BloodType(input.BloodType),
		Status:       entity.DonationStatusPending,
	}
	if err := srv.donationRepo.Create(ctx, donation); err != nil {
		srv.log(ctx).Error("Failed to schedule donation", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create donation")
	}

	srv.metrics.RecordDonationScheduled()
	srv.log(ctx).Info("Donation scheduled",
		slog.String("donationID", donation.ID.String()),
		slog.String("date", util.FormatDate(donation.DonationDate)),
	)

	srv.publishScheduled(ctx, donation)

	return donation, nil
}

// publishScheduled is best-effort: the appointment is already stored.
func (srv *donationService) publishScheduled(ctx context.Context, donation *entity.Donation) {
	event := &service.DonationEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:         service.EventTypeDonationScheduled,
		DonationID:   donation.ID.String(),
		UserID:       donation.UserID.String(),
		DonationDate: util.FormatDate(donation.DonationDate),
		BloodType:    donation.BloodType.String(),
	}

	if err := srv.publisher.PublishDonationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish donation event",
			slog.String("donationID", event.DonationID),
			slog.Any("error", err),
		)
	}
}

func (srv *donationService) ListMyDonations(ctx context.Context, userID uuid.UUID) ([]*entity.Donation, error) {
	donations, err := srv.donationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user donations")
	}

	return donations, nil
}

func (srv *donationService) ListAllDonations(ctx context.Context) ([]*entity.Donation, error) {
	donations, err := srv.donationRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	return donations, nil
}

// DonationPass renders the check-in QR code. Another user's donation is reported as not found.
func (srv *donationService) DonationPass(ctx context.Context, userID, donationID uuid.UUID) (*usecase.DonationPassOutput, error) {
	donation, err := srv.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDonationNotFound, donationID.String())
		}

		return nil, errors.Wrap(err, "failed to find donation")
	}
	if donation.UserID != userID {
		srv.log(ctx).Warn("Donation pass requested for another user's donation",
			slog.String("donationID", donationID.String()),
			slog.String("userID", userID.String()),
		)

		return nil, errors.Wrap(domainerrors.ErrDonationNotFound, donationID.String())
	}

	png, err := srv.qrcode.GenerateDonationPass(service.DonationPass{
		DonationID:   donation.ID,
		UserID:       donation.UserID,
		DonationDate: donation.DonationDate,
		BloodType:    donation.BloodType.String(),
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.DonationPassOutput{
		Donation:    donation,
		PNG:         png,
		ContentType: "image/png",
	}, nil
}
