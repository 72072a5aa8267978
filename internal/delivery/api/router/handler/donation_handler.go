package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"bloodlink/internal/delivery/api/response"
	deliverycontext "bloodlink/internal/delivery/context"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/usecase"
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	Logger     *slog.Logger
}

// DonationHandler serves /api/donations. Every route sits behind AuthMiddleware.
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	logger     *slog.Logger
}

func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
		logger:     params.Logger,
	}
}

// ScheduleDonation handles POST /api/donations/schedule.
func (h *DonationHandler) ScheduleDonation(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input usecase.ScheduleDonationInput
	if err := c.Bind(&input); err != nil {
		return bindingError(c.Request().Context(), h.logger, err, "Invalid donation input")
	}

	donation, err := h.donationUC.ScheduleDonation(c.Request().Context(), identity.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Donation(c, http.StatusCreated, "Donation scheduled successfully", donation)
}

// ListMyDonations handles GET /api/donations/my-donations.
func (h *DonationHandler) ListMyDonations(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	donations, err := h.donationUC.ListMyDonations(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Donations(c, donations)
}

// ListAllDonations handles GET /api/donations/all.
func (h *DonationHandler) ListAllDonations(c echo.Context) error {
	donations, err := h.donationUC.ListAllDonations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Donations(c, donations)
}

// DonationPass handles GET /api/donations/:id/pass and returns a PNG QR code.
func (h *DonationHandler) DonationPass(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	// An unparsable id cannot name an existing donation.
	donationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrDonationNotFound, err.Error())
	}

	pass, err := h.donationUC.DonationPass(c.Request().Context(), identity.UserID, donationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, "donation-pass-"+donationID.String()+".png", pass.PNG)
}
