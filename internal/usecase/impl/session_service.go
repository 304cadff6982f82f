package impl

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	guest          usecase.GuestStateStore
	remoteCart     service.RemoteCartService
	remoteWishlist service.RemoteWishlistService
	bus            service.EventBus
	mergeOnSignIn  bool
	logger         *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	guest usecase.GuestStateStore,
	remoteCart service.RemoteCartService,
	remoteWishlist service.RemoteWishlistService,
	bus service.EventBus,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		guest:          guest,
		remoteCart:     remoteCart,
		remoteWishlist: remoteWishlist,
		bus:            bus,
		mergeOnSignIn:  cfg.Cart.MergeGuestOnSignIn,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn pushes every guest line and wishlist id to the account. Items the account
// rejects stay in the guest store so a later sign-in can retry them.
func (srv *sessionService) SignIn(ctx context.Context, session entity.SessionContext) (*usecase.SignInResult, error) {
	if !session.HasCredential() {
		return nil, domainerrors.ErrCredentialRequired
	}

	lines := srv.guest.Lines(ctx, session.ClientID)
	wishlist := srv.guest.Wishlist(ctx, session.ClientID)
	result := &usecase.SignInResult{}

	if !srv.mergeOnSignIn {
		result.GuestStateClean = len(lines) == 0 && len(wishlist) == 0
		srv.announce(ctx, session.ClientID, true)

		return result, nil
	}

	failedLines := make([]entity.CartLine, 0)
	for _, line := range lines {
		if err := srv.pushLine(ctx, session.Credential, line); err != nil {
			srv.log(ctx).Warn("Failed to merge guest cart line",
				slog.String("product_id", line.ProductID),
				slog.Any("error", err),
			)
			failedLines = append(failedLines, line)

			continue
		}
		result.MergedLines++
	}

	failedIDs := make([]string, 0)
	for _, productID := range wishlist {
		if err := srv.remoteWishlist.AddWishlistItem(ctx, session.Credential, productID); err != nil {
			srv.log(ctx).Warn("Failed to merge guest wishlist item",
				slog.String("product_id", productID),
				slog.Any("error", err),
			)
			failedIDs = append(failedIDs, productID)

			continue
		}
		result.MergedWishlist++
	}

	result.FailedLines = len(failedLines)
	result.FailedWishlist = len(failedIDs)

	if err := errors.Join(
		srv.guest.ReplaceAll(ctx, session.ClientID, failedLines),
		srv.guest.ReplaceWishlist(ctx, session.ClientID, failedIDs),
	); err != nil {
		srv.log(ctx).Warn("Failed to persist guest state after sign-in", slog.Any("error", err))
	}
	result.GuestStateClean = result.FailedLines == 0 && result.FailedWishlist == 0

	srv.log(ctx).Info("Guest state merged into account",
		slog.Int("merged_lines", result.MergedLines),
		slog.Int("failed_lines", result.FailedLines),
		slog.Int("merged_wishlist", result.MergedWishlist),
		slog.Int("failed_wishlist", result.FailedWishlist),
	)
	srv.announce(ctx, session.ClientID, true)

	return result, nil
}

func (srv *sessionService) pushLine(ctx context.Context, credential string, line entity.CartLine) error {
	quantity := line.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	res, err := srv.remoteCart.AddItem(ctx, credential, service.RemoteAddRequest{
		ProductID: line.ProductID,
		Quantity:  strconv.Itoa(quantity),
	})
	if err != nil {
		return err
	}
	if res != nil && !res.Success {
		return errors.Errorf("cart service refused line: %s", res.Message)
	}

	return nil
}

// SignOut returns the client to an empty guest state.
func (srv *sessionService) SignOut(ctx context.Context, session entity.SessionContext) error {
	if err := srv.guest.ClearAll(ctx, session.ClientID); err != nil {
		srv.log(ctx).Warn("Failed to clear guest state on sign-out", slog.Any("error", err))
	}

	srv.announce(ctx, session.ClientID, false)

	return nil
}

func (srv *sessionService) announce(ctx context.Context, clientID string, layoutChanged bool) {
	if layoutChanged {
		publishTopic(ctx, srv.bus, entity.TopicHomeLayoutInvalidate, clientID)
	}
	publishCartUpdated(ctx, srv.bus, clientID, nil)
	publishTopic(ctx, srv.bus, entity.TopicWishlistUpdated, clientID)
}
