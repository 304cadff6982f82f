package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"golang.org/x/sync/singleflight"
)

type wishlistFacade struct {
	guest  usecase.GuestStateStore
	remote service.RemoteWishlistService
	bus    service.EventBus
	logger *slog.Logger

	reads singleflight.Group
}

// NewWishlistFacade creates the wishlist usecase
func NewWishlistFacade(
	guest usecase.GuestStateStore,
	remote service.RemoteWishlistService,
	bus service.EventBus,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistFacade{
		guest:  guest,
		remote: remote,
		bus:    bus,
		logger: logger,
	}
}

func (f *wishlistFacade) Items(ctx context.Context, session entity.SessionContext) ([]string, error) {
	if !session.HasCredential() {
		return f.guest.Wishlist(ctx, session.ClientID), nil
	}

	body, err := sharedRead(ctx, &f.reads, session.Credential, func(ctx context.Context) ([]byte, error) {
		return f.remote.GetWishlist(ctx, session.Credential)
	})
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.ErrRemoteWishlistFailed, err)
	}

	return normalizeWishlistEnvelope(body), nil
}

func (f *wishlistFacade) Add(ctx context.Context, session entity.SessionContext, productID string) error {
	return f.mutate(ctx, session, productID, f.guest.AddWishlistItem, f.remote.AddWishlistItem)
}

func (f *wishlistFacade) Remove(ctx context.Context, session entity.SessionContext, productID string) error {
	return f.mutate(ctx, session, productID, f.guest.RemoveWishlistItem, f.remote.RemoveWishlistItem)
}

func (f *wishlistFacade) mutate(
	ctx context.Context,
	session entity.SessionContext,
	productID string,
	guestOp func(ctx context.Context, clientID, productID string) error,
	remoteOp func(ctx context.Context, credential, productID string) error,
) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domainerrors.ErrInvalidProductID
	}

	publishLoading(ctx, f.bus, entity.TopicHeaderWishlistLoading, session.ClientID, true)
	defer publishLoading(ctx, f.bus, entity.TopicHeaderWishlistLoading, session.ClientID, false)

	if !session.HasCredential() {
		if err := guestOp(ctx, session.ClientID, productID); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, f.logger).Warn("Guest wishlist write failed",
				slog.String("product_id", productID),
				slog.Any("error", err),
			)
		}
	} else if err := remoteOp(ctx, session.Credential, productID); err != nil {
		return domainerrors.NewUpstreamError(domainerrors.ErrRemoteWishlistFailed, err)
	}

	publishTopic(ctx, f.bus, entity.TopicWishlistUpdated, session.ClientID)

	return nil
}

func (f *wishlistFacade) Contains(ctx context.Context, session entity.SessionContext, productID string) (bool, error) {
	ids, err := f.Items(ctx, session)
	if err != nil {
		return false, err
	}

	return entity.GuestWishlist(ids).Contains(strings.TrimSpace(productID)), nil
}

func (f *wishlistFacade) Count(ctx context.Context, session entity.SessionContext) (int, error) {
	ids, err := f.Items(ctx, session)
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}
