package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"golang.org/x/sync/singleflight"
)

const guestAddedMessage = "Added to cart"

type cartFacade struct {
	guest  usecase.GuestStateStore
	remote service.RemoteCartService
	bus    service.EventBus
	logger *slog.Logger

	// reads coalesces concurrent GetCart calls made with the same credential
	reads singleflight.Group
}

// NewCartFacade creates the cart usecase
func NewCartFacade(
	guest usecase.GuestStateStore,
	remote service.RemoteCartService,
	bus service.EventBus,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartFacade{
		guest:  guest,
		remote: remote,
		bus:    bus,
		logger: logger,
	}
}

func (f *cartFacade) AddItem(ctx context.Context, session entity.SessionContext, input usecase.AddItemInput) (*entity.CartMutationResult, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, domainerrors.ErrInvalidProductID
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	publishLoading(ctx, f.bus, entity.TopicHeaderCartLoading, session.ClientID, true)
	defer publishLoading(ctx, f.bus, entity.TopicHeaderCartLoading, session.ClientID, false)

	if !session.HasCredential() {
		err := f.guest.AddLine(ctx, session.ClientID, productID, quantity, input.Weight, input.Product)
		f.logGuestWrite(ctx, "add line", err)
		f.publishGuestCount(ctx, session.ClientID)

		return &entity.CartMutationResult{Success: true, Message: guestAddedMessage}, nil
	}

	result, err := f.remote.AddItem(ctx, session.Credential, service.RemoteAddRequest{
		ProductID: productID,
		Quantity:  strconv.Itoa(quantity),
	})
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.ErrRemoteCartFailed, err)
	}

	publishCartUpdated(ctx, f.bus, session.ClientID, nil)

	return result, nil
}

func (f *cartFacade) GetItems(ctx context.Context, session entity.SessionContext) ([]entity.CartLine, error) {
	if !session.HasCredential() {
		return f.guest.Lines(ctx, session.ClientID), nil
	}

	body, err := sharedRead(ctx, &f.reads, session.Credential, func(ctx context.Context) ([]byte, error) {
		return f.remote.GetCart(ctx, session.Credential)
	})
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.ErrRemoteCartFailed, err)
	}

	return normalizeCartEnvelope(body), nil
}

func (f *cartFacade) IncreaseQuantity(ctx context.Context, session entity.SessionContext, productID, weight string) error {
	return f.stepQuantity(ctx, session, productID, weight, entity.QuantityActionIncrement)
}

func (f *cartFacade) DecreaseQuantity(ctx context.Context, session entity.SessionContext, productID, weight string) error {
	return f.stepQuantity(ctx, session, productID, weight, entity.QuantityActionDecrement)
}

func (f *cartFacade) stepQuantity(ctx context.Context, session entity.SessionContext, productID, weight string, action entity.QuantityAction) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domainerrors.ErrInvalidProductID
	}

	if !session.HasCredential() {
		delta := 1
		if action == entity.QuantityActionDecrement {
			delta = -1
		}

		err := f.guest.AdjustQuantity(ctx, session.ClientID, productID, weight, delta)
		f.logGuestWrite(ctx, "adjust quantity", err)
		f.publishGuestCount(ctx, session.ClientID)

		return nil
	}

	if err := f.remote.UpdateQuantity(ctx, session.Credential, productID, action); err != nil {
		return domainerrors.NewUpstreamError(domainerrors.ErrRemoteCartFailed, err)
	}

	publishCartUpdated(ctx, f.bus, session.ClientID, nil)

	return nil
}

func (f *cartFacade) RemoveItem(ctx context.Context, session entity.SessionContext, productID, weight string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return domainerrors.ErrInvalidProductID
	}

	if !session.HasCredential() {
		err := f.guest.RemoveLine(ctx, session.ClientID, productID, weight)
		f.logGuestWrite(ctx, "remove line", err)
		f.publishGuestCount(ctx, session.ClientID)

		return nil
	}

	if err := f.remote.RemoveItem(ctx, session.Credential, productID); err != nil {
		return domainerrors.NewUpstreamError(domainerrors.ErrRemoteCartFailed, err)
	}

	publishCartUpdated(ctx, f.bus, session.ClientID, nil)

	return nil
}

func (f *cartFacade) Clear(ctx context.Context, session entity.SessionContext) error {
	if !session.HasCredential() {
		err := f.guest.ReplaceAll(ctx, session.ClientID, nil)
		f.logGuestWrite(ctx, "clear", err)
		f.publishGuestCount(ctx, session.ClientID)

		return nil
	}

	if err := f.remote.ClearCart(ctx, session.Credential); err != nil {
		return domainerrors.NewUpstreamError(domainerrors.ErrRemoteCartFailed, err)
	}

	publishCartUpdated(ctx, f.bus, session.ClientID, nil)

	return nil
}

func (f *cartFacade) Count(ctx context.Context, session entity.SessionContext) (int, error) {
	lines, err := f.GetItems(ctx, session)
	if err != nil {
		return 0, err
	}

	return entity.TotalQuantity(lines), nil
}

func (f *cartFacade) publishGuestCount(ctx context.Context, clientID string) {
	count := entity.TotalQuantity(f.guest.Lines(ctx, clientID))
	publishCartUpdated(ctx, f.bus, clientID, &count)
}

// logGuestWrite records a failed guest write; the hot copy already holds the change
func (f *cartFacade) logGuestWrite(ctx context.Context, op string, err error) {
	if err == nil {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, f.logger).Warn("Guest cart write failed",
		slog.String("op", op),
		slog.Any("error", err),
	)
}
