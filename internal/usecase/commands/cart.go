package commands

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"storefront-sim/internal/domain/cart"
	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/pkg/clock"
	"storefront-sim/internal/pkg/errs"
	"storefront-sim/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound    = errs.ErrCartNotFound
	ErrProductNotFound = product.ErrProductNotFound
	ErrOutOfStock      = product.ErrOutOfStock
	ErrLineNotFound    = cart.ErrLineNotFound
	ErrInvalidQuantity = cart.ErrInvalidQuantity
)

type CreateCartResult struct {
	CartID    uuid.UUID
	Token     string
	ExpiresIn time.Duration
}

type CartCommands interface {
	CreateCart(ctx context.Context) (*CreateCartResult, error)
	AddItem(ctx context.Context, cartID uuid.UUID, productID product.ID, quantity int) error
	ChangeQuantity(ctx context.Context, cartID uuid.UUID, productID product.ID, delta int) error
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID product.ID) error
	ClearCart(ctx context.Context, cartID uuid.UUID) error
}

type cartCommandsImpl struct {
	carts     shared.CartRepository
	catalog   *product.Catalog
	selection shared.SelectionRecorder
	tokens    shared.TokenIssuer
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCartCommands(
	carts shared.CartRepository,
	catalog *product.Catalog,
	selection shared.SelectionRecorder,
	tokens shared.TokenIssuer,
	clk clock.Clock,
	logger *slog.Logger,
) CartCommands {
	return &cartCommandsImpl{
		carts:     carts,
		catalog:   catalog,
		selection: selection,
		tokens:    tokens,
		clock:     clk,
		logger:    logger,
	}
}

func (uc *cartCommandsImpl) CreateCart(ctx context.Context) (*CreateCartResult, error) {
	ledger := cart.NewLedger(uuid.New(), uc.catalog, uc.clock.Now)
	if err := uc.carts.Save(ctx, ledger); err != nil {
		return nil, errs.Wrap(err, "save cart")
	}

	token, err := uc.tokens.GenerateToken(ledger.ID())
	if err != nil {
		_ = uc.carts.Delete(ctx, ledger.ID())
		return nil, errs.Wrap(err, "issue cart token")
	}

	uc.logger.Info("cart created", "cart_id", ledger.ID())
	return &CreateCartResult{
		CartID:    ledger.ID(),
		Token:     token,
		ExpiresIn: uc.tokens.TokenDuration(),
	}, nil
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, cartID uuid.UUID, productID product.ID, quantity int) error {
	ledger, err := uc.carts.FindByID(ctx, cartID)
	if err != nil {
		return err
	}
	if err := ledger.AddLine(productID, quantity); err != nil {
		uc.logger.Debug("add to cart rejected", "cart_id", cartID, "product_id", productID, "quantity", quantity, "error", err)
		return err
	}
	uc.selection.UpdateLastSelectedProduct(productID)
	return nil
}

func (uc *cartCommandsImpl) ChangeQuantity(ctx context.Context, cartID uuid.UUID, productID product.ID, delta int) error {
	ledger, err := uc.carts.FindByID(ctx, cartID)
	if err != nil {
		return err
	}
	return ledger.ChangeQuantity(productID, delta)
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, cartID uuid.UUID, productID product.ID) error {
	ledger, err := uc.carts.FindByID(ctx, cartID)
	if err != nil {
		return err
	}
	return ledger.RemoveLine(productID)
}

func (uc *cartCommandsImpl) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	ledger, err := uc.carts.FindByID(ctx, cartID)
	if err != nil {
		return err
	}
	return ledger.Clear()
}
