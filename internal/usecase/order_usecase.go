package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"barcraft/internal/domain/entities"
	"barcraft/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrVenueForbidden        = errors.New("actor may not act on this venue")
	ErrOrderNotPaid          = errors.New("only paid orders can be fulfilled")
	ErrOrderNotCancellable   = errors.New("order can no longer be cancelled")
	ErrCancelRequiresAdmin   = errors.New("only admins can cancel orders")
	ErrUnsupportedTransition = errors.New("unsupported status transition")
	ErrInvalidStatusValue    = errors.New("invalid status value")
	ErrInvalidStatusFilter   = errors.New("invalid status filter")
)

const defaultOrderListLimit = 50

// IOrderUseCase enforces the order state machine and role-scoped access.
//
// created -> paid is owned by the webhook reconciler; the only staff-driven
// transition here is paid -> fulfilled, plus the administrative cancel path.

type IOrderUseCase interface {
	UpdateStatus(ctx context.Context, actor entities.Actor, orderID, status string) (entities.Order, error)
	ListByVenue(ctx context.Context, actor entities.Actor, venueID, statusFilter string, limit int) ([]entities.Order, error)
	GetOrderRecipe(ctx context.Context, orderID string) (entities.Order, entities.Recipe, error)
	ListPayments(ctx context.Context, actor entities.Actor, orderID string) ([]entities.Payment, error)
}

type OrderUseCase struct {
	orderRepo   interfaces.IOrderRepository
	recipeRepo  interfaces.IRecipeRepository
	paymentRepo interfaces.IPaymentRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orderRepo interfaces.IOrderRepository, recipeRepo interfaces.IRecipeRepository, paymentRepo interfaces.IPaymentRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, recipeRepo: recipeRepo, paymentRepo: paymentRepo}
}

// UpdateStatus applies a staff/admin-requested transition. Authorization runs
// before any state-machine logic.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, orderID, status string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	target, err := entities.ParseOrderStatus(status)
	if err != nil {
		return entities.Order{}, ErrInvalidStatusValue
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !actor.CanActOn(order.VenueID) {
		log.Printf("[order][usecase] forbidden actor=%s role=%s actor_venue=%s order_venue=%s", actor.ID, actor.Role, actor.VenueID, order.VenueID)
		return entities.Order{}, ErrVenueForbidden
	}

	switch target {
	case entities.OrderStatusFulfilled:
		return u.fulfill(ctx, order)
	case entities.OrderStatusCancelled:
		return u.cancel(ctx, actor, order)
	default:
		return entities.Order{}, ErrUnsupportedTransition
	}
}

// fulfill is idempotent: a repeat call on a fulfilled order returns the same
// fulfillment timestamp without a second write.
func (u *OrderUseCase) fulfill(ctx context.Context, order entities.Order) (entities.Order, error) {
	now := time.Now().UTC()

	switch order.Status {
	case entities.OrderStatusFulfilled:
		if order.FulfilledAt != nil {
			log.Printf("[order][usecase] fulfill no-op order_id=%s fulfilled_at=%s", order.ID, order.FulfilledAt.Format(time.RFC3339Nano))
			return order, nil
		}
		updated, err := u.orderRepo.SetFulfilledAt(ctx, order.ID, now)
		if err != nil {
			return entities.Order{}, err
		}
		if updated.ID == "" {
			// Timestamp landed concurrently; the stored value wins.
			return u.reloadFulfilled(ctx, order.ID)
		}
		return updated, nil
	case entities.OrderStatusPaid:
		updated, err := u.orderRepo.Fulfill(ctx, order.ID, now)
		if err != nil {
			return entities.Order{}, err
		}
		if updated.ID == "" {
			// Compare-and-set lost against a concurrent transition.
			return u.reloadFulfilled(ctx, order.ID)
		}
		log.Printf("[order][usecase] fulfilled order_id=%s", order.ID)
		return updated, nil
	default:
		return entities.Order{}, ErrOrderNotPaid
	}
}

func (u *OrderUseCase) reloadFulfilled(ctx context.Context, orderID string) (entities.Order, error) {
	current, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if current.Status == entities.OrderStatusFulfilled {
		return current, nil
	}
	return entities.Order{}, ErrOrderNotPaid
}

// cancel is the administrative escape hatch: admins may cancel orders that
// have not been fulfilled yet.
func (u *OrderUseCase) cancel(ctx context.Context, actor entities.Actor, order entities.Order) (entities.Order, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.Order{}, ErrCancelRequiresAdmin
	}
	if order.Status == entities.OrderStatusCancelled {
		return order, nil
	}
	if order.Status != entities.OrderStatusCreated && order.Status != entities.OrderStatusPaid {
		return entities.Order{}, ErrOrderNotCancellable
	}
	updated, err := u.orderRepo.TransitionStatus(ctx, order.ID, order.Status, entities.OrderStatusCancelled)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotCancellable
	}
	log.Printf("[order][usecase] cancelled order_id=%s by=%s", order.ID, actor.ID)
	return updated, nil
}

// ListByVenue returns the venue's most recent orders, newest first.
func (u *OrderUseCase) ListByVenue(ctx context.Context, actor entities.Actor, venueID, statusFilter string, limit int) ([]entities.Order, error) {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return nil, ErrInvalidVenueID
	}
	if !actor.CanActOn(venueID) {
		return nil, ErrVenueForbidden
	}

	var status *entities.OrderStatus
	if strings.TrimSpace(statusFilter) != "" {
		parsed, err := entities.ParseOrderStatus(statusFilter)
		if err != nil {
			return nil, ErrInvalidStatusFilter
		}
		status = &parsed
	}
	if limit <= 0 || limit > 200 {
		limit = defaultOrderListLimit
	}
	return u.orderRepo.ListByVenueID(ctx, venueID, status, int32(limit))
}

// GetOrderRecipe is the anonymous receipt view: a single order's recipe detail.
func (u *OrderUseCase) GetOrderRecipe(ctx context.Context, orderID string) (entities.Order, entities.Recipe, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.Recipe{}, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, entities.Recipe{}, err
	}
	if order.ID == "" {
		return entities.Order{}, entities.Recipe{}, ErrOrderNotFound
	}
	if order.RecipeID == "" {
		return entities.Order{}, entities.Recipe{}, ErrRecipeNotFound
	}

	recipe, err := u.recipeRepo.GetByID(ctx, order.RecipeID)
	if err != nil {
		return entities.Order{}, entities.Recipe{}, err
	}
	if recipe.ID == "" {
		return entities.Order{}, entities.Recipe{}, ErrRecipeNotFound
	}
	return order, recipe, nil
}

// ListPayments returns the ledger rows recorded for an order.
func (u *OrderUseCase) ListPayments(ctx context.Context, actor entities.Actor, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	if !actor.CanActOn(order.VenueID) {
		return nil, ErrVenueForbidden
	}
	return u.paymentRepo.ListByOrderID(ctx, orderID)
}
