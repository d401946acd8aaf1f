package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pouchesitaly/constants"
	"pouchesitaly/database"
	"pouchesitaly/helper"
	"pouchesitaly/logger"
	"pouchesitaly/model"
	"pouchesitaly/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CheckoutBridge is the single storefront-facing entrypoint. The body
// is dispatched on its operation field; anything outside the closed
// set is a 400, anything but POST a 405.
func CheckoutBridge(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return utils.BridgeError(c, fiber.StatusMethodNotAllowed, errors.New("method not allowed"))
	}

	var env model.CheckoutEnvelope
	if err := c.BodyParser(&env); err != nil {
		return utils.BridgeError(c, fiber.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
	}

	log := logger.With("request_id", utils.RequestID(c), "operation", string(env.Operation))

	switch env.Operation {
	case model.OpCreateCheckout:
		result, status, err := CreateCheckout(c.Context(), env)
		if err != nil {
			log.Error("create_checkout failed", "error", err)
			return utils.BridgeError(c, status, err)
		}
		log.Info("create_checkout ok", "order_number", result.OrderNumber)
		return utils.BridgeSuccess(c, result)

	case model.OpMarkPaid:
		result, status, err := MarkPaid(c.Context(), env.OrderID, env.KustomOrderID, env.KustomOrderToken)
		if err != nil {
			log.Error("mark_paid failed", "order_id", env.OrderID, "error", err)
			return utils.BridgeError(c, status, err)
		}
		log.Info("mark_paid ok", "order_id", env.OrderID, "status", result.Status)
		return utils.BridgeSuccess(c, result)

	case model.OpGetOrder:
		var order model.Order
		if err := database.DB.Preload("Items").First(&order, env.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.BridgeError(c, fiber.StatusNotFound, errors.New("order not found"))
			}
			return utils.BridgeError(c, fiber.StatusInternalServerError, err)
		}
		return utils.BridgeSuccess(c, fiber.Map{"order": order})

	default:
		return utils.BridgeError(c, fiber.StatusBadRequest, fmt.Errorf("unknown operation %q", env.Operation))
	}
}

// CreateCheckout validates the cart, persists a pending order, opens a
// provider session and records the session ids in the notes bag. If
// the provider call fails the order is marked cancelled before the
// error propagates, so no pending order is ever left without a
// session behind it.
func CreateCheckout(ctx context.Context, input model.CheckoutEnvelope) (*model.CreateCheckoutResult, int, error) {
	if input.Customer.Email == "" {
		return nil, fiber.StatusBadRequest, helper.ErrMissingEmail
	}

	items, err := helper.SanitizeCart(input.Cart)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	subtotalMinor := helper.CartSubtotalMinor(items)
	subtotal := helper.ToMajorUnits(subtotalMinor)
	shippingCost := 0.0 // flat free shipping for now
	total := subtotal + shippingCost
	country := helper.NormalizeCountry(input.Customer.Country)
	currency := input.Currency
	if currency == "" {
		currency = constants.DEFAULT_CURRENCY
	}

	orderNumber := helper.GenerateOrderNumber()
	now := time.Now().UTC()

	initialNotes, err := model.MergeNotes("", map[string]any{
		"created_at":   now.Format(time.RFC3339),
		"processor":    constants.PROCESSOR_KUSTOM,
		"order_number": orderNumber,
	})
	if err != nil {
		return nil, fiber.StatusInternalServerError, err
	}

	order := model.Order{
		OrderNumber:   orderNumber,
		CustomerEmail: input.Customer.Email,
		CustomerName:  input.Customer.FirstName + " " + input.Customer.LastName,
		CustomerPhone: input.Customer.Phone,
		ShippingAddress: model.ShippingAddress{
			Email:      input.Customer.Email,
			GivenName:  input.Customer.FirstName,
			FamilyName: input.Customer.LastName,
			Street:     input.Customer.Address,
			City:       input.Customer.City,
			PostalCode: input.Customer.PostalCode,
			Country:    country,
			Phone:      input.Customer.Phone,
		},
		Items:        items,
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        total,
		Status:       constants.ORDER_PENDING,
		Notes:        initialNotes,
	}

	if err := database.DB.Create(&order).Error; err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("persist order: %w", err)
	}

	kustom := NewKustom()
	payload := buildKustomPayload(&order, items, country, currency, helper.MapLocale(input.Locale), subtotalMinor, kustom.Config.SiteURL)

	session, err := kustom.CreateOrder(ctx, payload)
	if err == nil && (session.HTMLSnippet == "" || session.OrderID == "") {
		err = errors.New("kustom response missing html_snippet or order_id")
	}
	if err != nil {
		cancelFailedCheckout(&order, err)
		return nil, fiber.StatusBadGateway, err
	}

	notes, mergeErr := model.MergeNotes(order.Notes, map[string]any{
		"kustom_order_id":           session.OrderID,
		"kustom_order_token":        session.SessionToken,
		"kustom_session_created_at": time.Now().UTC().Format(time.RFC3339),
	})
	if mergeErr == nil {
		if err := database.DB.Model(&order).Update("notes", notes).Error; err != nil {
			logger.Error("persist session ids failed", "order", order.OrderNumber, "error", err)
		}
	} else {
		logger.Error("merge session notes failed", "order", order.OrderNumber, "error", mergeErr)
	}

	BroadcastOrder(order.ID, constants.ORDER_PENDING)

	return &model.CreateCheckoutResult{
		OrderID:          order.ID,
		OrderNumber:      order.OrderNumber,
		KustomOrderID:    session.OrderID,
		KustomOrderToken: session.SessionToken,
		HTMLSnippet:      session.HTMLSnippet,
		CheckoutURL:      session.CheckoutURL,
		Status:           constants.ORDER_PENDING,
	}, fiber.StatusOK, nil
}

// MarkPaid reconciles one order against the provider. Read-only on
// failure: the order row is only touched after a successful fetch.
func MarkPaid(ctx context.Context, orderID uint, kustomOrderID, kustomToken string) (*model.MarkPaidResult, int, error) {
	if orderID == 0 {
		return nil, fiber.StatusBadRequest, errors.New("order_id is required")
	}

	var order model.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.StatusNotFound, errors.New(constants.ORDER_NOT_FOUND)
		}
		return nil, fiber.StatusInternalServerError, err
	}

	notes, err := model.ParseNotes(order.Notes)
	if err != nil {
		return nil, fiber.StatusInternalServerError, fmt.Errorf("parse order notes: %w", err)
	}

	// caller-supplied ids win, stored ones are the fallback
	if kustomOrderID == "" {
		kustomOrderID = notes.KustomOrderID
	}
	if kustomToken == "" {
		kustomToken = notes.KustomOrderToken
	}
	if kustomOrderID == "" {
		return nil, fiber.StatusBadRequest, errors.New("no kustom order id to reconcile")
	}

	remote, err := NewKustom().GetOrder(ctx, kustomOrderID, kustomToken)
	if err != nil {
		return nil, fiber.StatusBadGateway, err
	}

	mapped := helper.MapKustomStatus(remote.Status)

	merged, err := model.MergeNotes(order.Notes, map[string]any{
		"kustom_status":  remote.Status,
		"last_synced_at": time.Now().UTC().Format(time.RFC3339),
		"confirmation":   json.RawMessage(remote.Raw),
	})
	if err != nil {
		return nil, fiber.StatusInternalServerError, err
	}

	wasConfirmed := order.Status == constants.ORDER_PROCESSING
	if err := database.DB.Model(&order).Updates(map[string]any{
		"status": mapped,
		"notes":  merged,
	}).Error; err != nil {
		return nil, fiber.StatusInternalServerError, err
	}

	confirmed := mapped == constants.ORDER_PROCESSING
	if confirmed && !wasConfirmed {
		notifyPaymentConfirmed(&order)
	}
	BroadcastOrder(order.ID, mapped)

	var confirmationData map[string]any
	_ = json.Unmarshal(remote.Raw, &confirmationData)

	return &model.MarkPaidResult{
		OrderID:          order.ID,
		OrderNumber:      order.OrderNumber,
		Status:           mapped,
		PaymentConfirmed: confirmed,
		KustomStatus:     remote.Status,
		ConfirmationData: confirmationData,
	}, fiber.StatusOK, nil
}

// cancelFailedCheckout is the compensating step for create_checkout:
// the already-persisted order must not stay pending when no session
// exists for a customer to complete.
func cancelFailedCheckout(order *model.Order, cause error) {
	notes, err := model.MergeNotes(order.Notes, map[string]any{
		"checkout_error": cause.Error(),
		"failed_at":      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("merge failure notes failed", "order", order.OrderNumber, "error", err)
		notes = order.Notes
	}
	if err := database.DB.Model(order).Updates(map[string]any{
		"status": constants.ORDER_CANCELLED,
		"notes":  notes,
	}).Error; err != nil {
		logger.Error("cancel failed checkout failed", "order", order.OrderNumber, "error", err)
	}
}

func buildKustomPayload(order *model.Order, items []model.OrderItem, country, currency, locale string, subtotalMinor int64, siteURL string) model.KustomOrderPayload {
	lines := make([]model.KustomOrderLine, 0, len(items))
	for _, item := range items {
		unitMinor := helper.ToMinorUnits(item.Price)
		lines = append(lines, model.KustomOrderLine{
			Name:        fmt.Sprintf("%s (%d pouches)", item.Name, item.PackSize),
			Quantity:    item.Quantity,
			UnitPrice:   unitMinor,
			TotalAmount: unitMinor * int64(item.Quantity),
			ImageURL:    item.Image,
		})
	}

	return model.KustomOrderPayload{
		PurchaseCountry:  country,
		PurchaseCurrency: currency,
		Locale:           locale,
		OrderAmount:      subtotalMinor,
		OrderLines:       lines,
		MerchantUrls: model.KustomMerchantUrls{
			Terms:        siteURL + "/terms",
			Checkout:     siteURL + "/checkout",
			Confirmation: siteURL + "/checkout/confirmation?order=" + order.OrderNumber,
			Push:         siteURL + "/api/checkout/push?order=" + order.OrderNumber,
		},
		MerchantRef1: order.OrderNumber,
	}
}

// notifyPaymentConfirmed fires the customer confirmation email and the
// shop notice the first time an order reaches processing.
func notifyPaymentConfirmed(order *model.Order) {
	var items []model.OrderItem
	database.DB.Where("order_id = ?", order.ID).Find(&items)

	summary := ""
	for i, item := range items {
		if i > 0 {
			summary += ", "
		}
		summary += fmt.Sprintf("%dx %s", item.Quantity, item.Name)
	}

	siteURL := NewKustom().Config.SiteURL
	utils.SendOrderConfirmationEmail(order.CustomerEmail, utils.OrderConfirmationData{
		OrderNumber: order.OrderNumber,
		Items:       summary,
		Subtotal:    order.Subtotal,
		Total:       order.Total,
		TrackingURL: siteURL + "/orders/" + order.OrderNumber,
	})
	utils.SendNewOrderNotice(order.OrderNumber, order.CustomerEmail, order.Total)
}
