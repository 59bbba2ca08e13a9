package usecases

import (
	"context"

	"tour-backoffice/internal/module/booking/models/request"
	"tour-backoffice/internal/module/booking/models/response"
	"tour-backoffice/internal/pkg/errors"
	"tour-backoffice/internal/pkg/paymob"
)

// Gateway calls are made once; a failure is logged and reported as 500.

func (u *usecase) SetupPaymob(ctx context.Context, payload *request.PaymobSetup) (response.PaymobSetup, error) {
	iframeURL, err := u.paymob.Setup(ctx, payload.AmountCents.Int64(), payload.Currency, paymob.Customer{
		Email:     payload.Customer.Email,
		FirstName: payload.Customer.FirstName,
		LastName:  payload.Customer.LastName,
		Phone:     payload.Customer.Phone,
	})
	if err != nil {
		u.log.Error(ctx, "error setup paymob payment", err)
		return response.PaymobSetup{}, errors.InternalServerError("Failed to initialize Paymob payment")
	}
	return response.PaymobSetup{IframeURL: iframeURL}, nil
}

func (u *usecase) SetupPaypal(ctx context.Context) (response.PaypalSetup, error) {
	token, err := u.paypal.ClientToken(ctx)
	if err != nil {
		u.log.Error(ctx, "error generate paypal client token", err)
		return response.PaypalSetup{}, errors.InternalServerError("Failed to load PayPal setup")
	}
	return response.PaypalSetup{ClientToken: token}, nil
}

func (u *usecase) CreatePaypalOrder(ctx context.Context, payload *request.PaypalOrder) (response.PaypalOrder, error) {
	order, err := u.paypal.CreateOrder(ctx, payload.Intent, payload.Amount, payload.Currency)
	if err != nil {
		u.log.Error(ctx, "error create paypal order", err)
		return response.PaypalOrder{}, errors.InternalServerError("Failed to create PayPal order")
	}
	return response.PaypalOrder{ID: order.ID, Status: order.Status}, nil
}

func (u *usecase) CapturePaypalOrder(ctx context.Context, orderID string) (response.PaypalOrder, error) {
	order, err := u.paypal.CaptureOrder(ctx, orderID)
	if err != nil {
		u.log.Error(ctx, "error capture paypal order", err)
		return response.PaypalOrder{}, errors.InternalServerError("Failed to capture PayPal order")
	}
	return response.PaypalOrder{ID: order.ID, Status: order.Status}, nil
}
