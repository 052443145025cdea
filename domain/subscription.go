package domain

import "errors"

const (
	PlanIDPremiumMonthly = "premium-monthly"
	PlanIDPremiumYearly  = "premium-yearly"

	TransactionPending    = "pending"
	TransactionSettlement = "settlement"
	TransactionDeny       = "deny"
	TransactionCancel     = "cancel"
	TransactionExpire     = "expire"
	TransactionFailure    = "failure"
)

var (
	MessageFailedCheckout   = "Error al procesar la suscripción"
	MessageFailedWebhook    = "Error al procesar la notificación de pago"
	MessageInvalidPlan      = "Plan inválido"
	MessageOrderNotFound    = "Orden no encontrada"
	MessagePaymentsDisabled = "Pagos no configurados"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrPaymentGateway      = errors.New("payment gateway error")
	ErrPaymentsDisabled    = errors.New("payment gateway not configured")
)

type (
	CheckoutRequest struct {
		PlanID string `json:"planId" validate:"required,oneof=premium-monthly premium-yearly" msg:"Plan inválido"`
	}

	CheckoutResponse struct {
		OrderID string `json:"orderId"`
		Token   string `json:"token"`
		URL     string `json:"url"`
	}

	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}

	// SubscriptionPlan describes a purchasable plan. GrossAmount is in IDR.
	SubscriptionPlan struct {
		ID          string
		Plan        string
		Name        string
		GrossAmount int64
		Months      int
	}
)

var SubscriptionPlans = map[string]SubscriptionPlan{
	PlanIDPremiumMonthly: {ID: PlanIDPremiumMonthly, Plan: PlanPremiumMonthly, Name: "FrescoGuard Premium Mensual", GrossAmount: 75000, Months: 1},
	PlanIDPremiumYearly:  {ID: PlanIDPremiumYearly, Plan: PlanPremiumYearly, Name: "FrescoGuard Premium Anual", GrossAmount: 600000, Months: 12},
}
