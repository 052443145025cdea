package midtrans

import (
	"frescoguard/domain"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// Gateway is the part of Midtrans the subscription flow talks to.
	Gateway interface {
		Enabled() bool
		CreateSnap(orderID string, plan domain.SubscriptionPlan, email string) (token string, redirectURL string, err error)
		CheckStatus(orderID string) (transactionStatus string, fraudStatus string, err error)
	}

	midtransGateway struct {
		serverKey string
		snap      snap.Client
		core      coreapi.Client
	}
)

func NewGateway(serverKey string, production bool) Gateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	g := &midtransGateway{serverKey: serverKey}
	g.snap.New(serverKey, env)
	g.core.New(serverKey, env)
	return g
}

func (g *midtransGateway) Enabled() bool {
	return g.serverKey != ""
}

func (g *midtransGateway) CreateSnap(orderID string, plan domain.SubscriptionPlan, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: plan.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.ID,
				Name:  plan.Name,
				Price: plan.GrossAmount,
				Qty:   1,
			},
		},
	}

	resp, midtransErr := g.snap.CreateTransaction(req)
	if midtransErr != nil {
		return "", "", midtransErr
	}
	return resp.Token, resp.RedirectURL, nil
}

func (g *midtransGateway) CheckStatus(orderID string) (string, string, error) {
	resp, midtransErr := g.core.CheckTransaction(orderID)
	if midtransErr != nil {
		return "", "", midtransErr
	}
	return resp.TransactionStatus, resp.FraudStatus, nil
}
