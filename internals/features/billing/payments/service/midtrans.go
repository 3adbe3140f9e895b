// file: internals/features/billing/payments/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"studioku_backend/internals/features/billing/payments/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans untuk satu invoice langganan.
func GenerateSnapToken(inv model.BillingInvoiceModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.BillingInvoiceOrderID,
			GrossAmt: inv.BillingInvoiceAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
