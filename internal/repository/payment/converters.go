package payment

import "backoffice/internal/entities"

func ToDomain(paymentModel *PaymentDB) *entities.Payment {
	return &entities.Payment{
		ID:             paymentModel.ID,
		OrderID:        paymentModel.OrderID,
		Amount:         paymentModel.Amount,
		Method:         paymentModel.Method,
		Payer:          paymentModel.Payer,
		PaidAt:         paymentModel.PaidAt,
		ProofReference: paymentModel.ProofReference,
		CreatedAt:      paymentModel.CreatedAt,
	}
}
