package service

import (
	"coffeeshop-pos/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ActivityLogger appends audit rows without ever failing the mutation that
// triggered them. A write failure only shows up in the service log.
type ActivityLogger struct {
	repo AuditRepository
	log  *logrus.Logger
}

func NewActivityLogger(repo AuditRepository, log *logrus.Logger) *ActivityLogger {
	return &ActivityLogger{repo: repo, log: log}
}

func (a *ActivityLogger) Record(action, description string, userID *int, metadata map[string]string) {
	entry := domain.ActivityLog{
		Action:      action,
		Description: description,
		UserID:      userID,
		Metadata:    metadata,
	}
	if err := a.repo.InsertActivityLog(&entry); err != nil {
		a.log.WithFields(logrus.Fields{
			"action": action,
		}).Warnf("activity log write failed: %v", err)
	}
}

func (a *ActivityLogger) RecordSale(orderID int, amount decimal.Decimal, userID *int) {
	entry := domain.SalesLog{
		Action:  "order_completed",
		OrderID: orderID,
		Amount:  amount,
		UserID:  userID,
	}
	if err := a.repo.InsertSalesLog(&entry); err != nil {
		a.log.WithFields(logrus.Fields{
			"order_id": orderID,
		}).Warnf("sales log write failed: %v", err)
	}
}

var _ ActivityRecorder = (*ActivityLogger)(nil)
