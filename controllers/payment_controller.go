// controllers/payment_controller.go
package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ursmaheshj/payment-portal/config"
	"github.com/ursmaheshj/payment-portal/models"
	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func clauseUpdateLock() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// ShowPaymentForm lists the user's unpaid dues; ?service= preselects one.
func ShowPaymentForm(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		redirect(c, "/login/")
		return
	}

	q := config.DB.Preload("Category").
		Where("user_id = ? AND status <> ?", uid, models.StatusFull).
		Order("due_date ASC, id ASC")

	var selected *models.Service
	if sid := c.Query("service"); sid != "" {
		var svc models.Service
		if err := config.DB.Preload("Category").
			Where("user_id = ?", uid).
			First(&svc, sid).Error; err != nil {
			utils.Error(c, "Service not found.")
			redirect(c, "/dashboard/")
			return
		}
		selected = &svc
		q = q.Where("id = ?", svc.ID)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		utils.Error(c, "Failed to load services.")
		redirect(c, "/dashboard/")
		return
	}

	render(c, "make_payment.html", gin.H{
		"Services": services,
		"Selected": selected,
	})
}

// MakePayment records a single payment against a due. The preconditions run
// in order and the first violation aborts with a notice and no writes:
// ownership, already fully paid, valid positive amount, overpayment,
// duplicate resubmission. The payment insert and the service status update
// happen in one transaction with the service row locked, so two concurrent
// submissions cannot both pass the remaining check.
func MakePayment(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		redirect(c, "/login/")
		return
	}

	serviceParam := c.PostForm("service")
	serviceID, err := strconv.Atoi(serviceParam)
	if err != nil || serviceID <= 0 {
		utils.Error(c, "Service not found.")
		redirect(c, "/dashboard/")
		return
	}

	amount, parseErr := models.ParseAmount(c.PostForm("amount"))
	if parseErr != nil {
		// Ownership is still verified first so a bad amount on someone
		// else's service reads as not found, not as a validation hint.
		var svc models.Service
		if err := config.DB.Where("user_id = ?", uid).
			First(&svc, serviceID).Error; err != nil {
			utils.Error(c, "Service not found.")
			redirect(c, "/dashboard/")
			return
		}
		if svc.Status == models.StatusFull {
			utils.Warning(c, "This service is already fully paid. No further payments allowed.")
			redirect(c, "/dashboard/")
			return
		}
		if errors.Is(parseErr, models.ErrAmountNotPositive) {
			utils.Error(c, "Payment amount must be positive.")
		} else {
			utils.Error(c, "Please enter a valid payment amount.")
		}
		redirect(c, "/make_payment/?service="+serviceParam)
		return
	}

	now := time.Now().UTC()

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var svc models.Service
		if err := tx.Clauses(clauseUpdateLock()).
			Where("user_id = ?", uid).
			First(&svc, serviceID).Error; err != nil {
			return err
		}

		var payments []models.Payment
		if err := tx.Where("service_id = ? AND user_id = ?", svc.ID, uid).
			Order("payment_date DESC, id DESC").
			Find(&payments).Error; err != nil {
			return err
		}
		totalPaid := models.TotalPaid(payments)
		var last *models.Payment
		if len(payments) > 0 {
			last = &payments[0]
		}

		if err := models.CheckPayment(svc, totalPaid, last, amount, now); err != nil {
			return err
		}

		payment := models.Payment{
			Ref:         uuid.NewString(),
			UserID:      uid,
			ServiceID:   svc.ID,
			CategoryID:  svc.CategoryID,
			AmountPaid:  amount,
			PaymentDate: now,
			Status:      models.PaymentStatus(amount, svc.DueAmount),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		newStatus := models.ServiceStatus(svc.DueAmount, totalPaid.Add(amount))
		return tx.Model(&models.Service{}).
			Where("id = ?", svc.ID).
			Update("status", newStatus).Error
	})

	var overpay *models.OverpayError
	switch {
	case txErr == nil:
		utils.Success(c, fmt.Sprintf("Payment of %s recorded!", amount.StringFixed(2)))
		redirect(c, "/dashboard/")
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		utils.Error(c, "Service not found.")
		redirect(c, "/dashboard/")
	case errors.Is(txErr, models.ErrServiceFullyPaid):
		utils.Warning(c, "This service is already fully paid. No further payments allowed.")
		redirect(c, "/dashboard/")
	case errors.Is(txErr, models.ErrAmountNotPositive):
		utils.Error(c, "Payment amount must be positive.")
		redirect(c, "/make_payment/?service="+serviceParam)
	case errors.As(txErr, &overpay):
		utils.Error(c, fmt.Sprintf("Payment amount cannot exceed remaining due (%s).", overpay.Remaining.StringFixed(2)))
		redirect(c, "/make_payment/?service="+serviceParam)
	case errors.Is(txErr, models.ErrDuplicatePayment):
		utils.Warning(c, "Duplicate payment detected. Please wait before retrying.")
		redirect(c, "/dashboard/")
	default:
		utils.Error(c, "Payment failed. Please try again.")
		redirect(c, "/make_payment/?service="+serviceParam)
	}
}
