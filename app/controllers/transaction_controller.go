package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salonhub/app/models"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/license"
	"github.com/salonhub/salonhub/internal/pkg/requestctx"
)

// TransactionController serves the financial ledger and reports.
type TransactionController struct {
	transactions repository.TransactionRepository
	licenses     repository.LicenseRepository
}

// NewTransactionController creates a transaction controller.
func NewTransactionController(transactions repository.TransactionRepository, licenses repository.LicenseRepository) *TransactionController {
	return &TransactionController{transactions: transactions, licenses: licenses}
}

func (tc *TransactionController) HandleList(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)

	if kind := c.Query("kind"); kind != "" {
		txns, err := tc.transactions.ListByKind(salonID, kind, offset, limit)
		if err != nil {
			return internalError(c, "Failed to list transactions")
		}
		return c.JSON(fiber.Map{"transactions": txns})
	}

	txns, err := tc.transactions.List(salonID, offset, limit)
	if err != nil {
		return internalError(c, "Failed to list transactions")
	}
	return c.JSON(fiber.Map{"transactions": txns})
}

type expenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// HandleCreateExpense appends an expense entry to the ledger.
func (tc *TransactionController) HandleCreateExpense(c *fiber.Ctx) error {
	var req expenseRequest
	if err := c.BodyParser(&req); err != nil {
		return validationFailed(c, "Invalid request body")
	}
	if req.Amount <= 0 {
		return validationFailed(c, "Amount must be positive")
	}

	txn := &models.Transaction{
		SalonID:     requestctx.SalonID(c),
		Kind:        models.TransactionExpense,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := tc.transactions.Create(txn); err != nil {
		return internalError(c, "Failed to record expense")
	}
	return c.Status(fiber.StatusCreated).JSON(txn)
}

// HandleReport summarizes the ledger over a window. The report detail level
// follows the license's report depth: level 1 is totals only, level 2 adds
// the balance, level 3 adds license payments.
func (tc *TransactionController) HandleReport(c *fiber.Ctx) error {
	salonID := requestctx.SalonID(c)

	to := time.Now()
	from := to.AddDate(0, -1, 0)
	if fromQ := c.Query("from"); fromQ != "" {
		parsed, err := time.Parse("2006-01-02", fromQ)
		if err != nil {
			return validationFailed(c, "Invalid from, want YYYY-MM-DD")
		}
		from = parsed
	}
	if toQ := c.Query("to"); toQ != "" {
		parsed, err := time.Parse("2006-01-02", toQ)
		if err != nil {
			return validationFailed(c, "Invalid to, want YYYY-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1) // inclusive end day
	}

	depth := license.ReportDepth(models.PlanTrial)
	if lic, err := tc.licenses.GetBySalonID(salonID); err == nil {
		depth = lic.ReportDepth
	}

	income, err := tc.transactions.SumByKind(salonID, models.TransactionIncome, from, to)
	if err != nil {
		return internalError(c, "Failed to compute report")
	}
	expenses, err := tc.transactions.SumByKind(salonID, models.TransactionExpense, from, to)
	if err != nil {
		return internalError(c, "Failed to compute report")
	}

	report := fiber.Map{
		"from":     from.Format("2006-01-02"),
		"to":       to.Format("2006-01-02"),
		"income":   income,
		"expenses": expenses,
	}
	if depth >= 2 {
		report["balance"] = income - expenses
	}
	if depth >= 3 {
		licensePayments, err := tc.transactions.SumByKind(salonID, models.TransactionLicensePayment, from, to)
		if err != nil {
			return internalError(c, "Failed to compute report")
		}
		report["license_payments"] = licensePayments
	}
	return c.JSON(report)
}
