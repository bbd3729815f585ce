package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

// CreateExpense
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var body struct {
		Title       string     `json:"title"`
		Amount      *float64   `json:"amount"`
		Category    *string    `json:"category"`
		ExpenseDate *time.Time `json:"expense_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Title == "" || body.Amount == nil || body.ExpenseDate == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("title, amount and expense_date are required"))
		return
	}

	expense := models.Expense{
		Title:       body.Title,
		Amount:      *body.Amount,
		Category:    body.Category,
		ExpenseDate: utils.ToIST(*body.ExpenseDate),
		CreatedAt:   utils.ISTNow(),
	}
	if err := ec.DB.Create(&expense).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to add expense: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to add expense"))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Expense added", expense)
}

// GetExpenses -> list, optionally filtered by ?filter=today|week|month
func (ec *ExpenseController) GetExpenses(c *gin.Context) {
	now := utils.ISTNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, utils.IST)

	q := ec.DB.Model(&models.Expense{})
	switch c.Query("filter") {
	case "today":
		q = q.Where("expense_date >= ? AND expense_date < ?", today, today.AddDate(0, 0, 1))
	case "week":
		q = q.Where("expense_date >= ? AND expense_date < ?", today.AddDate(0, 0, -6), today.AddDate(0, 0, 1))
	case "month":
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, utils.IST)
		q = q.Where("expense_date >= ? AND expense_date < ?", monthStart, monthStart.AddDate(0, 1, 0))
	}

	var expenses []models.Expense
	if err := q.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to fetch expenses: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to fetch expenses"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of expenses", expenses)
}

// DeleteExpense
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("expense_id"))

	if err := ec.DB.Delete(&models.Expense{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("delete failed"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Expense deleted", gin.H{"expense_id": id})
}
