package models

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category    *string   `gorm:"type:varchar(100)" json:"category,omitempty"`
	ExpenseDate time.Time `gorm:"not null;index" json:"expense_date"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
