package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

// CheckoutLoggerMiddleware records every checkout attempt and its outcome;
// billing rows are money, so the audit trail is explicit. The booking code is
// resolved through the shared handle so the log line matches what is printed
// on the guest's bill.
func CheckoutLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		label := c.Param("booking_id")
		if db := utils.GetDB(); db != nil {
			var booking models.Booking
			if err := db.Select("booking_code").First(&booking, "id = ?", label).Error; err == nil {
				label = booking.BookingCode
			}
		}

		utils.InfoLogger.Printf("Checkout requested for booking %s", label)

		c.Next()

		if c.Writer.Status() == 200 {
			utils.InfoLogger.Printf("Checkout completed for booking %s", label)
		} else {
			utils.ErrorLogger.Printf("Checkout failed for booking %s (status %d)",
				label, c.Writer.Status())
		}
	}
}
