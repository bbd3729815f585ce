package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/rkarthik/hotel-backend/models"
	"github.com/rkarthik/hotel-backend/utils"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrAlreadyCheckedOut = errors.New("booking already checked out")
	ErrCheckoutConflict  = errors.New("checkout conflict: booking status unchanged")
	ErrRoomUnavailable   = errors.New("room is not available for the requested dates")
)

// AddOnLine is one normalized add-on charge on a bill.
type AddOnLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// KitchenLine is one aggregated kitchen charge on a bill. Unit price is the
// menu item's current price, not a price frozen at order time.
type KitchenLine struct {
	ItemID    uint    `json:"item_id"`
	ItemName  string  `json:"item_name"`
	ItemPrice float64 `json:"item_price"`
	Quantity  int     `json:"quantity"`
}

// Actor identifies who is performing the checkout, taken from JWT claims.
type Actor struct {
	UserID  uint
	Role    string
	StaffID *uint
	Name    string
}

// CheckoutRequest carries the optional client-supplied overrides.
type CheckoutRequest struct {
	CheckOut    *time.Time
	AddOns      json.RawMessage
	TotalAmount *float64
}

// BillingSummary is returned to the caller after a successful commit.
type BillingSummary struct {
	BillingID     uint          `json:"billing_id"`
	BookingCode   string        `json:"booking_id"`
	BookingDBID   uint          `json:"booking_db_id"`
	RoomID        uint          `json:"room_id"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	RoomPrice     float64       `json:"room_price"`
	AddOns        []AddOnLine   `json:"add_ons"`
	KitchenOrders []KitchenLine `json:"kitchen_orders"`
	TotalAmount   float64       `json:"total_amount"`
	Balance       float64       `json:"balance"`
	SettledBy     string        `json:"settled_by"`
	SettledByRole string        `json:"settled_by_role"`
}

type CheckoutService struct {
	DB *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{DB: db}
}

// Checkout drives a booking from active to Checked-out and writes its billing
// snapshot. Every read and write happens inside one transaction; any failure
// rolls the whole thing back, so a caller either gets a complete summary or
// nothing persisted at all.
func (cs *CheckoutService) Checkout(bookingID uint, actor Actor, req CheckoutRequest) (*BillingSummary, error) {
	tx := cs.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	summary, err := cs.checkout(tx, bookingID, actor, req)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// The original failure is what the caller needs to see.
			utils.ErrorLogger.Printf("Rollback failed for booking %d checkout: %v", bookingID, rbErr)
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("commit checkout for booking %d: %w", bookingID, err)
	}

	utils.InfoLogger.Printf("Booking %s checked out by %s (%s), total %s",
		summary.BookingCode, summary.SettledBy, summary.SettledByRole,
		utils.FormatCurrency(summary.TotalAmount))

	return summary, nil
}

func (cs *CheckoutService) checkout(tx *gorm.DB, bookingID uint, actor Actor, req CheckoutRequest) (*BillingSummary, error) {
	// 1) Fresh booking row.
	var booking models.Booking
	if err := tx.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("load booking %d: %w", bookingID, err)
	}

	// 2) Fast pre-check. The real guard is the conditional update below; this
	// only gives a cleaner error when the booking was already closed.
	if !booking.IsActive() {
		return nil, ErrAlreadyCheckedOut
	}

	// 3) Checkout timestamp: explicit override, else the scheduled check-out,
	// else now.
	checkOutTime := utils.ISTNow()
	if req.CheckOut != nil {
		checkOutTime = utils.ToIST(*req.CheckOut)
	} else if booking.CheckOut != nil {
		checkOutTime = *booking.CheckOut
	}

	now := utils.ISTNow()

	// 4) Conditional status transition. Two concurrent checkouts both pass the
	// pre-check; only one of them sees a nonzero row count here, the loser
	// rolls back with a conflict.
	res := tx.Model(&models.Booking{}).
		Where("id = ? AND status <> ?", booking.ID, models.BookingCheckedOut).
		Updates(map[string]interface{}{
			"status":     models.BookingCheckedOut,
			"check_out":  checkOutTime,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("transition booking %d: %w", booking.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrCheckoutConflict
	}

	// 5) Release the room.
	if err := tx.Model(&models.Room{}).
		Where("id = ?", booking.RoomID).
		Updates(map[string]interface{}{"status": models.RoomAvailable, "updated_at": now}).Error; err != nil {
		return nil, fmt.Errorf("release room %d: %w", booking.RoomID, err)
	}

	// 6) Unsettled kitchen consumption for this stay.
	kitchenLines, kitchenIDs, err := AggregateKitchenOrders(tx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("aggregate kitchen orders for booking %d: %w", booking.ID, err)
	}
	var kitchenTotal float64
	for _, line := range kitchenLines {
		kitchenTotal += float64(line.Quantity) * line.ItemPrice
	}

	// 7) Normalize whatever the client sent as add-ons.
	addOns := NormalizeAddOns(req.AddOns)
	var addOnTotal float64
	for _, a := range addOns {
		addOnTotal += a.Amount
	}

	// 8) Final total. A numeric client override wins verbatim, but both
	// figures are kept on the billing row and the override is logged.
	computedTotal := booking.Price + kitchenTotal + addOnTotal
	totalAmount := computedTotal
	overridden := false
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
		overridden = true
		utils.InfoLogger.Warnf("Booking %d checkout total overridden: computed %.2f, supplied %.2f",
			booking.ID, computedTotal, totalAmount)
	}

	// 9) Display name of whoever is checking the guest out.
	settledBy := resolveActorName(tx, actor)

	// 10) The billing snapshot.
	addOnsJSON, err := json.Marshal(addOns)
	if err != nil {
		return nil, fmt.Errorf("serialize add-ons: %w", err)
	}
	kitchenJSON, err := json.Marshal(kitchenLines)
	if err != nil {
		return nil, fmt.Errorf("serialize kitchen lines: %w", err)
	}

	billing := models.Billing{
		BookingID:       booking.ID,
		CustomerID:      booking.CustomerID,
		RoomID:          booking.RoomID,
		CheckIn:         booking.CheckIn,
		CheckOut:        checkOutTime,
		RoomPrice:       booking.Price,
		AdvancePaid:     booking.AdvancePaid,
		AddOns:          string(addOnsJSON),
		KitchenOrders:   string(kitchenJSON),
		ComputedTotal:   computedTotal,
		TotalAmount:     totalAmount,
		TotalOverridden: overridden,
		SettledByID:     actor.UserID,
		SettledByName:   settledBy,
		SettledByRole:   actor.Role,
		CreatedAt:       now,
	}
	if err := tx.Create(&billing).Error; err != nil {
		return nil, fmt.Errorf("insert billing for booking %d: %w", booking.ID, err)
	}

	// 11) Settle the consumed kitchen orders so they are never billed twice.
	if len(kitchenIDs) > 0 {
		if err := tx.Model(&models.KitchenOrder{}).
			Where("id IN ?", kitchenIDs).
			Updates(map[string]interface{}{"status": models.KitchenSettled, "updated_at": now}).Error; err != nil {
			return nil, fmt.Errorf("settle kitchen orders for booking %d: %w", booking.ID, err)
		}
	}

	return &BillingSummary{
		BillingID:     billing.ID,
		BookingCode:   booking.BookingCode,
		BookingDBID:   booking.ID,
		RoomID:        booking.RoomID,
		CheckIn:       booking.CheckIn,
		CheckOut:      checkOutTime,
		RoomPrice:     booking.Price,
		AddOns:        addOns,
		KitchenOrders: kitchenLines,
		TotalAmount:   totalAmount,
		Balance:       totalAmount - booking.AdvancePaid,
		SettledBy:     settledBy,
		SettledByRole: actor.Role,
	}, nil
}

// AggregateKitchenOrders folds the booking's unsettled kitchen orders into
// per-item lines and returns the order ids that must be settled on commit.
// Settled and Cancelled orders are excluded; no side effects here.
func AggregateKitchenOrders(tx *gorm.DB, bookingID uint) ([]KitchenLine, []uint, error) {
	type orderRow struct {
		KoID      uint
		ItemID    uint
		Quantity  int
		ItemName  string
		ItemPrice float64
	}

	var rows []orderRow
	err := tx.Table("kitchen_orders ko").
		Select("ko.id AS ko_id, ko.item_id, ko.quantity, mi.name AS item_name, mi.price AS item_price").
		Joins("JOIN menu_items mi ON mi.id = ko.item_id").
		Where("ko.booking_id = ?", bookingID).
		Where("ko.status IN ?", []string{models.KitchenPending, models.KitchenServed}).
		Order("ko.id").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	lines := make([]KitchenLine, 0, len(rows))
	index := make(map[uint]int)
	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.KoID)
		if i, ok := index[r.ItemID]; ok {
			lines[i].Quantity += r.Quantity
			continue
		}
		index[r.ItemID] = len(lines)
		lines = append(lines, KitchenLine{
			ItemID:    r.ItemID,
			ItemName:  r.ItemName,
			ItemPrice: r.ItemPrice,
			Quantity:  r.Quantity,
		})
	}
	return lines, ids, nil
}

// rawAddOn accepts both wire shapes for an add-on entry:
// {description, amount} and {name, price} (label tolerated as a third alias).
type rawAddOn struct {
	Description *string  `json:"description"`
	Name        *string  `json:"name"`
	Label       *string  `json:"label"`
	Amount      *float64 `json:"amount"`
	Price       *float64 `json:"price"`
}

// NormalizeAddOns coerces the client's add-on payload to []AddOnLine.
// Accepts a JSON array in either shape, or a JSON string wrapping such an
// array. Anything unparseable is an empty list, never an error.
func NormalizeAddOns(raw json.RawMessage) []AddOnLine {
	out := []AddOnLine{}
	if len(raw) == 0 {
		return out
	}

	var entries []rawAddOn
	if err := json.Unmarshal(raw, &entries); err != nil {
		var wrapped string
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return out
		}
		if err := json.Unmarshal([]byte(wrapped), &entries); err != nil {
			return out
		}
	}

	for _, e := range entries {
		desc := "Add-on"
		switch {
		case e.Description != nil && *e.Description != "":
			desc = *e.Description
		case e.Name != nil && *e.Name != "":
			desc = *e.Name
		case e.Label != nil && *e.Label != "":
			desc = *e.Label
		}
		var amount float64
		if e.Amount != nil {
			amount = *e.Amount
		} else if e.Price != nil {
			amount = *e.Price
		}
		out = append(out, AddOnLine{Description: desc, Amount: amount})
	}
	return out
}

// ParseTotalOverride extracts a numeric total_amount from the raw body field.
// Numbers pass through; numeric strings are tolerated; anything else means
// no override.
func ParseTotalOverride(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return &v
		}
	}
	return nil
}

func resolveActorName(tx *gorm.DB, actor Actor) string {
	if actor.Role == models.RoleStaff && actor.StaffID != nil {
		var staff models.Staff
		if err := tx.Select("name").First(&staff, *actor.StaffID).Error; err == nil {
			return staff.Name
		}
	}
	var user models.User
	if err := tx.Select("name").First(&user, actor.UserID).Error; err == nil {
		return user.Name
	}
	return actor.Name
}
