package services

import (
	"fmt"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/utils"

	"gorm.io/gorm"
)

// OccupancyReport summarizes availability across all active room types
// for a date range.
type OccupancyReport struct {
	From      time.Time      `json:"from"`
	To        time.Time      `json:"to"`
	RoomTypes []Availability `json:"room_types"`

	TotalRooms       int     `json:"total_rooms"`
	TotalAvailable   int     `json:"total_available"`
	OverallOccupancy float64 `json:"overall_occupancy"`
}

// RevenueSummary aggregates recorded payments over a period.
type RevenueSummary struct {
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
	Total float64   `json:"total"`

	ByMethod map[models.PaymentMethod]float64 `json:"by_method"`

	PaymentCount int     `json:"payment_count"`
	Outstanding  float64 `json:"outstanding"`
}

// ReportService backs the staff dashboards.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// Occupancy runs the availability calculation for every active room type
// over [from, to) and rolls the numbers up.
func (s *ReportService) Occupancy(from, to time.Time) (*OccupancyReport, error) {
	from = utils.DayOf(from)
	to = utils.DayOf(to)
	if !to.After(from) {
		return nil, models.ErrInvalidDateRange
	}

	var roomTypes []models.RoomType
	if err := s.DB.Where("active = ?", true).Order("id ASC").Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	report := &OccupancyReport{From: from, To: to}
	for _, rt := range roomTypes {
		availability, err := calculateAvailability(s.DB, rt.ID, from, to)
		if err != nil {
			return nil, err
		}
		report.RoomTypes = append(report.RoomTypes, *availability)
		report.TotalRooms += availability.TotalRooms
		report.TotalAvailable += availability.AvailableRooms
	}

	if report.TotalRooms > 0 {
		report.OverallOccupancy = float64(report.TotalRooms-report.TotalAvailable) / float64(report.TotalRooms) * 100
	}
	return report, nil
}

// Revenue sums payments recorded in [from, to) grouped by method, plus
// the outstanding balance across non-terminal bookings.
func (s *ReportService) Revenue(from, to time.Time) (*RevenueSummary, error) {
	from = utils.DayOf(from)
	to = utils.DayOf(to)
	if !to.After(from) {
		return nil, models.ErrInvalidDateRange
	}

	var payments []models.Payment
	if err := s.DB.
		Where("paid_at >= ? AND paid_at < ?", from, to).
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	summary := &RevenueSummary{
		From:     from,
		To:       to,
		ByMethod: make(map[models.PaymentMethod]float64),
	}
	for _, p := range payments {
		summary.Total += p.AmountPaid
		summary.ByMethod[p.Method] += p.AmountPaid
		summary.PaymentCount++
	}

	var outstanding struct {
		Total float64
	}
	if err := s.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_amount - paid_amount), 0) AS total").
		Where("status IN ?", models.ActiveBookingStatuses()).
		Scan(&outstanding).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	summary.Outstanding = outstanding.Total

	return summary, nil
}
